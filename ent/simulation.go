// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/simulation"
	"github.com/synthlab-ai/persim/pkg/models"
)

// Simulation is the model entity for the Simulation schema.
type Simulation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status simulation.Status `json:"status,omitempty"`
	// BusinessContext holds the value of the "business_context" field.
	BusinessContext models.BusinessBrief `json:"business_context,omitempty"`
	// QuestionsData holds the value of the "questions_data" field.
	QuestionsData *models.Questionnaire `json:"questions_data,omitempty"`
	// Config holds the value of the "config" field.
	Config models.SimulationConfig `json:"config,omitempty"`
	// Personas holds the value of the "personas" field.
	Personas []models.Persona `json:"personas,omitempty"`
	// Interviews holds the value of the "interviews" field.
	Interviews []models.Interview `json:"interviews,omitempty"`
	// Insights holds the value of the "insights" field.
	Insights *models.SimulationInsights `json:"insights,omitempty"`
	// FormattedData holds the value of the "formatted_data" field.
	FormattedData map[string]interface{} `json:"formatted_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Simulation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case simulation.FieldBusinessContext, simulation.FieldQuestionsData, simulation.FieldConfig, simulation.FieldPersonas, simulation.FieldInterviews, simulation.FieldInsights, simulation.FieldFormattedData:
			values[i] = new([]byte)
		case simulation.FieldID, simulation.FieldUserID, simulation.FieldStatus, simulation.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case simulation.FieldCreatedAt, simulation.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Simulation fields.
func (_m *Simulation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case simulation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case simulation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case simulation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = simulation.Status(value.String)
			}
		case simulation.FieldBusinessContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field business_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BusinessContext); err != nil {
					return fmt.Errorf("unmarshal field business_context: %w", err)
				}
			}
		case simulation.FieldQuestionsData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionsData); err != nil {
					return fmt.Errorf("unmarshal field questions_data: %w", err)
				}
			}
		case simulation.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case simulation.FieldPersonas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field personas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Personas); err != nil {
					return fmt.Errorf("unmarshal field personas: %w", err)
				}
			}
		case simulation.FieldInterviews:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interviews", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interviews); err != nil {
					return fmt.Errorf("unmarshal field interviews: %w", err)
				}
			}
		case simulation.FieldInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Insights); err != nil {
					return fmt.Errorf("unmarshal field insights: %w", err)
				}
			}
		case simulation.FieldFormattedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field formatted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FormattedData); err != nil {
					return fmt.Errorf("unmarshal field formatted_data: %w", err)
				}
			}
		case simulation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case simulation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case simulation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Simulation.
// This includes values selected through modifiers, order, etc.
func (_m *Simulation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Simulation.
// Note that you need to call Simulation.Unwrap() before calling this method if this Simulation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Simulation) Update() *SimulationUpdateOne {
	return NewSimulationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Simulation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Simulation) Unwrap() *Simulation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Simulation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Simulation) String() string {
	var builder strings.Builder
	builder.WriteString("Simulation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("business_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessContext))
	builder.WriteString(", ")
	builder.WriteString("questions_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsData))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("personas=")
	builder.WriteString(fmt.Sprintf("%v", _m.Personas))
	builder.WriteString(", ")
	builder.WriteString("interviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interviews))
	builder.WriteString(", ")
	builder.WriteString("insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Insights))
	builder.WriteString(", ")
	builder.WriteString("formatted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.FormattedData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Simulations is a parsable slice of Simulation.
type Simulations []*Simulation
