// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/pkg/models"
)

// AnalysisResult is the model entity for the AnalysisResult schema.
type AnalysisResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SimulationID holds the value of the "simulation_id" field.
	SimulationID *string `json:"simulation_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Results holds the value of the "results" field.
	Results *models.DetailedAnalysis `json:"results,omitempty"`
	// LlmProvider holds the value of the "llm_provider" field.
	LlmProvider string `json:"llm_provider,omitempty"`
	// LlmModel holds the value of the "llm_model" field.
	LlmModel string `json:"llm_model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisresult.FieldResults:
			values[i] = new([]byte)
		case analysisresult.FieldID:
			values[i] = new(sql.NullInt64)
		case analysisresult.FieldSimulationID, analysisresult.FieldStatus, analysisresult.FieldLlmProvider, analysisresult.FieldLlmModel, analysisresult.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisResult fields.
func (_m *AnalysisResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisresult.FieldSimulationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field simulation_id", values[i])
			} else if value.Valid {
				_m.SimulationID = new(string)
				*_m.SimulationID = value.String
			}
		case analysisresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case analysisresult.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case analysisresult.FieldLlmProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider", values[i])
			} else if value.Valid {
				_m.LlmProvider = value.String
			}
		case analysisresult.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = value.String
			}
		case analysisresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisresult.FieldErrorMessage:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisResult.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisResult.
// Note that you need to call AnalysisResult.Unwrap() before calling this method if this AnalysisResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisResult) Update() *AnalysisResultUpdateOne {
	return NewAnalysisResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisResult) Unwrap() *AnalysisResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisResult) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SimulationID; v != nil {
		builder.WriteString("simulation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteString(", ")
	builder.WriteString("llm_provider=")
	builder.WriteString(_m.LlmProvider)
	builder.WriteString(", ")
	builder.WriteString("llm_model=")
	builder.WriteString(_m.LlmModel)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisResults is a parsable slice of AnalysisResult.
type AnalysisResults []*AnalysisResult
