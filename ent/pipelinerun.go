// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/pkg/models"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// BusinessContext holds the value of the "business_context" field.
	BusinessContext models.BusinessBrief `json:"business_context,omitempty"`
	// ExecutionTrace holds the value of the "execution_trace" field.
	ExecutionTrace []models.StageTrace `json:"execution_trace,omitempty"`
	// Dataset holds the value of the "dataset" field.
	Dataset *models.Dataset `json:"dataset,omitempty"`
	// QuestionnaireStakeholderCount holds the value of the "questionnaire_stakeholder_count" field.
	QuestionnaireStakeholderCount int `json:"questionnaire_stakeholder_count,omitempty"`
	// SimulationID holds the value of the "simulation_id" field.
	SimulationID *string `json:"simulation_id,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID *int `json:"analysis_id,omitempty"`
	// PersonaCount holds the value of the "persona_count" field.
	PersonaCount int `json:"persona_count,omitempty"`
	// InterviewCount holds the value of the "interview_count" field.
	InterviewCount int `json:"interview_count,omitempty"`
	// TotalDurationSeconds holds the value of the "total_duration_seconds" field.
	TotalDurationSeconds float64 `json:"total_duration_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set when the job leaves pending
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set when the job reaches a terminal status
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldBusinessContext, pipelinerun.FieldExecutionTrace, pipelinerun.FieldDataset:
			values[i] = new([]byte)
		case pipelinerun.FieldTotalDurationSeconds, pipelinerun.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case pipelinerun.FieldQuestionnaireStakeholderCount, pipelinerun.FieldAnalysisID, pipelinerun.FieldPersonaCount, pipelinerun.FieldInterviewCount:
			values[i] = new(sql.NullInt64)
		case pipelinerun.FieldID, pipelinerun.FieldUserID, pipelinerun.FieldStatus, pipelinerun.FieldSimulationID, pipelinerun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinerun.FieldCreatedAt, pipelinerun.FieldStartedAt, pipelinerun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldBusinessContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field business_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BusinessContext); err != nil {
					return fmt.Errorf("unmarshal field business_context: %w", err)
				}
			}
		case pipelinerun.FieldExecutionTrace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_trace", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionTrace); err != nil {
					return fmt.Errorf("unmarshal field execution_trace: %w", err)
				}
			}
		case pipelinerun.FieldDataset:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dataset", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dataset); err != nil {
					return fmt.Errorf("unmarshal field dataset: %w", err)
				}
			}
		case pipelinerun.FieldQuestionnaireStakeholderCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questionnaire_stakeholder_count", values[i])
			} else if value.Valid {
				_m.QuestionnaireStakeholderCount = int(value.Int64)
			}
		case pipelinerun.FieldSimulationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field simulation_id", values[i])
			} else if value.Valid {
				_m.SimulationID = new(string)
				*_m.SimulationID = value.String
			}
		case pipelinerun.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = new(int)
				*_m.AnalysisID = int(value.Int64)
			}
		case pipelinerun.FieldPersonaCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field persona_count", values[i])
			} else if value.Valid {
				_m.PersonaCount = int(value.Int64)
			}
		case pipelinerun.FieldInterviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interview_count", values[i])
			} else if value.Valid {
				_m.InterviewCount = int(value.Int64)
			}
		case pipelinerun.FieldTotalDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_duration_seconds", values[i])
			} else if value.Valid {
				_m.TotalDurationSeconds = value.Float64
			}
		case pipelinerun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinerun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pipelinerun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pipelinerun.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case pipelinerun.FieldErrorMessage:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
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
	builder.WriteString("execution_trace=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTrace))
	builder.WriteString(", ")
	builder.WriteString("dataset=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dataset))
	builder.WriteString(", ")
	builder.WriteString("questionnaire_stakeholder_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionnaireStakeholderCount))
	builder.WriteString(", ")
	if v := _m.SimulationID; v != nil {
		builder.WriteString("simulation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnalysisID; v != nil {
		builder.WriteString("analysis_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("persona_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonaCount))
	builder.WriteString(", ")
	builder.WriteString("interview_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InterviewCount))
	builder.WriteString(", ")
	builder.WriteString("total_duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
