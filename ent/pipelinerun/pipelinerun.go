// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pipelinerun type in the database.
	Label = "pipeline_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBusinessContext holds the string denoting the business_context field in the database.
	FieldBusinessContext = "business_context"
	// FieldExecutionTrace holds the string denoting the execution_trace field in the database.
	FieldExecutionTrace = "execution_trace"
	// FieldDataset holds the string denoting the dataset field in the database.
	FieldDataset = "dataset"
	// FieldQuestionnaireStakeholderCount holds the string denoting the questionnaire_stakeholder_count field in the database.
	FieldQuestionnaireStakeholderCount = "questionnaire_stakeholder_count"
	// FieldSimulationID holds the string denoting the simulation_id field in the database.
	FieldSimulationID = "simulation_id"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldPersonaCount holds the string denoting the persona_count field in the database.
	FieldPersonaCount = "persona_count"
	// FieldInterviewCount holds the string denoting the interview_count field in the database.
	FieldInterviewCount = "interview_count"
	// FieldTotalDurationSeconds holds the string denoting the total_duration_seconds field in the database.
	FieldTotalDurationSeconds = "total_duration_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the pipelinerun in the database.
	Table = "pipeline_runs"
)

// Columns holds all SQL columns for pipelinerun fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldBusinessContext,
	FieldExecutionTrace,
	FieldDataset,
	FieldQuestionnaireStakeholderCount,
	FieldSimulationID,
	FieldAnalysisID,
	FieldPersonaCount,
	FieldInterviewCount,
	FieldTotalDurationSeconds,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationSeconds,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusPartial, StatusFailed:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQuestionnaireStakeholderCount orders the results by the questionnaire_stakeholder_count field.
func ByQuestionnaireStakeholderCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionnaireStakeholderCount, opts...).ToFunc()
}

// BySimulationID orders the results by the simulation_id field.
func BySimulationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimulationID, opts...).ToFunc()
}

// ByAnalysisID orders the results by the analysis_id field.
func ByAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisID, opts...).ToFunc()
}

// ByPersonaCount orders the results by the persona_count field.
func ByPersonaCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaCount, opts...).ToFunc()
}

// ByInterviewCount orders the results by the interview_count field.
func ByInterviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewCount, opts...).ToFunc()
}

// ByTotalDurationSeconds orders the results by the total_duration_seconds field.
func ByTotalDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDurationSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
