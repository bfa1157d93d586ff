// Code generated by ent, DO NOT EDIT.

package simulation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the simulation type in the database.
	Label = "simulation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "simulation_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBusinessContext holds the string denoting the business_context field in the database.
	FieldBusinessContext = "business_context"
	// FieldQuestionsData holds the string denoting the questions_data field in the database.
	FieldQuestionsData = "questions_data"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldPersonas holds the string denoting the personas field in the database.
	FieldPersonas = "personas"
	// FieldInterviews holds the string denoting the interviews field in the database.
	FieldInterviews = "interviews"
	// FieldInsights holds the string denoting the insights field in the database.
	FieldInsights = "insights"
	// FieldFormattedData holds the string denoting the formatted_data field in the database.
	FieldFormattedData = "formatted_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the simulation in the database.
	Table = "simulations"
)

// Columns holds all SQL columns for simulation fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldBusinessContext,
	FieldQuestionsData,
	FieldConfig,
	FieldPersonas,
	FieldInterviews,
	FieldInsights,
	FieldFormattedData,
	FieldCreatedAt,
	FieldCompletedAt,
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
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("simulation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Simulation queries.
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
