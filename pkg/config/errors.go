package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates neither GEMINI_API_KEY nor GOOGLE_API_KEY is set
	ErrMissingAPIKey = errors.New("missing LLM API key: set GEMINI_API_KEY or GOOGLE_API_KEY")

	// ErrInvalidValue indicates an environment variable has an unusable value
	ErrInvalidValue = errors.New("invalid configuration value")
)

// ValueError wraps an invalid environment setting with its variable name.
type ValueError struct {
	Variable string
	Value    string
	Err      error
}

// Error returns formatted error message
func (e *ValueError) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Variable, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *ValueError) Unwrap() error {
	return e.Err
}

// NewValueError creates a new value error
func NewValueError(variable, value string, err error) *ValueError {
	return &ValueError{
		Variable: variable,
		Value:    value,
		Err:      err,
	}
}
