package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies a gateway failure. The set is closed; callers branch
// on kind, never on error strings.
type ErrorKind string

const (
	// KindMalformedOutput means the model answered but the payload could not
	// be parsed or failed schema validation. Retryable.
	KindMalformedOutput ErrorKind = "malformed-output"
	// KindUpstreamFailure means the HTTP call to the provider failed.
	KindUpstreamFailure ErrorKind = "upstream-failure"
	// KindCancelled means the caller's context ended before the call finished.
	KindCancelled ErrorKind = "cancelled"
	// KindInvalidInput means the request was rejected before any network I/O.
	KindInvalidInput ErrorKind = "invalid-input"
)

// CallError is the only error type the gateway returns. Task identifies the
// originating call so logs and metrics can attribute failures.
type CallError struct {
	Kind ErrorKind
	Task TaskKind
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("llm %s: %s: %v", e.Task, e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func newCallError(task TaskKind, kind ErrorKind, err error) *CallError {
	return &CallError{Kind: kind, Task: task, Err: err}
}

// ErrorKindOf extracts the kind from a gateway error, or "" for foreign errors.
func ErrorKindOf(err error) ErrorKind {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsMalformed reports whether err is a malformed-output gateway error.
func IsMalformed(err error) bool {
	return ErrorKindOf(err) == KindMalformedOutput
}

// IsCancelled reports whether err is a cancellation, either wrapped by the
// gateway or a bare context error.
func IsCancelled(err error) bool {
	if ErrorKindOf(err) == KindCancelled {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// transientError marks an upstream failure worth retrying (HTTP 429, 5xx,
// connection resets).
type transientError struct {
	err error
}

func (e *transientError) Error() string { return "transient: " + e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// fatalError marks an upstream failure that will not succeed on retry
// (HTTP 400, 401, 403, safety blocks).
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return "fatal: " + e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// IsTransient reports whether err is worth retrying. Malformed output counts:
// a reworded prompt at lower temperature often fixes structural failures.
func IsTransient(err error) bool {
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	return IsMalformed(err)
}

// IsFatal reports whether retrying err is pointless.
func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}
