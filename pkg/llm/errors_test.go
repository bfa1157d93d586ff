package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindOf(t *testing.T) {
	err := newCallError(TaskInterview, KindMalformedOutput, errors.New("bad json"))
	assert.Equal(t, KindMalformedOutput, ErrorKindOf(err))

	wrapped := fmt.Errorf("interview 3: %w", err)
	assert.Equal(t, KindMalformedOutput, ErrorKindOf(wrapped))

	assert.Equal(t, ErrorKind(""), ErrorKindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), ErrorKindOf(nil))
}

func TestIsMalformed(t *testing.T) {
	assert.True(t, IsMalformed(newCallError(TaskInterview, KindMalformedOutput, errors.New("x"))))
	assert.False(t, IsMalformed(newCallError(TaskInterview, KindUpstreamFailure, errors.New("x"))))
	assert.False(t, IsMalformed(errors.New("x")))
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(newCallError(TaskInterview, KindCancelled, context.Canceled)))
	assert.True(t, IsCancelled(context.Canceled))
	assert.True(t, IsCancelled(fmt.Errorf("wrap: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancelled(errors.New("x")))
}

func TestTransientAndFatalClassification(t *testing.T) {
	transient := newCallError(TaskInterview, KindUpstreamFailure, &transientError{errors.New("503")})
	fatal := newCallError(TaskInterview, KindUpstreamFailure, &fatalError{errors.New("401")})
	malformed := newCallError(TaskInterview, KindMalformedOutput, errors.New("truncated"))

	assert.True(t, IsTransient(transient))
	assert.False(t, IsFatal(transient))

	assert.False(t, IsTransient(fatal))
	assert.True(t, IsFatal(fatal))

	// Malformed output retries under a lower temperature.
	assert.True(t, IsTransient(malformed))
	assert.False(t, IsFatal(malformed))
}

func TestClassifyHTTPError(t *testing.T) {
	assert.True(t, IsTransient(classifyHTTPError(429, []byte("slow down"))))
	assert.True(t, IsTransient(classifyHTTPError(500, nil)))
	assert.True(t, IsTransient(classifyHTTPError(503, nil)))
	assert.True(t, IsFatal(classifyHTTPError(400, []byte("bad request"))))
	assert.True(t, IsFatal(classifyHTTPError(401, nil)))
	assert.True(t, IsFatal(classifyHTTPError(403, nil)))
	assert.True(t, IsFatal(classifyHTTPError(404, nil)))
}
