package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error keeps its message",
			err:        services.NewValidationError("business_idea", "cannot be empty"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation error on field 'business_idea': cannot be empty",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "resource not found",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("failed to get run: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "resource not found",
		},
		{
			name:       "not cancellable",
			err:        services.ErrNotCancellable,
			wantStatus: http.StatusConflict,
			wantMsg:    "job is not in a cancellable state",
		},
		{
			name:       "terminal state",
			err:        services.ErrTerminalState,
			wantStatus: http.StatusConflict,
			wantMsg:    "record is in a terminal state",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantMsg:    "resource already exists",
		},
		{
			name:       "unknown error is masked",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondLLMError(t *testing.T) {
	gatewayErr := func(kind llm.ErrorKind) error {
		return &llm.CallError{Kind: kind, Task: llm.TaskSingleResponse, Err: errors.New("boom")}
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid input stays a client error",
			err:        gatewayErr(llm.KindInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid-input",
		},
		{
			name:       "malformed output",
			err:        gatewayErr(llm.KindMalformedOutput),
			wantStatus: http.StatusBadGateway,
			wantBody:   "language model returned unusable output",
		},
		{
			name:       "upstream failure",
			err:        gatewayErr(llm.KindUpstreamFailure),
			wantStatus: http.StatusBadGateway,
			wantBody:   "language model request failed",
		},
		{
			name:       "cancellation",
			err:        gatewayErr(llm.KindCancelled),
			wantStatus: http.StatusBadGateway,
			wantBody:   "language model request failed",
		},
		{
			name:       "foreign error falls back to the service mapping",
			err:        fmt.Errorf("lookup failed: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "resource not found",
		},
		{
			name:       "unclassified error is masked",
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			respondLLMError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.True(t, c.IsAborted())
		})
	}
}
