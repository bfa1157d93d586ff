package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrNotCancellable) {
		return http.StatusConflict, "job is not in a cancellable state"
	}
	if errors.Is(err, services.ErrTerminalState) {
		return http.StatusConflict, "record is in a terminal state"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// respondServiceError writes the mapped service error and aborts the handler.
func respondServiceError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondLLMError maps model-gateway failures. Invalid input stays a client
// error; everything else (upstream failure, malformed output, cancellation)
// is the upstream's fault and answers 502.
func respondLLMError(c *gin.Context, err error) {
	switch llm.ErrorKindOf(err) {
	case llm.KindInvalidInput:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case llm.KindMalformedOutput:
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "language model returned unusable output"})
	case llm.KindUpstreamFailure, llm.KindCancelled:
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "language model request failed"})
	default:
		respondServiceError(c, err)
	}
}
