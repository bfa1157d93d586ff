package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/pipeline"
)

// submitRunHandler handles POST /pipeline/run-async.
// Registers a pending run and returns its job status immediately; the four
// stages execute in the background.
func (s *Server) submitRunHandler(c *gin.Context) {
	if s.deps.Registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job registry is not available"})
		return
	}

	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := s.deps.Registry.Submit(c.Request.Context(), req.Brief(), resolveUserID(c))
	if err != nil {
		if errors.Is(err, pipeline.ErrShutdown) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// getJobHandler handles GET /pipeline/jobs/:id.
// The result payload is present iff the run completed with a dataset.
func (s *Server) getJobHandler(c *gin.Context) {
	if s.deps.Registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job registry is not available"})
		return
	}

	status, err := s.deps.Registry.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// cancelJobHandler handles POST /pipeline/jobs/:id/cancel.
func (s *Server) cancelJobHandler(c *gin.Context) {
	if s.deps.Registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job registry is not available"})
		return
	}

	jobID := c.Param("id")
	if err := s.deps.Registry.Cancel(c.Request.Context(), jobID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, &CancelResponse{
		JobID:   jobID,
		Message: "Job cancellation requested",
	})
}

// listRunsHandler handles GET /pipeline/runs.
func (s *Server) listRunsHandler(c *gin.Context) {
	if s.deps.Registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job registry is not available"})
		return
	}

	// Parse pagination. Unparsable values fall back to the defaults.
	limit, offset := 0, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}

	// Parse the status filter.
	var status models.RunStatus
	if v := c.Query("status"); v != "" {
		status = models.RunStatus(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
	}

	resp, err := s.deps.Registry.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getRunHandler handles GET /pipeline/runs/:id.
// Returns the full persisted run: trace, dataset, and counts.
func (s *Server) getRunHandler(c *gin.Context) {
	if s.deps.Registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job registry is not available"})
		return
	}

	run, err := s.deps.Registry.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}
