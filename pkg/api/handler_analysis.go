package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/analysis"
	"github.com/synthlab-ai/persim/pkg/models"
)

// runAnalysisHandler handles POST /analysis.
// Analyses either a stored simulation's interviews (?simulation_id=) or a raw
// transcript from the request body. The resulting envelope is persisted
// either way; rows from raw transcripts carry no simulation reference.
func (s *Server) runAnalysisHandler(c *gin.Context) {
	if s.deps.Analysis == nil || s.deps.Analyses == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis pipeline is not available"})
		return
	}

	// 1. Resolve the input: stored simulation or raw transcript
	simulationID := c.Query("simulation_id")
	var interviews []models.Interview
	var corpus string
	switch {
	case simulationID != "":
		if s.deps.Simulations == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation store is not available"})
			return
		}
		sim, err := s.deps.Simulations.Get(c.Request.Context(), simulationID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if len(sim.Interviews) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "simulation has no interviews to analyse"})
			return
		}
		interviews = sim.Interviews
	default:
		var req AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.InterviewsText) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "simulation_id query parameter or interviews_text body is required"})
			return
		}
		corpus = req.InterviewsText
	}

	// 2. Run the sub-stage pipeline
	var envelope *models.DetailedAnalysis
	var err error
	if len(interviews) > 0 {
		envelope, err = s.deps.Analysis.Analyze(c.Request.Context(), interviews, analysis.Options{})
	} else {
		envelope, err = s.deps.Analysis.AnalyzeCorpus(c.Request.Context(), corpus, 0, analysis.Options{})
	}

	// 3. Persist the envelope, failed or not, so the outcome stays queryable
	var simRef *string
	if simulationID != "" {
		simRef = &simulationID
	}
	provider, model := s.llmIdentity()
	if err != nil {
		if _, ierr := s.deps.Analyses.Insert(c.Request.Context(), simRef, nil, provider, model, "failed", err); ierr != nil {
			s.logger.Error("failed to record failed analysis", "error", ierr)
		}
		respondLLMError(c, err)
		return
	}

	analysisID, err := s.deps.Analyses.Insert(c.Request.Context(), simRef, envelope, provider, model, "completed", nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 4. Return the stored record
	record, err := s.deps.Analyses.Get(c.Request.Context(), analysisID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// getAnalysisHandler handles GET /analysis/:id.
func (s *Server) getAnalysisHandler(c *gin.Context) {
	if s.deps.Analyses == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis store is not available"})
		return
	}

	analysisID, err := strconv.Atoi(c.Param("id"))
	if err != nil || analysisID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis id must be a positive integer"})
		return
	}

	record, err := s.deps.Analyses.Get(c.Request.Context(), analysisID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// llmIdentity names the provider and model for persisted envelopes.
func (s *Server) llmIdentity() (provider, model string) {
	if s.deps.LLM == nil {
		return "", ""
	}
	return s.deps.LLM.Provider(), s.deps.LLM.Model()
}
