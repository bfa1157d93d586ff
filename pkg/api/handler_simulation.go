package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// runSimulationHandler handles POST /simulations.
// Runs the interview fanout synchronously and returns the stored simulation.
// When the request carries no questions_data, a questionnaire is built from
// the brief first.
func (s *Server) runSimulationHandler(c *gin.Context) {
	if s.deps.Orchestrator == nil || s.deps.Simulations == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation runner is not available"})
		return
	}

	// 1. Bind HTTP request
	var req SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Validate the brief
	brief := req.BusinessContext
	if field := brief.Validate(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return
	}

	// 3. Resolve and validate the simulation config
	cfg := models.DefaultSimulationConfig()
	if req.Config != nil {
		cfg = *req.Config
		cfg.Normalize()
		maxPersonas := 0
		if s.deps.Config != nil && s.deps.Config.Limits != nil {
			maxPersonas = s.deps.Config.Limits.MaxPersonas
		}
		if field := cfg.Validate(maxPersonas); field != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field})
			return
		}
	}

	// 4. Resolve the questionnaire
	q := req.QuestionsData
	if q == nil {
		if s.deps.Questionnaires == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "questionnaire builder is not available"})
			return
		}
		built, err := s.deps.Questionnaires.Build(c.Request.Context(), brief)
		if err != nil {
			if llm.ErrorKindOf(err) != "" {
				respondLLMError(c, err)
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		q = built
	} else if q.StakeholderCount() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questions_data has no stakeholders"})
		return
	}

	// 5. Run the fanout
	simID, _, err := s.deps.Orchestrator.RunSimulation(c.Request.Context(), brief, q, cfg, resolveUserID(c))
	if err != nil {
		if llm.ErrorKindOf(err) != "" {
			respondLLMError(c, err)
			return
		}
		respondServiceError(c, err)
		return
	}

	// 6. Return the stored record
	sim, err := s.deps.Simulations.Get(c.Request.Context(), simID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sim)
}

// listSimulationsHandler handles GET /simulations.
// Lists completed simulations as lightweight summaries.
func (s *Server) listSimulationsHandler(c *gin.Context) {
	if s.deps.Simulations == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation store is not available"})
		return
	}

	sims, err := s.deps.Simulations.ListCompleted(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := SimulationListResponse{
		Simulations: make([]SimulationSummary, 0, len(sims)),
		TotalCount:  len(sims),
	}
	for _, sim := range sims {
		summary := SimulationSummary{
			SimulationID:   sim.SimulationID,
			Status:         string(sim.Status),
			BusinessIdea:   sim.BusinessContext.BusinessIdea,
			PersonaCount:   len(sim.Personas),
			InterviewCount: len(sim.Interviews),
			CreatedAt:      sim.CreatedAt.UTC().Format(time.RFC3339),
		}
		if sim.CompletedAt != nil {
			summary.CompletedAt = sim.CompletedAt.UTC().Format(time.RFC3339)
		}
		resp.Simulations = append(resp.Simulations, summary)
	}
	c.JSON(http.StatusOK, resp)
}

// getSimulationHandler handles GET /simulations/:id.
func (s *Server) getSimulationHandler(c *gin.Context) {
	if s.deps.Simulations == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation store is not available"})
		return
	}

	sim, err := s.deps.Simulations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sim)
}
