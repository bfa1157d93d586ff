package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// previewResponseHandler handles POST /responses/preview.
// Generates one synthetic answer for a persona description, useful for
// tuning question phrasing before running a full simulation.
func (s *Server) previewResponseHandler(c *gin.Context) {
	if s.deps.LLM == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "language model client is not available"})
		return
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}
	if strings.TrimSpace(req.PersonaDescription) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "persona_description is required"})
		return
	}

	style := models.ResponseStyleRealistic
	if req.Style != "" {
		style = models.ResponseStyle(req.Style)
		if !style.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid style: " + req.Style})
			return
		}
	}

	text, err := s.deps.LLM.GenerateResponse(c.Request.Context(), llm.SingleResponseRequest{
		Question:           req.Question,
		PersonaDescription: req.PersonaDescription,
		Style:              style,
	})
	if err != nil {
		respondLLMError(c, err)
		return
	}
	c.JSON(http.StatusOK, &PreviewResponse{Response: text})
}
