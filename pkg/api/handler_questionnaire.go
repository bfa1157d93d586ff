package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// createQuestionnaireHandler handles POST /questionnaires.
// Builds a stakeholder interview guide from a business brief.
func (s *Server) createQuestionnaireHandler(c *gin.Context) {
	if s.deps.Questionnaires == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "questionnaire builder is not available"})
		return
	}

	// 1. Bind HTTP request
	var req QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Validate required fields
	brief := req.Brief()
	if field := brief.Validate(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return
	}

	// 3. Build
	q, err := s.deps.Questionnaires.Build(c.Request.Context(), brief)
	if err != nil {
		if llm.ErrorKindOf(err) != "" {
			respondLLMError(c, err)
			return
		}
		// The brief was validated above, so anything else means the model
		// answered but the payload was unusable.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, q)
}
