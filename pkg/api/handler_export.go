package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// exportDatasetHandler handles POST /exports/persona-dataset.
// Assembles the persona dataset for one stored analysis.
func (s *Server) exportDatasetHandler(c *gin.Context) {
	if s.deps.Datasets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset assembler is not available"})
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AnalysisID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_id is required"})
		return
	}

	ds, err := s.deps.Datasets.Assemble(c.Request.Context(), req.AnalysisID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}
