package services

import (
	"context"
	"fmt"
	"time"

	"github.com/synthlab-ai/persim/ent"
	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/pkg/models"
)

// AnalysisService persists stage-3 analysis envelopes
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// Insert stores one analysis envelope and returns its generated id.
// simulationID may be nil when the analysis was produced from raw text.
func (s *AnalysisService) Insert(httpCtx context.Context, simulationID *string, results *models.DetailedAnalysis, provider, model, status string, cause error) (int, error) {
	if status == "" {
		return 0, NewValidationError("status", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AnalysisResult.Create().
		SetStatus(status).
		SetLlmProvider(provider).
		SetLlmModel(model)
	if simulationID != nil && *simulationID != "" {
		builder.SetSimulationID(*simulationID)
	}
	if results != nil {
		builder.SetResults(results)
	}
	if cause != nil {
		builder.SetErrorMessage(cause.Error())
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return row.ID, nil
}

// Get retrieves one analysis record by id
func (s *AnalysisService) Get(ctx context.Context, analysisID int) (*models.AnalysisRecord, error) {
	row, err := s.client.AnalysisResult.Query().
		Where(analysisresult.IDEQ(analysisID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) || isUndefinedTable(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysisFromRow(row), nil
}

func analysisFromRow(row *ent.AnalysisResult) *models.AnalysisRecord {
	rec := &models.AnalysisRecord{
		AnalysisID:   row.ID,
		SimulationID: row.SimulationID,
		Status:       row.Status,
		Results:      row.Results,
		LLMProvider:  row.LlmProvider,
		LLMModel:     row.LlmModel,
		CreatedAt:    row.CreatedAt,
	}
	if row.ErrorMessage != nil {
		rec.Error = *row.ErrorMessage
	}
	return rec
}
