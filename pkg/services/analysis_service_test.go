package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
	testdb "github.com/synthlab-ai/persim/test/database"
)

func TestAnalysisService_Insert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("stores completed analysis and returns a generated id", func(t *testing.T) {
		simID := uuid.New().String()
		results := models.NewDetailedAnalysis()
		results.Status = "completed"
		results.Themes = append(results.Themes, models.Theme{
			Name:      "Planning fatigue",
			Frequency: 3,
		})

		id, err := service.Insert(ctx, &simID, results, "gemini", "gemini-2.0-flash", "completed", nil)
		require.NoError(t, err)
		assert.Greater(t, id, 0)

		record, err := service.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, record.AnalysisID)
		require.NotNil(t, record.SimulationID)
		assert.Equal(t, simID, *record.SimulationID)
		assert.Equal(t, "completed", record.Status)
		assert.Equal(t, "gemini", record.LLMProvider)
		assert.Equal(t, "gemini-2.0-flash", record.LLMModel)
		require.NotNil(t, record.Results)
		require.Len(t, record.Results.Themes, 1)
		assert.Equal(t, "Planning fatigue", record.Results.Themes[0].Name)
		assert.Empty(t, record.Error)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("stores failed analysis with the cause and no results", func(t *testing.T) {
		id, err := service.Insert(ctx, nil, nil, "gemini", "gemini-2.0-flash", "failed", errors.New("upstream 503"))
		require.NoError(t, err)

		record, err := service.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "failed", record.Status)
		assert.Nil(t, record.SimulationID)
		assert.Nil(t, record.Results)
		assert.Equal(t, "upstream 503", record.Error)
	})

	t.Run("generated ids are distinct and increasing", func(t *testing.T) {
		first, err := service.Insert(ctx, nil, models.NewDetailedAnalysis(), "gemini", "m", "completed", nil)
		require.NoError(t, err)
		second, err := service.Insert(ctx, nil, models.NewDetailedAnalysis(), "gemini", "m", "completed", nil)
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})

	t.Run("rejects empty status", func(t *testing.T) {
		_, err := service.Insert(ctx, nil, nil, "gemini", "m", "", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAnalysisService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := service.Get(context.Background(), 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
