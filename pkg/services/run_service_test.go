package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
	testdb "github.com/synthlab-ai/persim/test/database"
)

func TestRunService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending run", func(t *testing.T) {
		jobID := uuid.New().String()

		run, err := service.Create(ctx, jobID, "user-1", testBrief())
		require.NoError(t, err)
		assert.Equal(t, jobID, run.JobID)
		assert.Equal(t, "user-1", run.UserID)
		assert.Equal(t, models.RunStatusPending, run.Status)
		assert.Equal(t, testBrief().BusinessIdea, run.BusinessContext.BusinessIdea)
		assert.False(t, run.CreatedAt.IsZero())
		assert.Nil(t, run.StartedAt)
		assert.Nil(t, run.CompletedAt)
		assert.Nil(t, run.DurationSeconds)
		assert.Empty(t, run.ExecutionTrace)
		assert.Nil(t, run.Dataset)
	})

	t.Run("rejects duplicate job id", func(t *testing.T) {
		jobID := uuid.New().String()
		_, err := service.Create(ctx, jobID, "", testBrief())
		require.NoError(t, err)

		_, err = service.Create(ctx, jobID, "", testBrief())
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name      string
			jobID     string
			brief     models.BusinessBrief
			wantField string
		}{
			{
				name:      "missing job id",
				jobID:     "",
				brief:     testBrief(),
				wantField: "job_id",
			},
			{
				name:      "missing target customer",
				jobID:     uuid.New().String(),
				brief:     models.BusinessBrief{BusinessIdea: "meal planner", Problem: "planning"},
				wantField: "target_customer",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Create(ctx, tt.jobID, "", tt.brief)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantField)
			})
		}
	})
}

func TestRunService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	createRun := func(t *testing.T) string {
		t.Helper()
		jobID := uuid.New().String()
		_, err := service.Create(ctx, jobID, "", testBrief())
		require.NoError(t, err)
		return jobID
	}

	t.Run("running transition stamps started_at once", func(t *testing.T) {
		jobID := createRun(t)

		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusRunning, nil))

		run, err := service.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, models.RunStatusRunning, run.Status)
		require.NotNil(t, run.StartedAt)
		assert.Nil(t, run.CompletedAt)
		firstStart := *run.StartedAt

		// A second running update must not move the start time.
		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusRunning, nil))
		run, err = service.Get(ctx, jobID)
		require.NoError(t, err)
		assert.True(t, run.StartedAt.Equal(firstStart))
	})

	t.Run("terminal transition stamps completed_at and duration", func(t *testing.T) {
		jobID := createRun(t)
		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusRunning, nil))
		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusCompleted, nil))

		run, err := service.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, models.RunStatusCompleted, run.Status)
		require.NotNil(t, run.StartedAt)
		require.NotNil(t, run.CompletedAt)
		require.NotNil(t, run.DurationSeconds)
		assert.GreaterOrEqual(t, *run.DurationSeconds, 0.0)
		assert.False(t, run.CompletedAt.Before(*run.StartedAt))
	})

	t.Run("failing straight from pending still closes the run", func(t *testing.T) {
		jobID := createRun(t)

		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusFailed, errors.New("questionnaire generation failed")))

		run, err := service.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, models.RunStatusFailed, run.Status)
		require.NotNil(t, run.CompletedAt)
		require.NotNil(t, run.DurationSeconds)
		assert.Contains(t, run.Error, "questionnaire generation failed")
	})

	t.Run("terminal runs reject further transitions", func(t *testing.T) {
		jobID := createRun(t)
		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusPartial, nil))

		err := service.UpdateStatus(ctx, jobID, models.RunStatusFailed, nil)
		assert.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("unknown job reports not found", func(t *testing.T) {
		err := service.UpdateStatus(ctx, uuid.New().String(), models.RunStatusRunning, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		err := service.UpdateStatus(ctx, createRun(t), models.RunStatus("paused"), nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_UpdateResults(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("stores trace, dataset and counts", func(t *testing.T) {
		jobID := uuid.New().String()
		_, err := service.Create(ctx, jobID, "", testBrief())
		require.NoError(t, err)
		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusRunning, nil))

		started := time.Now().Add(-90 * time.Second)
		simID := uuid.New().String()
		results := RunResults{
			Trace: []models.StageTrace{
				{
					StageName:       models.StageQuestionnaire,
					Status:          models.StageStatusCompleted,
					StartedAt:       started,
					CompletedAt:     started.Add(20 * time.Second),
					DurationSeconds: 20,
					Outputs:         map[string]any{"stakeholder_count": 2},
				},
				{
					StageName:       models.StageSimulation,
					Status:          models.StageStatusCompleted,
					StartedAt:       started.Add(20 * time.Second),
					CompletedAt:     started.Add(80 * time.Second),
					DurationSeconds: 60,
					Outputs:         map[string]any{"simulation_id": simID},
				},
			},
			TotalDurationSeconds: 90,
			Dataset: &models.Dataset{
				ScopeID:   uuid.New().String(),
				ScopeName: "Persona dataset",
			},
			StakeholderCount: 2,
			SimulationID:     simID,
			AnalysisID:       41,
			PersonaCount:     10,
			InterviewCount:   10,
		}
		require.NoError(t, service.UpdateResults(ctx, jobID, results))

		run, err := service.Get(ctx, jobID)
		require.NoError(t, err)
		require.Len(t, run.ExecutionTrace, 2)
		assert.Equal(t, models.StageQuestionnaire, run.ExecutionTrace[0].StageName)
		assert.Equal(t, models.StageSimulation, run.ExecutionTrace[1].StageName)
		require.NotNil(t, run.Dataset)
		assert.Equal(t, "Persona dataset", run.Dataset.ScopeName)
		assert.Equal(t, 2, run.QuestionnaireStakeholderCount)
		assert.Equal(t, simID, run.SimulationID)
		assert.Equal(t, 41, run.AnalysisID)
		assert.Equal(t, 10, run.PersonaCount)
		assert.Equal(t, 10, run.InterviewCount)
		assert.Equal(t, 90.0, run.TotalDurationSeconds)
	})

	t.Run("tolerates a failed run with no dataset", func(t *testing.T) {
		jobID := uuid.New().String()
		_, err := service.Create(ctx, jobID, "", testBrief())
		require.NoError(t, err)

		results := RunResults{
			Trace: []models.StageTrace{
				{
					StageName: models.StageQuestionnaire,
					Status:    models.StageStatusFailed,
					Error:     "gemini unavailable",
				},
			},
			TotalDurationSeconds: 3,
		}
		require.NoError(t, service.UpdateResults(ctx, jobID, results))

		run, err := service.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Nil(t, run.Dataset)
		assert.Empty(t, run.SimulationID)
		assert.Zero(t, run.AnalysisID)
	})

	t.Run("terminal runs reject result writes", func(t *testing.T) {
		jobID := uuid.New().String()
		_, err := service.Create(ctx, jobID, "", testBrief())
		require.NoError(t, err)
		require.NoError(t, service.UpdateStatus(ctx, jobID, models.RunStatusFailed, errors.New("boom")))

		err = service.UpdateResults(ctx, jobID, RunResults{TotalDurationSeconds: 1})
		assert.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("unknown job reports not found", func(t *testing.T) {
		err := service.UpdateResults(ctx, uuid.New().String(), RunResults{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ListAndCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	mkRun := func(t *testing.T, userID string, status models.RunStatus) string {
		t.Helper()
		jobID := uuid.New().String()
		_, err := service.Create(ctx, jobID, userID, testBrief())
		require.NoError(t, err)
		if status != models.RunStatusPending {
			require.NoError(t, service.UpdateStatus(ctx, jobID, status, nil))
		}
		return jobID
	}

	mkRun(t, "alice", models.RunStatusCompleted)
	mkRun(t, "alice", models.RunStatusFailed)
	mkRun(t, "bob", models.RunStatusCompleted)
	pendingID := mkRun(t, "bob", models.RunStatusPending)

	t.Run("lists everything newest first by default", func(t *testing.T) {
		runs, err := service.List(ctx, "", "", 0, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 4)
	})

	t.Run("filters by status", func(t *testing.T) {
		runs, err := service.List(ctx, models.RunStatusCompleted, "", 0, 0)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		for _, run := range runs {
			assert.Equal(t, models.RunStatusCompleted, run.Status)
		}

		n, err := service.Count(ctx, models.RunStatusCompleted, "")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("filters by user", func(t *testing.T) {
		runs, err := service.List(ctx, "", "alice", 0, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 2)

		n, err := service.Count(ctx, "", "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("combines status and user filters", func(t *testing.T) {
		runs, err := service.List(ctx, models.RunStatusPending, "bob", 0, 0)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, pendingID, runs[0].JobID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		page1, err := service.List(ctx, "", "", 3, 0)
		require.NoError(t, err)
		assert.Len(t, page1, 3)

		page2, err := service.List(ctx, "", "", 3, 3)
		require.NoError(t, err)
		assert.Len(t, page2, 1)

		seen := map[string]bool{}
		for _, run := range append(page1, page2...) {
			assert.False(t, seen[run.JobID], "job %s returned twice", run.JobID)
			seen[run.JobID] = true
		}
	})

	t.Run("count of unfiltered runs", func(t *testing.T) {
		n, err := service.Count(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})
}

func TestRunService_FailOrphanedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	pendingID := uuid.New().String()
	_, err := service.Create(ctx, pendingID, "user-1", testBrief())
	require.NoError(t, err)

	runningID := uuid.New().String()
	_, err = service.Create(ctx, runningID, "user-1", testBrief())
	require.NoError(t, err)
	require.NoError(t, service.UpdateStatus(ctx, runningID, models.RunStatusRunning, nil))

	completedID := uuid.New().String()
	_, err = service.Create(ctx, completedID, "user-1", testBrief())
	require.NoError(t, err)
	require.NoError(t, service.UpdateStatus(ctx, completedID, models.RunStatusCompleted, nil))

	t.Run("keeps runs younger than the threshold", func(t *testing.T) {
		n, err := service.FailOrphanedRuns(ctx, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, n)

		run, err := service.Get(ctx, pendingID)
		require.NoError(t, err)
		assert.Equal(t, models.RunStatusPending, run.Status)
	})

	t.Run("settles stale non-terminal runs", func(t *testing.T) {
		n, err := service.FailOrphanedRuns(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		for _, jobID := range []string{pendingID, runningID} {
			run, err := service.Get(ctx, jobID)
			require.NoError(t, err)
			assert.Equal(t, models.RunStatusFailed, run.Status)
			assert.Equal(t, "interrupted by process restart", run.Error)
			assert.NotNil(t, run.CompletedAt)
		}

		run, err := service.Get(ctx, completedID)
		require.NoError(t, err)
		assert.Equal(t, models.RunStatusCompleted, run.Status)
		assert.Empty(t, run.Error)
	})

	t.Run("second sweep finds nothing", func(t *testing.T) {
		n, err := service.FailOrphanedRuns(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
