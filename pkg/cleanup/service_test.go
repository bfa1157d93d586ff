package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/config"
	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/services"
	testdb "github.com/synthlab-ai/persim/test/database"
)

func setupRunService(t *testing.T) *services.RunService {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewRunService(client.Client)
}

func sweepBrief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   "A subscription box for houseplant care",
		TargetCustomer: "First-time plant owners",
		Problem:        "Plants die because owners guess at watering and light",
	}
}

func TestService_SweepSettlesOrphanedRuns(t *testing.T) {
	runs := setupRunService(t)
	ctx := context.Background()

	pendingID := uuid.NewString()
	_, err := runs.Create(ctx, pendingID, "", sweepBrief())
	require.NoError(t, err)

	runningID := uuid.NewString()
	_, err = runs.Create(ctx, runningID, "", sweepBrief())
	require.NoError(t, err)
	require.NoError(t, runs.UpdateStatus(ctx, runningID, models.RunStatusRunning, nil))

	completedID := uuid.NewString()
	_, err = runs.Create(ctx, completedID, "", sweepBrief())
	require.NoError(t, err)
	require.NoError(t, runs.UpdateStatus(ctx, completedID, models.RunStatusCompleted, nil))

	// Zero orphan age makes every non-terminal row eligible.
	svc := NewService(&config.RetentionConfig{
		OrphanRunAge:  0,
		SweepInterval: time.Hour,
	}, runs)
	svc.sweep(ctx)

	for _, jobID := range []string{pendingID, runningID} {
		run, err := runs.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, models.RunStatusFailed, run.Status)
		assert.Equal(t, "interrupted by process restart", run.Error)
		assert.NotNil(t, run.CompletedAt)
	}

	// Terminal rows are left alone.
	run, err := runs.Get(ctx, completedID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	assert.Empty(t, run.Error)
}

func TestService_SweepKeepsFreshRuns(t *testing.T) {
	runs := setupRunService(t)
	ctx := context.Background()

	jobID := uuid.NewString()
	_, err := runs.Create(ctx, jobID, "", sweepBrief())
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		OrphanRunAge:  time.Hour,
		SweepInterval: time.Hour,
	}, runs)
	svc.sweep(ctx)

	run, err := runs.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusPending, run.Status)
}

func TestService_StartSweepsImmediately(t *testing.T) {
	runs := setupRunService(t)
	ctx := context.Background()

	jobID := uuid.NewString()
	_, err := runs.Create(ctx, jobID, "", sweepBrief())
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		OrphanRunAge:  0,
		SweepInterval: time.Hour,
	}, runs)
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		run, err := runs.Get(ctx, jobID)
		return err == nil && run.Status == models.RunStatusFailed
	}, 10*time.Second, 25*time.Millisecond, "startup sweep never settled the orphan")
}

func TestService_StopIsIdempotent(t *testing.T) {
	runs := setupRunService(t)

	svc := NewService(&config.RetentionConfig{
		OrphanRunAge:  time.Hour,
		SweepInterval: time.Hour,
	}, runs)

	// Stop before Start is a no-op.
	svc.Stop()

	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()
}
