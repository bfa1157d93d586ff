package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/services"
)

type fakeRunStore struct {
	mu        sync.Mutex
	rows      map[string]*models.PipelineRun
	order     []string
	createErr error
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{rows: make(map[string]*models.PipelineRun)}
}

func (s *fakeRunStore) Create(_ context.Context, jobID, userID string, brief models.BusinessBrief) (*models.PipelineRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	run := &models.PipelineRun{
		JobID:           jobID,
		UserID:          userID,
		Status:          models.RunStatusPending,
		BusinessContext: brief,
		CreatedAt:       time.Now(),
	}
	s.rows[jobID] = run
	s.order = append(s.order, jobID)
	cp := *run
	return &cp, nil
}

func (s *fakeRunStore) UpdateStatus(_ context.Context, jobID string, status models.RunStatus, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.rows[jobID]
	if !ok {
		return services.ErrNotFound
	}
	run.Status = status
	now := time.Now()
	if status == models.RunStatusRunning && run.StartedAt == nil {
		run.StartedAt = &now
	}
	if status.IsTerminal() {
		run.CompletedAt = &now
	}
	if cause != nil {
		run.Error = cause.Error()
	}
	return nil
}

func (s *fakeRunStore) UpdateResults(_ context.Context, jobID string, results services.RunResults) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.rows[jobID]
	if !ok {
		return services.ErrNotFound
	}
	run.ExecutionTrace = results.Trace
	run.TotalDurationSeconds = results.TotalDurationSeconds
	run.Dataset = results.Dataset
	run.QuestionnaireStakeholderCount = results.StakeholderCount
	run.SimulationID = results.SimulationID
	run.AnalysisID = results.AnalysisID
	run.PersonaCount = results.PersonaCount
	run.InterviewCount = results.InterviewCount
	return nil
}

func (s *fakeRunStore) Get(_ context.Context, jobID string) (*models.PipelineRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.rows[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	cp := *run
	return &cp, nil
}

func (s *fakeRunStore) List(_ context.Context, status models.RunStatus, userID string, limit, offset int) ([]*models.PipelineRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.filter(status, userID)
	if offset >= len(matched) {
		return []*models.PipelineRun{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	out := make([]*models.PipelineRun, 0, len(matched))
	for _, run := range matched {
		cp := *run
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeRunStore) Count(_ context.Context, status models.RunStatus, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filter(status, userID)), nil
}

func (s *fakeRunStore) filter(status models.RunStatus, userID string) []*models.PipelineRun {
	matched := []*models.PipelineRun{}
	for _, id := range s.order {
		run := s.rows[id]
		if status != "" && run.Status != status {
			continue
		}
		if userID != "" && run.UserID != userID {
			continue
		}
		matched = append(matched, run)
	}
	return matched
}

func (s *fakeRunStore) row(jobID string) models.PipelineRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.rows[jobID]
}

type fakeRunner struct {
	fn func(ctx context.Context) *Outcome
}

func (f *fakeRunner) Run(ctx context.Context, _ models.BusinessBrief, _ models.SimulationConfig, _ string) *Outcome {
	if f.fn != nil {
		return f.fn(ctx)
	}
	return completedOutcome()
}

func completedOutcome() *Outcome {
	return &Outcome{
		Status: models.RunStatusCompleted,
		Trace: []models.StageTrace{
			{StageName: models.StageQuestionnaire, Status: models.StageStatusCompleted},
			{StageName: models.StageSimulation, Status: models.StageStatusCompleted},
			{StageName: models.StageAnalysis, Status: models.StageStatusCompleted},
			{StageName: models.StageExport, Status: models.StageStatusCompleted},
		},
		Dataset:              &models.Dataset{ScopeID: "scope-1", ScopeName: "Persona dataset"},
		TotalDurationSeconds: 1.5,
		StakeholderCount:     2,
		SimulationID:         "sim-1",
		AnalysisID:           41,
		PersonaCount:         10,
		InterviewCount:       9,
	}
}

func failedOutcome(marker string) *Outcome {
	return &Outcome{
		Status: models.RunStatusFailed,
		Trace: []models.StageTrace{
			{StageName: models.StageQuestionnaire, Status: models.StageStatusFailed, Error: marker},
			{StageName: models.StageSimulation, Status: models.StageStatusSkipped, Error: "Skipped because questionnaire did not complete."},
			{StageName: models.StageAnalysis, Status: models.StageStatusSkipped, Error: "Skipped because simulation did not complete."},
			{StageName: models.StageExport, Status: models.StageStatusSkipped, Error: "Skipped because analysis did not complete."},
		},
		TotalDurationSeconds: 0.2,
	}
}

func waitForTerminal(t *testing.T, reg *Registry, jobID string) *models.JobStatus {
	t.Helper()
	var status *models.JobStatus
	require.Eventually(t, func() bool {
		st, err := reg.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		status = st
		return st.Status.IsTerminal()
	}, 2*time.Second, 5*time.Millisecond)
	return status
}

func TestSubmitRunsJobToCompletion(t *testing.T) {
	store := newFakeRunStore()
	reg := NewRegistry(&fakeRunner{}, store)

	st, err := reg.Submit(context.Background(), runBrief(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, st.JobID)
	assert.Equal(t, models.RunStatusPending, st.Status)
	assert.Nil(t, st.Result)

	final := waitForTerminal(t, reg, st.JobID)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
	require.NotNil(t, final.StartedAt)
	require.NotNil(t, final.CompletedAt)
	assert.Empty(t, final.Error)
	require.NotNil(t, final.Result)
	assert.Equal(t, "scope-1", final.Result.Dataset.ScopeID)
	assert.Equal(t, 10, final.Result.PersonaCount)
	assert.Len(t, final.Result.ExecutionTrace, 4)

	row := store.row(st.JobID)
	assert.Equal(t, models.RunStatusCompleted, row.Status)
	assert.Equal(t, "sim-1", row.SimulationID)
	assert.Equal(t, 41, row.AnalysisID)
	require.NotNil(t, row.Dataset)
	assert.Equal(t, "user-1", row.UserID)
}

func TestSubmitValidatesBrief(t *testing.T) {
	store := newFakeRunStore()
	reg := NewRegistry(&fakeRunner{}, store)

	_, err := reg.Submit(context.Background(), models.BusinessBrief{BusinessIdea: "x"}, "")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.Empty(t, store.order)
}

func TestSubmitPropagatesCreateFailure(t *testing.T) {
	store := newFakeRunStore()
	store.createErr = errors.New("connection refused")
	reg := NewRegistry(&fakeRunner{}, store)

	_, err := reg.Submit(context.Background(), runBrief(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register run")
}

func TestFailedOutcomeCarriesFirstStageError(t *testing.T) {
	store := newFakeRunStore()
	runner := &fakeRunner{fn: func(context.Context) *Outcome {
		return failedOutcome("gemini: 503")
	}}
	reg := NewRegistry(runner, store)

	st, err := reg.Submit(context.Background(), runBrief(), "")
	require.NoError(t, err)

	final := waitForTerminal(t, reg, st.JobID)
	assert.Equal(t, models.RunStatusFailed, final.Status)
	assert.Contains(t, final.Error, "503")
	assert.Nil(t, final.Result)

	row := store.row(st.JobID)
	assert.Equal(t, models.RunStatusFailed, row.Status)
	assert.Contains(t, row.Error, "503")
	assert.Len(t, row.ExecutionTrace, 4)
}

func TestPartialOutcomeKeepsTraceAndCounts(t *testing.T) {
	store := newFakeRunStore()
	runner := &fakeRunner{fn: func(context.Context) *Outcome {
		return &Outcome{
			Status: models.RunStatusPartial,
			Trace: []models.StageTrace{
				{StageName: models.StageQuestionnaire, Status: models.StageStatusCompleted},
				{StageName: models.StageSimulation, Status: models.StageStatusFailed, Error: "all interviews failed"},
				{StageName: models.StageAnalysis, Status: models.StageStatusSkipped, Error: "Skipped because simulation did not complete."},
				{StageName: models.StageExport, Status: models.StageStatusSkipped, Error: "Skipped because analysis did not complete."},
			},
			TotalDurationSeconds: 0.9,
			StakeholderCount:     2,
			SimulationID:         "sim-9",
		}
	}}
	reg := NewRegistry(runner, store)

	st, err := reg.Submit(context.Background(), runBrief(), "")
	require.NoError(t, err)

	final := waitForTerminal(t, reg, st.JobID)
	assert.Equal(t, models.RunStatusPartial, final.Status)
	assert.Contains(t, final.Error, "all interviews failed")
	assert.Nil(t, final.Result)

	row := store.row(st.JobID)
	assert.Equal(t, "sim-9", row.SimulationID)
	assert.Equal(t, 2, row.QuestionnaireStakeholderCount)
	assert.Nil(t, row.Dataset)
}

func TestCancelStopsLiveJob(t *testing.T) {
	store := newFakeRunStore()
	runner := &fakeRunner{fn: func(ctx context.Context) *Outcome {
		<-ctx.Done()
		return &Outcome{
			Status: models.RunStatusPartial,
			Trace: []models.StageTrace{
				{StageName: models.StageQuestionnaire, Status: models.StageStatusCompleted},
				{StageName: models.StageSimulation, Status: models.StageStatusFailed, Error: "cancelled before simulation: context canceled"},
			},
		}
	}}
	reg := NewRegistry(runner, store)

	st, err := reg.Submit(context.Background(), runBrief(), "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := reg.Get(context.Background(), st.JobID)
		return err == nil && got.Status == models.RunStatusRunning
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, reg.Cancel(context.Background(), st.JobID))

	final := waitForTerminal(t, reg, st.JobID)
	assert.Equal(t, models.RunStatusFailed, final.Status)
	assert.Equal(t, "cancelled", final.Error)

	row := store.row(st.JobID)
	assert.Equal(t, models.RunStatusFailed, row.Status)
	assert.Equal(t, "cancelled", row.Error)
}

func TestCancelUnknownJob(t *testing.T) {
	reg := NewRegistry(&fakeRunner{}, newFakeRunStore())

	err := reg.Cancel(context.Background(), "nope")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCancelFinishedJob(t *testing.T) {
	store := newFakeRunStore()
	reg := NewRegistry(&fakeRunner{}, store)

	st, err := reg.Submit(context.Background(), runBrief(), "")
	require.NoError(t, err)
	waitForTerminal(t, reg, st.JobID)

	err = reg.Cancel(context.Background(), st.JobID)
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestCancelRowFromAnotherProcess(t *testing.T) {
	store := newFakeRunStore()
	_, err := store.Create(context.Background(), "job-elsewhere", "", runBrief())
	require.NoError(t, err)
	reg := NewRegistry(&fakeRunner{}, store)

	err = reg.Cancel(context.Background(), "job-elsewhere")
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestGetFallsBackToStore(t *testing.T) {
	store := newFakeRunStore()
	_, err := store.Create(context.Background(), "job-old", "", runBrief())
	require.NoError(t, err)
	require.NoError(t, store.UpdateResults(context.Background(), "job-old", services.RunResults{
		Dataset:              &models.Dataset{ScopeID: "scope-old"},
		Trace:                completedOutcome().Trace,
		TotalDurationSeconds: 2.5,
		PersonaCount:         4,
		InterviewCount:       4,
	}))
	require.NoError(t, store.UpdateStatus(context.Background(), "job-old", models.RunStatusCompleted, nil))

	reg := NewRegistry(&fakeRunner{}, store)

	got, err := reg.Get(context.Background(), "job-old")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, "scope-old", got.Result.Dataset.ScopeID)
	assert.Equal(t, 4, got.Result.PersonaCount)

	_, err = reg.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetFallbackWithoutDatasetHasNoResult(t *testing.T) {
	store := newFakeRunStore()
	_, err := store.Create(context.Background(), "job-failed", "", runBrief())
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(context.Background(), "job-failed", models.RunStatusFailed, errors.New("gemini: 503")))

	reg := NewRegistry(&fakeRunner{}, store)

	got, err := reg.Get(context.Background(), "job-failed")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFailed, got.Status)
	assert.Nil(t, got.Result)
	assert.Contains(t, got.Error, "503")
}

func TestListClampsPaginationAndMapsSummaries(t *testing.T) {
	store := newFakeRunStore()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, id, "", runBrief())
		require.NoError(t, err)
	}
	require.NoError(t, store.UpdateStatus(ctx, "a", models.RunStatusCompleted, nil))

	reg := NewRegistry(&fakeRunner{}, store)

	resp, err := reg.List(ctx, "", 0, -3)
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Runs, 3)
	assert.Equal(t, runBrief().BusinessIdea, resp.Runs[0].BusinessContext.BusinessIdea)

	resp, err = reg.List(ctx, "", 500, 0)
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, resp.Limit)

	resp, err = reg.List(ctx, models.RunStatusCompleted, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, "a", resp.Runs[0].JobID)
}

func TestShutdownStopsIntake(t *testing.T) {
	reg := NewRegistry(&fakeRunner{}, newFakeRunStore())

	require.NoError(t, reg.Shutdown(context.Background()))

	_, err := reg.Submit(context.Background(), runBrief(), "")
	assert.ErrorIs(t, err, ErrShutdown)
}

func TestShutdownWaitsForInFlightJobs(t *testing.T) {
	release := make(chan struct{})
	runner := &fakeRunner{fn: func(context.Context) *Outcome {
		<-release
		return completedOutcome()
	}}
	store := newFakeRunStore()
	reg := NewRegistry(runner, store)

	st, err := reg.Submit(context.Background(), runBrief(), "")
	require.NoError(t, err)

	shortCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = reg.Shutdown(shortCtx)
	require.Error(t, err)

	close(release)
	require.NoError(t, reg.Shutdown(context.Background()))

	final, err := reg.Get(context.Background(), st.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
}
