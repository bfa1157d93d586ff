package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/services"
)

// ErrShutdown is returned by Submit once Shutdown has stopped intake.
var ErrShutdown = errors.New("job registry is shut down")

// errCancelled is the terminal error marker for cancelled jobs.
var errCancelled = errors.New("cancelled")

// RunStore is the slice of the run service the registry needs. The rows are
// the durable authority; the registry's map only mirrors them for cheap polls.
type RunStore interface {
	Create(ctx context.Context, jobID, userID string, brief models.BusinessBrief) (*models.PipelineRun, error)
	UpdateStatus(ctx context.Context, jobID string, status models.RunStatus, cause error) error
	UpdateResults(ctx context.Context, jobID string, results services.RunResults) error
	Get(ctx context.Context, jobID string) (*models.PipelineRun, error)
	List(ctx context.Context, status models.RunStatus, userID string, limit, offset int) ([]*models.PipelineRun, error)
	Count(ctx context.Context, status models.RunStatus, userID string) (int, error)
}

// Runner executes one pipeline run. Implemented by Orchestrator.
type Runner interface {
	Run(ctx context.Context, brief models.BusinessBrief, cfg models.SimulationConfig, userID string) *Outcome
}

// List pagination bounds.
const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Registry supervises background pipeline jobs: one goroutine per job, a
// cancel handle per live job, and an in-memory status mirror. Jobs are never
// serialised; after a restart only the database rows remain.
type Registry struct {
	runner Runner
	runs   RunStore
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*models.JobStatus
	cancels map[string]context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
}

// NewRegistry creates a new Registry
func NewRegistry(runner Runner, runs RunStore) *Registry {
	return &Registry{
		runner:  runner,
		runs:    runs,
		logger:  slog.With("component", "registry"),
		entries: make(map[string]*models.JobStatus),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Submit validates the brief, persists a pending run row, registers the job
// and spawns its goroutine. The returned status is the pending snapshot.
func (r *Registry) Submit(ctx context.Context, brief models.BusinessBrief, userID string) (*models.JobStatus, error) {
	if field := brief.Validate(); field != "" {
		return nil, services.NewValidationError(field, "required")
	}

	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return nil, ErrShutdown
	}

	jobID := uuid.NewString()
	run, err := r.runs.Create(ctx, jobID, userID, brief)
	if err != nil {
		return nil, fmt.Errorf("failed to register run: %w", err)
	}

	entry := &models.JobStatus{
		JobID:     jobID,
		Status:    models.RunStatusPending,
		CreatedAt: run.CreatedAt,
	}
	jobCtx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		cancel()
		if err := r.runs.UpdateStatus(ctx, jobID, models.RunStatusFailed, ErrShutdown); err != nil {
			r.logger.Error("failed to close orphaned run", "job_id", jobID, "error", err)
		}
		return nil, ErrShutdown
	}
	r.entries[jobID] = entry
	r.cancels[jobID] = cancel
	r.wg.Add(1)
	snapshot := *entry
	r.mu.Unlock()

	metrics.IncActiveRuns()
	go r.execute(jobCtx, jobID, brief, userID)

	r.logger.Info("pipeline job submitted", "job_id", jobID)
	return &snapshot, nil
}

func (r *Registry) execute(ctx context.Context, jobID string, brief models.BusinessBrief, userID string) {
	defer r.wg.Done()
	started := time.Now()

	if err := r.runs.UpdateStatus(ctx, jobID, models.RunStatusRunning, nil); err != nil {
		r.logger.Error("failed to mark run running", "job_id", jobID, "error", err)
	}
	now := time.Now()
	r.setEntry(jobID, func(e *models.JobStatus) {
		e.Status = models.RunStatusRunning
		e.StartedAt = &now
	})

	outcome := r.runner.Run(ctx, brief, models.DefaultSimulationConfig(), userID)

	// Terminal writes run on a background context so that job cancellation
	// cannot lose them.
	persistCtx := context.Background()

	if err := r.runs.UpdateResults(persistCtx, jobID, services.RunResults{
		Trace:                outcome.Trace,
		TotalDurationSeconds: outcome.TotalDurationSeconds,
		Dataset:              outcome.Dataset,
		StakeholderCount:     outcome.StakeholderCount,
		SimulationID:         outcome.SimulationID,
		AnalysisID:           outcome.AnalysisID,
		PersonaCount:         outcome.PersonaCount,
		InterviewCount:       outcome.InterviewCount,
	}); err != nil {
		r.logger.Error("failed to persist run results", "job_id", jobID, "error", err)
	}

	status := outcome.Status
	var cause error
	if ctx.Err() != nil {
		status = models.RunStatusFailed
		cause = errCancelled
	} else if status != models.RunStatusCompleted {
		cause = firstStageError(outcome.Trace)
	}
	if err := r.runs.UpdateStatus(persistCtx, jobID, status, cause); err != nil {
		r.logger.Error("failed to persist run status", "job_id", jobID, "error", err)
	}

	// The terminal entry update and the handle removal share one critical
	// section so Cancel never sees a finished job with a live handle.
	completedAt := time.Now()
	r.mu.Lock()
	if e, ok := r.entries[jobID]; ok {
		e.Status = status
		e.CompletedAt = &completedAt
		if cause != nil {
			e.Error = cause.Error()
		}
		if status == models.RunStatusCompleted && outcome.Dataset != nil {
			e.Result = &models.RunResult{
				Dataset:              outcome.Dataset,
				ExecutionTrace:       outcome.Trace,
				TotalDurationSeconds: outcome.TotalDurationSeconds,
				PersonaCount:         outcome.PersonaCount,
				InterviewCount:       outcome.InterviewCount,
			}
		}
	}
	delete(r.cancels, jobID)
	r.mu.Unlock()

	metrics.DecActiveRuns()
	metrics.ObservePipelineRun(string(status), time.Since(started))

	r.logger.Info("pipeline job finished",
		"job_id", jobID,
		"status", status,
		"duration_seconds", time.Since(started).Seconds())
}

// Cancel stops a live job. Known-but-finished jobs and rows we hold no handle
// for report ErrNotCancellable; unknown ids report ErrNotFound.
func (r *Registry) Cancel(ctx context.Context, jobID string) error {
	r.mu.Lock()
	cancel, live := r.cancels[jobID]
	_, known := r.entries[jobID]
	r.mu.Unlock()

	if live {
		cancel()
		r.logger.Info("cancellation requested", "job_id", jobID)
		return nil
	}
	if known {
		return services.ErrNotCancellable
	}
	if _, err := r.runs.Get(ctx, jobID); err != nil {
		return err
	}
	return services.ErrNotCancellable
}

// Get answers a poll. Memory first; rows persisted by an earlier process are
// reconstructed from the repository.
func (r *Registry) Get(ctx context.Context, jobID string) (*models.JobStatus, error) {
	r.mu.RLock()
	entry, ok := r.entries[jobID]
	var snapshot models.JobStatus
	if ok {
		snapshot = *entry
	}
	r.mu.RUnlock()
	if ok {
		return &snapshot, nil
	}

	run, err := r.runs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return jobStatusFromRun(run), nil
}

// GetDetail returns the full run row including trace and dataset.
func (r *Registry) GetDetail(ctx context.Context, jobID string) (*models.PipelineRun, error) {
	return r.runs.Get(ctx, jobID)
}

// List pages through run summaries, newest first.
func (r *Registry) List(ctx context.Context, status models.RunStatus, limit, offset int) (*models.RunListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	total, err := r.runs.Count(ctx, status, "")
	if err != nil {
		return nil, err
	}
	runs, err := r.runs.List(ctx, status, "", limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, models.RunSummary{
			JobID:                run.JobID,
			Status:               run.Status,
			BusinessContext:      run.BusinessContext,
			CreatedAt:            run.CreatedAt,
			CompletedAt:          run.CompletedAt,
			TotalDurationSeconds: run.TotalDurationSeconds,
			PersonaCount:         run.PersonaCount,
			InterviewCount:       run.InterviewCount,
			Error:                run.Error,
		})
	}
	return &models.RunListResponse{
		Runs:       summaries,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Shutdown stops intake and waits for in-flight jobs until ctx expires.
// Running jobs are not cancelled; they finish and persist normally. Safe to
// call more than once; every call waits.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	active := len(r.cancels)
	r.mu.Unlock()

	if active > 0 {
		r.logger.Info("waiting for in-flight pipeline jobs", "count", active)
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown wait aborted: %w", ctx.Err())
	}
}

func (r *Registry) setEntry(jobID string, fn func(*models.JobStatus)) {
	r.mu.Lock()
	if e, ok := r.entries[jobID]; ok {
		fn(e)
	}
	r.mu.Unlock()
}

func firstStageError(trace []models.StageTrace) error {
	for _, entry := range trace {
		if entry.Status == models.StageStatusFailed && entry.Error != "" {
			return errors.New(entry.Error)
		}
	}
	return nil
}

func jobStatusFromRun(run *models.PipelineRun) *models.JobStatus {
	status := &models.JobStatus{
		JobID:       run.JobID,
		Status:      run.Status,
		CreatedAt:   run.CreatedAt,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		Error:       run.Error,
	}
	if run.Status == models.RunStatusCompleted && run.Dataset != nil {
		status.Result = &models.RunResult{
			Dataset:              run.Dataset,
			ExecutionTrace:       run.ExecutionTrace,
			TotalDurationSeconds: run.TotalDurationSeconds,
			PersonaCount:         run.PersonaCount,
			InterviewCount:       run.InterviewCount,
		}
	}
	return status
}
