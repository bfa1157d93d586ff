package services

import (
	"context"
	"fmt"
	"time"

	"github.com/synthlab-ai/persim/ent"
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/pkg/models"
)

// RunService persists pipeline run rows. The rows are authoritative; the job
// registry's in-memory map only mirrors them.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// RunResults carries everything a finished orchestration persists.
type RunResults struct {
	Trace                []models.StageTrace
	TotalDurationSeconds float64
	Dataset              *models.Dataset
	StakeholderCount     int
	SimulationID         string
	AnalysisID           int
	PersonaCount         int
	InterviewCount       int
}

// Create inserts a pending run row
func (s *RunService) Create(httpCtx context.Context, jobID, userID string, brief models.BusinessBrief) (*models.PipelineRun, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if field := brief.Validate(); field != "" {
		return nil, NewValidationError(field, "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.PipelineRun.Create().
		SetID(jobID).
		SetStatus(pipelinerun.StatusPending).
		SetBusinessContext(brief)
	if userID != "" {
		builder.SetUserID(userID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return runFromRow(row), nil
}

// UpdateStatus moves a run through its lifecycle. Reaching running stamps
// started_at; reaching a terminal status stamps completed_at and derives
// duration_seconds from started_at. Terminal rows reject further transitions.
func (s *RunService) UpdateStatus(httpCtx context.Context, jobID string, status models.RunStatus, cause error) error {
	if !status.IsValid() {
		return NewValidationError("status", "unknown value")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.PipelineRun.Query().
		Where(pipelinerun.IDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load run: %w", err)
	}
	if models.RunStatus(row.Status).IsTerminal() {
		return ErrTerminalState
	}

	now := time.Now()
	update := tx.PipelineRun.UpdateOneID(jobID).
		SetStatus(pipelinerun.Status(status))
	if status == models.RunStatusRunning && row.StartedAt == nil {
		update.SetStartedAt(now)
	}
	if status.IsTerminal() {
		update.SetCompletedAt(now)
		started := row.StartedAt
		if started == nil {
			started = &now
		}
		update.SetDurationSeconds(now.Sub(*started).Seconds())
	}
	if cause != nil {
		update.SetErrorMessage(cause.Error())
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateResults stores the orchestration trace and artefacts
func (s *RunService) UpdateResults(httpCtx context.Context, jobID string, results RunResults) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.PipelineRun.Update().
		Where(
			pipelinerun.IDEQ(jobID),
			pipelinerun.StatusNotIn(
				pipelinerun.StatusCompleted,
				pipelinerun.StatusPartial,
				pipelinerun.StatusFailed,
			),
		).
		SetExecutionTrace(results.Trace).
		SetTotalDurationSeconds(results.TotalDurationSeconds).
		SetQuestionnaireStakeholderCount(results.StakeholderCount).
		SetPersonaCount(results.PersonaCount).
		SetInterviewCount(results.InterviewCount)
	if results.Dataset != nil {
		update.SetDataset(results.Dataset)
	}
	if results.SimulationID != "" {
		update.SetSimulationID(results.SimulationID)
	}
	if results.AnalysisID != 0 {
		update.SetAnalysisID(results.AnalysisID)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to store run results: %w", err)
	}
	if n == 0 {
		exists, eerr := s.client.PipelineRun.Query().
			Where(pipelinerun.IDEQ(jobID)).
			Exist(ctx)
		if eerr != nil {
			return fmt.Errorf("failed to check run state: %w", eerr)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrTerminalState
	}
	return nil
}

// FailOrphanedRuns settles non-terminal run rows older than olderThan. Such
// rows belong to a process that died before persisting an outcome; no
// goroutine will ever finish them. Idempotent and safe to run from multiple
// pods. Returns how many rows were settled.
func (s *RunService) FailOrphanedRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	n, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.StatusIn(pipelinerun.StatusPending, pipelinerun.StatusRunning),
			pipelinerun.CreatedAtLT(cutoff),
		).
		SetStatus(pipelinerun.StatusFailed).
		SetErrorMessage("interrupted by process restart").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to settle orphaned runs: %w", err)
	}
	return n, nil
}

// Get retrieves one run by job id
func (s *RunService) Get(ctx context.Context, jobID string) (*models.PipelineRun, error) {
	row, err := s.client.PipelineRun.Query().
		Where(pipelinerun.IDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) || isUndefinedTable(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return runFromRow(row), nil
}

// List returns runs newest-first with optional status and user filters
func (s *RunService) List(ctx context.Context, status models.RunStatus, userID string, limit, offset int) ([]*models.PipelineRun, error) {
	query := s.client.PipelineRun.Query()
	if status != "" {
		query = query.Where(pipelinerun.StatusEQ(pipelinerun.Status(status)))
	}
	if userID != "" {
		query = query.Where(pipelinerun.UserIDEQ(userID))
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(pipelinerun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		if isUndefinedTable(err) {
			return []*models.PipelineRun{}, nil
		}
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	out := make([]*models.PipelineRun, 0, len(rows))
	for _, row := range rows {
		out = append(out, runFromRow(row))
	}
	return out, nil
}

// Count returns how many runs match the filters
func (s *RunService) Count(ctx context.Context, status models.RunStatus, userID string) (int, error) {
	query := s.client.PipelineRun.Query()
	if status != "" {
		query = query.Where(pipelinerun.StatusEQ(pipelinerun.Status(status)))
	}
	if userID != "" {
		query = query.Where(pipelinerun.UserIDEQ(userID))
	}

	n, err := query.Count(ctx)
	if err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

func runFromRow(row *ent.PipelineRun) *models.PipelineRun {
	run := &models.PipelineRun{
		JobID:                         row.ID,
		UserID:                        row.UserID,
		Status:                        models.RunStatus(row.Status),
		BusinessContext:               row.BusinessContext,
		ExecutionTrace:                row.ExecutionTrace,
		Dataset:                       row.Dataset,
		QuestionnaireStakeholderCount: row.QuestionnaireStakeholderCount,
		PersonaCount:                  row.PersonaCount,
		InterviewCount:                row.InterviewCount,
		TotalDurationSeconds:          row.TotalDurationSeconds,
		CreatedAt:                     row.CreatedAt,
		StartedAt:                     row.StartedAt,
		CompletedAt:                   row.CompletedAt,
		DurationSeconds:               row.DurationSeconds,
	}
	if row.SimulationID != nil {
		run.SimulationID = *row.SimulationID
	}
	if row.AnalysisID != nil {
		run.AnalysisID = *row.AnalysisID
	}
	if row.ErrorMessage != nil {
		run.Error = *row.ErrorMessage
	}
	return run
}
