// Package pipeline runs the four-stage research pipeline and tracks its
// background jobs. The orchestrator owns one run end to end; the registry
// supervises the goroutines running them.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/synthlab-ai/persim/pkg/analysis"
	"github.com/synthlab-ai/persim/pkg/interview"
	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/models"
)

// QuestionnaireBuilder produces the stage-1 questionnaire.
type QuestionnaireBuilder interface {
	Build(ctx context.Context, brief models.BusinessBrief) (*models.Questionnaire, error)
}

// InterviewRunner executes the stage-2 fanout.
type InterviewRunner interface {
	Run(ctx context.Context, q *models.Questionnaire, brief models.BusinessBrief, cfg models.SimulationConfig, progress interview.ProgressFunc) (*interview.Result, error)
}

// Analyzer executes the stage-3 analysis over raw interviews.
type Analyzer interface {
	Analyze(ctx context.Context, interviews []models.Interview, opts analysis.Options) (*models.DetailedAnalysis, error)
}

// DatasetAssembler executes the stage-4 export.
type DatasetAssembler interface {
	Assemble(ctx context.Context, analysisID int) (*models.Dataset, error)
}

// SimulationStore is the slice of the simulation service stage 2 needs.
type SimulationStore interface {
	Create(ctx context.Context, simulationID, userID string, brief models.BusinessBrief, questions *models.Questionnaire, config models.SimulationConfig) (*models.Simulation, error)
	MarkRunning(ctx context.Context, simulationID string) error
	UpdateResults(ctx context.Context, simulationID string, personas []models.Persona, interviews []models.Interview, insights *models.SimulationInsights, formatted map[string]any) error
	MarkFailed(ctx context.Context, simulationID string, cause error) error
}

// AnalysisStore persists stage-3 envelopes.
type AnalysisStore interface {
	Insert(ctx context.Context, simulationID *string, results *models.DetailedAnalysis, provider, model, status string, cause error) (int, error)
}

// Deps wires the orchestrator. Provider and Model annotate stored analysis rows.
type Deps struct {
	Questionnaires QuestionnaireBuilder
	Interviews     InterviewRunner
	Analyses       Analyzer
	Datasets       DatasetAssembler
	Simulations    SimulationStore
	AnalysisRows   AnalysisStore
	Provider       string
	Model          string
}

// Orchestrator drives the four pipeline stages in order, appending exactly
// one trace entry per stage. Stage failures are recorded in the trace, never
// re-raised; a stage whose predecessor did not complete is skipped.
type Orchestrator struct {
	deps   Deps
	logger *slog.Logger
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(deps Deps) *Orchestrator {
	return &Orchestrator{
		deps:   deps,
		logger: slog.With("component", "pipeline"),
	}
}

// Outcome is everything one run produced, regardless of how it ended.
// Intermediate ids and counts survive stage failures so a failed run still
// reports what it got through.
type Outcome struct {
	Status               models.RunStatus
	Trace                []models.StageTrace
	Dataset              *models.Dataset
	TotalDurationSeconds float64
	StakeholderCount     int
	SimulationID         string
	AnalysisID           int
	PersonaCount         int
	InterviewCount       int
}

// Run executes questionnaire, simulation, analysis and export for one brief.
// Classification: completed iff all four stages completed and a dataset
// exists, partial iff at least one completed, failed otherwise.
func (o *Orchestrator) Run(ctx context.Context, brief models.BusinessBrief, cfg models.SimulationConfig, userID string) *Outcome {
	start := time.Now()
	cfg.Normalize()

	out := &Outcome{}
	var (
		questionnaire *models.Questionnaire
		fanout        *interview.Result
	)

	stages := []struct {
		name string
		run  func(context.Context) (map[string]any, error)
	}{
		{models.StageQuestionnaire, func(ctx context.Context) (map[string]any, error) {
			q, err := o.deps.Questionnaires.Build(ctx, brief)
			if err != nil {
				return nil, err
			}
			questionnaire = q
			out.StakeholderCount = q.StakeholderCount()
			return map[string]any{
				"stakeholder_count": q.StakeholderCount(),
				"total_questions":   q.TotalQuestions(),
				"time_estimate":     q.TimeEstimate,
			}, nil
		}},
		{models.StageSimulation, func(ctx context.Context) (map[string]any, error) {
			simID, res, err := o.RunSimulation(ctx, brief, questionnaire, cfg, userID)
			if simID != "" {
				out.SimulationID = simID
			}
			if err != nil {
				return nil, err
			}
			fanout = res
			out.PersonaCount = len(res.Personas)
			out.InterviewCount = len(res.Interviews)
			return map[string]any{
				"simulation_id":     simID,
				"persona_count":     len(res.Personas),
				"interview_count":   len(res.Interviews),
				"failed_interviews": res.Failed,
			}, nil
		}},
		{models.StageAnalysis, func(ctx context.Context) (map[string]any, error) {
			simRef := &out.SimulationID
			envelope, err := o.deps.Analyses.Analyze(ctx, fanout.Interviews, analysis.Options{})
			if err != nil {
				if _, ierr := o.deps.AnalysisRows.Insert(ctx, simRef, nil, o.deps.Provider, o.deps.Model, "failed", err); ierr != nil {
					o.logger.Error("failed to record failed analysis", "error", ierr)
				}
				return nil, err
			}
			id, err := o.deps.AnalysisRows.Insert(ctx, simRef, envelope, o.deps.Provider, o.deps.Model, "completed", nil)
			if err != nil {
				return nil, fmt.Errorf("failed to store analysis results: %w", err)
			}
			out.AnalysisID = id
			return map[string]any{
				"analysis_id":   id,
				"theme_count":   len(envelope.Themes),
				"insight_count": len(envelope.Insights),
			}, nil
		}},
		{models.StageExport, func(ctx context.Context) (map[string]any, error) {
			ds, err := o.deps.Datasets.Assemble(ctx, out.AnalysisID)
			if err != nil {
				return nil, err
			}
			out.Dataset = ds
			return map[string]any{
				"persona_count":        len(ds.Personas),
				"interview_count":      len(ds.Interviews),
				"stakeholder_coverage": ds.Quality.StakeholderCoverage,
			}, nil
		}},
	}

	completed := 0
	for i, s := range stages {
		if i > 0 && out.Trace[i-1].Status != models.StageStatusCompleted {
			out.Trace = append(out.Trace, skippedTrace(s.name, stages[i-1].name))
			continue
		}
		if o.runStage(ctx, s.name, s.run, out) {
			completed++
		}
	}

	out.TotalDurationSeconds = time.Since(start).Seconds()
	switch {
	case completed == len(stages) && out.Dataset != nil:
		out.Status = models.RunStatusCompleted
	case completed > 0:
		out.Status = models.RunStatusPartial
	default:
		out.Status = models.RunStatusFailed
	}

	o.logger.Info("pipeline run finished",
		"status", out.Status,
		"stages_completed", completed,
		"duration_seconds", out.TotalDurationSeconds)
	return out
}

// RunSimulation executes stage 2 on its own: creates the simulation record,
// runs the fanout and stores the results. Shared by the orchestrator and the
// synchronous simulations endpoint. The returned id is non-empty as soon as
// the record exists, even when a later step fails.
func (o *Orchestrator) RunSimulation(ctx context.Context, brief models.BusinessBrief, q *models.Questionnaire, cfg models.SimulationConfig, userID string) (string, *interview.Result, error) {
	cfg.Normalize()

	simID := uuid.NewString()
	if _, err := o.deps.Simulations.Create(ctx, simID, userID, brief, q, cfg); err != nil {
		return "", nil, fmt.Errorf("failed to create simulation record: %w", err)
	}
	if err := o.deps.Simulations.MarkRunning(ctx, simID); err != nil {
		return simID, nil, fmt.Errorf("failed to mark simulation running: %w", err)
	}

	progress := func(message string, completed, total, failed int) {
		o.logger.Debug("interview progress",
			"simulation_id", simID,
			"message", message,
			"completed", completed,
			"total", total,
			"failed", failed)
	}

	res, err := o.deps.Interviews.Run(ctx, q, brief, cfg, progress)
	if err != nil {
		if ferr := o.deps.Simulations.MarkFailed(ctx, simID, err); ferr != nil {
			o.logger.Error("failed to mark simulation failed", "simulation_id", simID, "error", ferr)
		}
		return simID, nil, err
	}

	var insights *models.SimulationInsights
	if cfg.IncludeInsights {
		insights = buildInsights(res.Interviews, res.Failed)
	}
	formatted := formatResults(res.Personas, res.Interviews)

	if err := o.deps.Simulations.UpdateResults(ctx, simID, res.Personas, res.Interviews, insights, formatted); err != nil {
		return simID, nil, fmt.Errorf("failed to store simulation results: %w", err)
	}
	return simID, res, nil
}

func (o *Orchestrator) runStage(ctx context.Context, name string, fn func(context.Context) (map[string]any, error), out *Outcome) bool {
	started := time.Now()

	var outputs map[string]any
	err := ctx.Err()
	if err != nil {
		err = fmt.Errorf("cancelled before %s: %w", name, err)
	} else {
		outputs, err = fn(ctx)
	}

	completedAt := time.Now()
	entry := models.StageTrace{
		StageName:       name,
		StartedAt:       started,
		CompletedAt:     completedAt,
		DurationSeconds: completedAt.Sub(started).Seconds(),
		Outputs:         outputs,
	}
	if err != nil {
		entry.Status = models.StageStatusFailed
		entry.Error = err.Error()
		o.logger.Error("pipeline stage failed", "stage", name, "error", err)
	} else {
		entry.Status = models.StageStatusCompleted
		o.logger.Info("pipeline stage completed",
			"stage", name,
			"duration_seconds", entry.DurationSeconds)
	}
	metrics.ObserveStage(name, string(entry.Status), completedAt.Sub(started))

	out.Trace = append(out.Trace, entry)
	return err == nil
}

func skippedTrace(name, previous string) models.StageTrace {
	now := time.Now()
	return models.StageTrace{
		StageName:   name,
		Status:      models.StageStatusSkipped,
		StartedAt:   now,
		CompletedAt: now,
		Error:       fmt.Sprintf("Skipped because %s did not complete.", previous),
	}
}
