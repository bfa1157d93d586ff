package models

import "time"

// Stage names in execution order. The orchestrator appends exactly one trace
// entry per stage under these names.
const (
	StageQuestionnaire = "questionnaire"
	StageSimulation    = "simulation"
	StageAnalysis      = "analysis"
	StageExport        = "export"
)

// StageOrder is the fixed top-level stage sequence.
var StageOrder = []string{StageQuestionnaire, StageSimulation, StageAnalysis, StageExport}

// StageTrace records one stage's execution: timing, outcome, and a small map
// of stage-specific outputs (counts, ids, quality figures).
type StageTrace struct {
	StageName       string         `json:"stage_name"`
	Status          StageStatus    `json:"status"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     time.Time      `json:"completed_at"`
	DurationSeconds float64        `json:"duration_seconds"`
	Outputs         map[string]any `json:"outputs,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// PipelineRun mirrors one pipeline_runs row. started_at is set iff the run
// ever left pending; completed_at is set iff the status is terminal;
// duration_seconds = completed_at - started_at when both are set.
type PipelineRun struct {
	JobID                         string        `json:"job_id"`
	UserID                        string        `json:"user_id,omitempty"`
	Status                        RunStatus     `json:"status"`
	BusinessContext               BusinessBrief `json:"business_context"`
	ExecutionTrace                []StageTrace  `json:"execution_trace"`
	Dataset                       *Dataset      `json:"dataset,omitempty"`
	QuestionnaireStakeholderCount int           `json:"questionnaire_stakeholder_count,omitempty"`
	SimulationID                  string        `json:"simulation_id,omitempty"`
	AnalysisID                    int           `json:"analysis_id,omitempty"`
	PersonaCount                  int           `json:"persona_count,omitempty"`
	InterviewCount                int           `json:"interview_count,omitempty"`
	TotalDurationSeconds          float64       `json:"total_duration_seconds,omitempty"`
	CreatedAt                     time.Time     `json:"created_at"`
	StartedAt                     *time.Time    `json:"started_at,omitempty"`
	CompletedAt                   *time.Time    `json:"completed_at,omitempty"`
	DurationSeconds               *float64      `json:"duration_seconds,omitempty"`
	Error                         string        `json:"error,omitempty"`
}

// JobStatus is the polling view of a run. Result is present iff the run
// completed and produced a dataset.
type JobStatus struct {
	JobID       string     `json:"job_id"`
	Status      RunStatus  `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Result      *RunResult `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// RunResult is the summary payload attached to a completed job status.
type RunResult struct {
	Dataset              *Dataset     `json:"dataset,omitempty"`
	ExecutionTrace       []StageTrace `json:"execution_trace,omitempty"`
	TotalDurationSeconds float64      `json:"total_duration_seconds,omitempty"`
	PersonaCount         int          `json:"persona_count,omitempty"`
	InterviewCount       int          `json:"interview_count,omitempty"`
}

// RunSummary is the listing view: scalars only, no trace or dataset.
type RunSummary struct {
	JobID                string        `json:"job_id"`
	Status               RunStatus     `json:"status"`
	BusinessContext      BusinessBrief `json:"business_context"`
	CreatedAt            time.Time     `json:"created_at"`
	CompletedAt          *time.Time    `json:"completed_at,omitempty"`
	TotalDurationSeconds float64       `json:"total_duration_seconds,omitempty"`
	PersonaCount         int           `json:"persona_count,omitempty"`
	InterviewCount       int           `json:"interview_count,omitempty"`
	Error                string        `json:"error,omitempty"`
}

// RunListResponse is the paginated listing payload.
type RunListResponse struct {
	Runs       []RunSummary `json:"runs"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}
