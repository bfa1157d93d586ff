package models

// Depth controls how much probing an interview prompt asks for.
type Depth string

const (
	// DepthQuick keeps answers short, suitable for smoke runs
	DepthQuick Depth = "quick"
	// DepthDetailed is the default interview depth
	DepthDetailed Depth = "detailed"
	// DepthComprehensive asks for exhaustive answers with follow-ups
	DepthComprehensive Depth = "comprehensive"
)

// IsValid checks if the depth is valid
func (d Depth) IsValid() bool {
	return d == DepthQuick || d == DepthDetailed || d == DepthComprehensive
}

// ResponseStyle biases the tone of synthetic interview answers.
type ResponseStyle string

const (
	// ResponseStyleRealistic produces balanced answers (default)
	ResponseStyleRealistic ResponseStyle = "realistic"
	// ResponseStyleOptimistic biases answers toward enthusiasm
	ResponseStyleOptimistic ResponseStyle = "optimistic"
	// ResponseStyleCritical biases answers toward scepticism
	ResponseStyleCritical ResponseStyle = "critical"
	// ResponseStyleMixed varies tone across interviewees
	ResponseStyleMixed ResponseStyle = "mixed"
)

// IsValid checks if the response style is valid
func (s ResponseStyle) IsValid() bool {
	switch s {
	case ResponseStyleRealistic, ResponseStyleOptimistic, ResponseStyleCritical, ResponseStyleMixed:
		return true
	default:
		return false
	}
}

// SimulationStatus is the lifecycle state of a simulation record.
type SimulationStatus string

const (
	// SimulationStatusPending means the row exists but work has not started
	SimulationStatusPending SimulationStatus = "pending"
	// SimulationStatusRunning means interviews are in flight
	SimulationStatusRunning SimulationStatus = "running"
	// SimulationStatusCompleted is terminal success
	SimulationStatusCompleted SimulationStatus = "completed"
	// SimulationStatusFailed is terminal failure
	SimulationStatusFailed SimulationStatus = "failed"
)

// IsTerminal reports whether the simulation can no longer change.
func (s SimulationStatus) IsTerminal() bool {
	return s == SimulationStatusCompleted || s == SimulationStatusFailed
}

// RunStatus is the lifecycle state of a pipeline run.
type RunStatus string

const (
	// RunStatusPending means the job row exists but the background task has not started
	RunStatusPending RunStatus = "pending"
	// RunStatusRunning means the orchestrator is executing stages
	RunStatusRunning RunStatus = "running"
	// RunStatusCompleted means every stage completed and a dataset was produced
	RunStatusCompleted RunStatus = "completed"
	// RunStatusPartial means at least one stage completed but not all
	RunStatusPartial RunStatus = "partial"
	// RunStatusFailed means no stage completed or the job errored outright
	RunStatusFailed RunStatus = "failed"
)

// IsValid checks if the run status is valid
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusPending, RunStatusRunning, RunStatusCompleted, RunStatusPartial, RunStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the run can no longer change.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusCompleted || s == RunStatusPartial || s == RunStatusFailed
}

// StageStatus is the outcome recorded for one orchestrated stage.
type StageStatus string

const (
	// StageStatusCompleted means the stage produced its output
	StageStatusCompleted StageStatus = "completed"
	// StageStatusFailed means the stage returned an error
	StageStatusFailed StageStatus = "failed"
	// StageStatusSkipped means an upstream stage did not complete
	StageStatusSkipped StageStatus = "skipped"
)
