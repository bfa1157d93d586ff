package api

// CancelResponse is returned by POST /pipeline/jobs/:id/cancel.
type CancelResponse struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// PreviewResponse is returned by POST /responses/preview.
type PreviewResponse struct {
	Response string `json:"response"`
}

// SimulationListResponse is returned by GET /simulations.
type SimulationListResponse struct {
	Simulations []SimulationSummary `json:"simulations"`
	TotalCount  int                 `json:"total_count"`
}

// SimulationSummary is the listing view of one simulation: scalars only, no
// interview payloads.
type SimulationSummary struct {
	SimulationID   string `json:"simulation_id"`
	Status         string `json:"status"`
	BusinessIdea   string `json:"business_idea"`
	PersonaCount   int    `json:"persona_count"`
	InterviewCount int    `json:"interview_count"`
	CreatedAt      string `json:"created_at"`
	CompletedAt    string `json:"completed_at,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one subsystem's health verdict.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
