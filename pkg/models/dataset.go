package models

// DatasetPersonaMetadata records where a dataset persona came from.
type DatasetPersonaMetadata struct {
	Source       string `json:"source"`
	AnalysisID   int    `json:"analysis_id"`
	SimulationID string `json:"simulation_id,omitempty"`
}

// DatasetPersona is the canonical frontend view of an analysis persona:
// four attributed trait bundles plus provenance metadata.
type DatasetPersona struct {
	Name                      string                 `json:"name"`
	Description               string                 `json:"description,omitempty"`
	StakeholderType           string                 `json:"stakeholder_type,omitempty"`
	Demographics              *Demographics          `json:"demographics,omitempty"`
	GoalsAndMotivations       *Trait                 `json:"goals_and_motivations,omitempty"`
	ChallengesAndFrustrations *Trait                 `json:"challenges_and_frustrations,omitempty"`
	KeyQuotes                 *Trait                 `json:"key_quotes,omitempty"`
	OverallConfidence         float64                `json:"overall_confidence"`
	Metadata                  DatasetPersonaMetadata `json:"metadata"`
}

// DatasetQuality summarises how much signal the dataset carries.
type DatasetQuality struct {
	InterviewCount      int     `json:"interview_count"`
	StakeholderCoverage int     `json:"stakeholder_coverage"`
	AvgPersonaQuality   float64 `json:"avg_persona_quality"`
}

// Dataset is the stage-4 output consumed by external clients.
type Dataset struct {
	ScopeID          string            `json:"scope_id"`
	ScopeName        string            `json:"scope_name"`
	Description      string            `json:"description"`
	Personas         []DatasetPersona  `json:"personas"`
	Interviews       []Interview       `json:"interviews"`
	Analysis         *DetailedAnalysis `json:"analysis,omitempty"`
	SimulationPeople []Persona         `json:"simulation_people"`
	Quality          DatasetQuality    `json:"quality"`
}
