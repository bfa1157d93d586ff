package models

import "time"

// SimulationConfig tunes the interview fanout for one simulation.
type SimulationConfig struct {
	PeoplePerStakeholder int           `json:"people_per_stakeholder"`
	ResponseStyle        ResponseStyle `json:"response_style"`
	Temperature          float64       `json:"temperature"`
	Depth                Depth         `json:"depth"`
	IncludeInsights      bool          `json:"include_insights"`
}

// DefaultSimulationConfig returns the documented defaults.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		PeoplePerStakeholder: 5,
		ResponseStyle:        ResponseStyleRealistic,
		Temperature:          0.7,
		Depth:                DepthDetailed,
		IncludeInsights:      true,
	}
}

// Normalize fills zero values with defaults without touching explicit settings.
func (c *SimulationConfig) Normalize() {
	if c.PeoplePerStakeholder == 0 {
		c.PeoplePerStakeholder = 5
	}
	if c.ResponseStyle == "" {
		c.ResponseStyle = ResponseStyleRealistic
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.Depth == "" {
		c.Depth = DepthDetailed
	}
}

// Validate reports the first invalid field, or "" when the config is usable.
// maxPersonas caps people_per_stakeholder; pass 0 to use the documented limit.
func (c *SimulationConfig) Validate(maxPersonas int) string {
	if maxPersonas <= 0 || maxPersonas > 10 {
		maxPersonas = 10
	}
	switch {
	case c.PeoplePerStakeholder < 1 || c.PeoplePerStakeholder > maxPersonas:
		return "people_per_stakeholder"
	case !c.ResponseStyle.IsValid():
		return "response_style"
	case c.Temperature < 0 || c.Temperature > 1:
		return "temperature"
	case !c.Depth.IsValid():
		return "depth"
	}
	return ""
}

// SimulationInsights is the lightweight roll-up stored alongside raw interviews.
type SimulationInsights struct {
	TotalInterviews   int            `json:"total_interviews"`
	FailedInterviews  int            `json:"failed_interviews"`
	StakeholderCounts map[string]int `json:"stakeholder_counts"`
	AverageDuration   float64        `json:"average_duration_minutes"`
	CommonThemes      []string       `json:"common_themes"`
}

// Simulation is the full record for one stage-2 run.
type Simulation struct {
	SimulationID    string              `json:"simulation_id"`
	UserID          string              `json:"user_id"`
	Status          SimulationStatus    `json:"status"`
	BusinessContext BusinessBrief       `json:"business_context"`
	QuestionsData   *Questionnaire      `json:"questions_data,omitempty"`
	Config          SimulationConfig    `json:"config"`
	Personas        []Persona           `json:"personas"`
	Interviews      []Interview         `json:"interviews"`
	Insights        *SimulationInsights `json:"insights,omitempty"`
	FormattedData   map[string]any      `json:"formatted_data,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	Error           string              `json:"error,omitempty"`
}
