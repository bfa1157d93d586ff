package models

// Persona is a synthetic interviewee fabricated for one simulation.
// StakeholderType carries the parent stakeholder's human-readable name,
// not its positional id.
type Persona struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Background         string   `json:"background"`
	Motivations        []string `json:"motivations"`
	PainPoints         []string `json:"pain_points"`
	CommunicationStyle string   `json:"communication_style"`
	StakeholderType    string   `json:"stakeholder_type"`
	DemographicDetails string   `json:"demographic_details"`
}
