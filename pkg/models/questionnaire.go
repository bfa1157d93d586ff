package models

// Stakeholder is one role in the questionnaire. Questions are already flattened
// across the source phases; phase identity is discarded during the build.
type Stakeholder struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`
}

// StakeholderGroups holds the two ordered stakeholder buckets.
type StakeholderGroups struct {
	Primary   []Stakeholder `json:"primary"`
	Secondary []Stakeholder `json:"secondary"`
}

// Questionnaire is the stage-1 output: stakeholders plus a rough time estimate.
type Questionnaire struct {
	Stakeholders StakeholderGroups `json:"stakeholders"`
	TimeEstimate string            `json:"time_estimate"`
}

// AllStakeholders returns primary followed by secondary stakeholders.
func (q *Questionnaire) AllStakeholders() []Stakeholder {
	out := make([]Stakeholder, 0, len(q.Stakeholders.Primary)+len(q.Stakeholders.Secondary))
	out = append(out, q.Stakeholders.Primary...)
	out = append(out, q.Stakeholders.Secondary...)
	return out
}

// StakeholderCount returns the total number of stakeholders across both buckets.
func (q *Questionnaire) StakeholderCount() int {
	return len(q.Stakeholders.Primary) + len(q.Stakeholders.Secondary)
}

// TotalQuestions returns the number of questions across all stakeholders.
func (q *Questionnaire) TotalQuestions() int {
	n := 0
	for _, s := range q.AllStakeholders() {
		n += len(s.Questions)
	}
	return n
}
