package models

// InterviewResponse is one question/answer exchange within an interview.
type InterviewResponse struct {
	Question          string   `json:"question"`
	Response          string   `json:"response"`
	Sentiment         string   `json:"sentiment"`
	KeyInsights       []string `json:"key_insights"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
}

// Interview is the full Q&A transcript for one persona. Exactly one interview
// exists per persona per run. DurationMinutes is derived from the response
// count and answer lengths, never reported by the model.
type Interview struct {
	PersonID         string              `json:"person_id"`
	StakeholderType  string              `json:"stakeholder_type"`
	Responses        []InterviewResponse `json:"responses"`
	DurationMinutes  int                 `json:"duration_minutes"`
	OverallSentiment string              `json:"overall_sentiment"`
	KeyThemes        []string            `json:"key_themes"`
}

// Clone returns a deep copy so cached interviews cannot be mutated by callers.
func (iv *Interview) Clone() *Interview {
	out := &Interview{
		PersonID:         iv.PersonID,
		StakeholderType:  iv.StakeholderType,
		DurationMinutes:  iv.DurationMinutes,
		OverallSentiment: iv.OverallSentiment,
	}
	if iv.Responses != nil {
		out.Responses = make([]InterviewResponse, len(iv.Responses))
		for i, r := range iv.Responses {
			cp := r
			cp.KeyInsights = append([]string(nil), r.KeyInsights...)
			cp.FollowUpQuestions = append([]string(nil), r.FollowUpQuestions...)
			out.Responses[i] = cp
		}
	}
	if iv.KeyThemes != nil {
		out.KeyThemes = append([]string(nil), iv.KeyThemes...)
	}
	return out
}
