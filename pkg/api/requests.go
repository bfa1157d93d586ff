package api

import (
	"github.com/synthlab-ai/persim/pkg/models"
)

// QuestionnaireRequest is the body for POST /questionnaires.
type QuestionnaireRequest struct {
	BusinessIdea   string `json:"business_idea"`
	TargetCustomer string `json:"target_customer"`
	Problem        string `json:"problem"`
	Industry       string `json:"industry,omitempty"`
	Location       string `json:"location,omitempty"`
}

// Brief converts the request into the canonical brief.
func (r *QuestionnaireRequest) Brief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   r.BusinessIdea,
		TargetCustomer: r.TargetCustomer,
		Problem:        r.Problem,
		Industry:       r.Industry,
		Location:       r.Location,
	}
}

// SimulationRequest is the body for POST /simulations. QuestionsData is
// optional; when absent a questionnaire is built from the brief first.
// Config is optional; absent fields fall back to the documented defaults.
type SimulationRequest struct {
	BusinessContext models.BusinessBrief     `json:"business_context"`
	QuestionsData   *models.Questionnaire    `json:"questions_data,omitempty"`
	Config          *models.SimulationConfig `json:"config,omitempty"`
}

// AnalysisRequest is the optional body for POST /analysis. It is the fallback
// input when the simulation_id query parameter is absent: a raw interview
// transcript to analyse directly.
type AnalysisRequest struct {
	InterviewsText string `json:"interviews_text"`
}

// ExportRequest is the body for POST /exports/persona-dataset.
type ExportRequest struct {
	AnalysisID int `json:"analysis_id"`
}

// RunRequest is the body for POST /pipeline/run-async.
type RunRequest struct {
	BusinessIdea   string `json:"business_idea"`
	TargetCustomer string `json:"target_customer"`
	Problem        string `json:"problem"`
	Industry       string `json:"industry,omitempty"`
	Location       string `json:"location,omitempty"`
}

// Brief converts the request into the canonical brief.
func (r *RunRequest) Brief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   r.BusinessIdea,
		TargetCustomer: r.TargetCustomer,
		Problem:        r.Problem,
		Industry:       r.Industry,
		Location:       r.Location,
	}
}

// PreviewRequest is the body for POST /responses/preview: one question put to
// one persona description, answered in one style.
type PreviewRequest struct {
	Question           string `json:"question"`
	PersonaDescription string `json:"persona_description"`
	Style              string `json:"style,omitempty"`
}
