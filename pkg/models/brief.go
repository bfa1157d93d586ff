package models

import "strings"

// BusinessBrief is the short business description that seeds every pipeline run.
// The first three fields are required; industry and location refine prompts only.
type BusinessBrief struct {
	BusinessIdea   string `json:"business_idea"`
	TargetCustomer string `json:"target_customer"`
	Problem        string `json:"problem"`
	Industry       string `json:"industry,omitempty"`
	Location       string `json:"location,omitempty"`
}

// Validate reports the first missing required field, or "" when the brief is usable.
func (b *BusinessBrief) Validate() string {
	switch {
	case strings.TrimSpace(b.BusinessIdea) == "":
		return "business_idea"
	case strings.TrimSpace(b.TargetCustomer) == "":
		return "target_customer"
	case strings.TrimSpace(b.Problem) == "":
		return "problem"
	}
	return ""
}
