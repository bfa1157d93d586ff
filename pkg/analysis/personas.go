package analysis

import (
	"fmt"
	"strings"

	"github.com/synthlab-ai/persim/pkg/models"
)

// defaultTraitConfidence applies when the model omits a confidence score.
const defaultTraitConfidence = 0.7

// Trait acceptance thresholds: values shorter than minTraitValueLen carry no
// signal, and evidence needs at least one quote of minEvidenceLen characters
// to count as substantial.
const (
	minTraitValueLen = 10
	minEvidenceLen   = 20
)

// placeholderValues is the blacklist of generic non-answers models emit when
// they have nothing. Matching is on the lowercased, punctuation-trimmed value.
var placeholderValues = map[string]struct{}{
	"n/a":                    {},
	"na":                     {},
	"none":                   {},
	"unknown":                {},
	"unclear":                {},
	"not available":          {},
	"not specified":          {},
	"not mentioned":          {},
	"not applicable":         {},
	"no data":                {},
	"no information":         {},
	"insufficient data":      {},
	"not enough information": {},
}

// normalizePersonas converts raw persona dictionaries into the canonical
// schema. Traits failing acceptance are dropped rather than defaulted, and a
// persona without a name or without a single surviving trait is skipped.
func normalizePersonas(raw []map[string]any) []models.AnalysisPersona {
	out := make([]models.AnalysisPersona, 0, len(raw))
	for _, dict := range raw {
		if persona, ok := normalizePersona(dict); ok {
			out = append(out, persona)
		}
	}
	return out
}

func normalizePersona(dict map[string]any) (models.AnalysisPersona, bool) {
	persona := models.AnalysisPersona{
		Name:            strings.TrimSpace(stringValue(dict["name"])),
		Description:     strings.TrimSpace(stringValue(dict["description"])),
		StakeholderType: strings.TrimSpace(stringValue(dict["stakeholder_type"])),
	}
	if persona.Name == "" {
		return models.AnalysisPersona{}, false
	}

	var confidences []float64
	if t := acceptTrait(wrapTrait(dict["demographics"])); t != nil {
		persona.Demographics = decomposeDemographics(t)
		confidences = append(confidences, t.Confidence)
	}
	if t := acceptTrait(wrapTrait(dict["goals_and_motivations"])); t != nil {
		persona.GoalsAndMotivations = t
		confidences = append(confidences, t.Confidence)
	}
	if t := acceptTrait(wrapTrait(dict["challenges_and_frustrations"])); t != nil {
		persona.ChallengesAndFrustrations = t
		confidences = append(confidences, t.Confidence)
	}
	if t := acceptTrait(wrapTrait(dict["key_quotes"])); t != nil {
		persona.KeyQuotes = t
		confidences = append(confidences, t.Confidence)
	}

	if len(confidences) == 0 {
		return models.AnalysisPersona{}, false
	}
	sum := 0.0
	for _, c := range confidences {
		sum += c
	}
	persona.OverallConfidence = sum / float64(len(confidences))
	return persona, true
}

// wrapTrait coerces whatever shape the model produced into a Trait. A map
// keeps its own confidence and evidence; a bare string or list gets the
// default confidence.
func wrapTrait(v any) *models.Trait {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		t := &models.Trait{
			Value:      strings.TrimSpace(stringValue(val["value"])),
			Confidence: floatValue(val["confidence"], defaultTraitConfidence),
			Evidence:   stringSlice(val["evidence"]),
		}
		if t.Confidence < 0 {
			t.Confidence = 0
		}
		if t.Confidence > 1 {
			t.Confidence = 1
		}
		return t
	case string:
		return &models.Trait{Value: strings.TrimSpace(val), Confidence: defaultTraitConfidence}
	case []any:
		items := stringSlice(val)
		if len(items) == 0 {
			return nil
		}
		return &models.Trait{
			Value:      strings.Join(items, " | "),
			Confidence: defaultTraitConfidence,
			Evidence:   items,
		}
	default:
		return nil
	}
}

// acceptTrait applies the acceptance rule: a substantial value, not a
// placeholder, backed by at least one substantial quote.
func acceptTrait(t *models.Trait) *models.Trait {
	if t == nil {
		return nil
	}
	if len(t.Value) < minTraitValueLen || isPlaceholder(t.Value) {
		return nil
	}
	if len(t.Evidence) == 0 {
		return nil
	}
	substantial := false
	for _, e := range t.Evidence {
		if len(strings.TrimSpace(e)) >= minEvidenceLen {
			substantial = true
			break
		}
	}
	if !substantial {
		return nil
	}
	return t
}

func isPlaceholder(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.Trim(normalized, ".!,")
	_, found := placeholderValues[normalized]
	return found
}

// Demographic evidence routing keywords, checked in order. The first family
// whose keyword matches claims the item; roles and professional context can
// accumulate multiple items.
var (
	experienceKeywords = []string{"year", "experience", "senior", "junior", "veteran", "decade", "career"}
	industryKeywords   = []string{"industry", "sector", "company", "startup", "enterprise", "firm", "business"}
	locationKeywords   = []string{"based", "located", "location", "remote", "office", "city", "country"}
	roleKeywords       = []string{"manager", "director", "engineer", "developer", "founder", "analyst", "designer", "officer", "consultant", "lead"}
)

// decomposeDemographics routes each evidence item into structured sub-fields.
func decomposeDemographics(t *models.Trait) *models.Demographics {
	d := &models.Demographics{
		Value:      t.Value,
		Confidence: t.Confidence,
		Evidence:   t.Evidence,
	}
	for _, item := range t.Evidence {
		lower := strings.ToLower(item)
		switch {
		case matchesAny(lower, experienceKeywords):
			if d.ExperienceLevel == "" {
				d.ExperienceLevel = item
			} else {
				d.ProfessionalContext = append(d.ProfessionalContext, item)
			}
		case matchesAny(lower, industryKeywords):
			if d.Industry == "" {
				d.Industry = item
			} else {
				d.ProfessionalContext = append(d.ProfessionalContext, item)
			}
		case matchesAny(lower, locationKeywords):
			if d.Location == "" {
				d.Location = item
			} else {
				d.ProfessionalContext = append(d.ProfessionalContext, item)
			}
		case matchesAny(lower, roleKeywords):
			d.Roles = append(d.Roles, item)
		default:
			d.ProfessionalContext = append(d.ProfessionalContext, item)
		}
	}
	return d
}

func matchesAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}

func floatValue(v any, fallback float64) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	default:
		return fallback
	}
}

func stringSlice(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(stringValue(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	default:
		return nil
	}
}
