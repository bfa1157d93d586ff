package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
)

const longQuote = "I spend half of every working day waiting for builds to finish."

func TestWrapTraitFromMap(t *testing.T) {
	trait := wrapTrait(map[string]any{
		"value":      "  Ships features under constant deadline pressure  ",
		"confidence": 0.85,
		"evidence":   []any{longQuote, "  ", "short"},
	})
	require.NotNil(t, trait)
	assert.Equal(t, "Ships features under constant deadline pressure", trait.Value)
	assert.Equal(t, 0.85, trait.Confidence)
	assert.Equal(t, []string{longQuote, "short"}, trait.Evidence, "blank evidence items are dropped")
}

func TestWrapTraitClampsConfidence(t *testing.T) {
	high := wrapTrait(map[string]any{"value": "something substantial", "confidence": 1.4})
	require.NotNil(t, high)
	assert.Equal(t, 1.0, high.Confidence)

	low := wrapTrait(map[string]any{"value": "something substantial", "confidence": -0.2})
	require.NotNil(t, low)
	assert.Equal(t, 0.0, low.Confidence)
}

func TestWrapTraitFromString(t *testing.T) {
	trait := wrapTrait("Deeply frustrated by flaky integration tests")
	require.NotNil(t, trait)
	assert.Equal(t, defaultTraitConfidence, trait.Confidence)
	assert.Empty(t, trait.Evidence)
}

func TestWrapTraitFromList(t *testing.T) {
	trait := wrapTrait([]any{"Wants faster builds", "Wants fewer meetings"})
	require.NotNil(t, trait)
	assert.Equal(t, "Wants faster builds | Wants fewer meetings", trait.Value)
	assert.Equal(t, []string{"Wants faster builds", "Wants fewer meetings"}, trait.Evidence)
	assert.Equal(t, defaultTraitConfidence, trait.Confidence)
}

func TestWrapTraitRejectsUnknownShapes(t *testing.T) {
	assert.Nil(t, wrapTrait(nil))
	assert.Nil(t, wrapTrait(42))
	assert.Nil(t, wrapTrait([]any{}))
}

func TestAcceptTraitRules(t *testing.T) {
	good := &models.Trait{Value: "Owns the internal deployment platform", Confidence: 0.8, Evidence: []string{longQuote}}
	assert.NotNil(t, acceptTrait(good))

	tests := []struct {
		name  string
		trait *models.Trait
	}{
		{"nil trait", nil},
		{"short value", &models.Trait{Value: "too short", Confidence: 0.8, Evidence: []string{longQuote}}},
		{"placeholder value", &models.Trait{Value: "Not specified", Confidence: 0.8, Evidence: []string{longQuote}}},
		{"placeholder with punctuation", &models.Trait{Value: "Not available.", Confidence: 0.8, Evidence: []string{longQuote}}},
		{"placeholder mixed case", &models.Trait{Value: "Insufficient Data", Confidence: 0.8, Evidence: []string{longQuote}}},
		{"no evidence", &models.Trait{Value: "Owns the internal deployment platform", Confidence: 0.8}},
		{"only trivial evidence", &models.Trait{Value: "Owns the internal deployment platform", Confidence: 0.8, Evidence: []string{"yes", "ok"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, acceptTrait(tc.trait))
		})
	}
}

func TestDecomposeDemographicsRouting(t *testing.T) {
	trait := &models.Trait{
		Value:      "Mid-career platform engineer in fintech",
		Confidence: 0.9,
		Evidence: []string{
			"Fifteen years of experience across backend teams",
			"Senior contributor for over a decade now",
			"Works at a mid-size fintech company",
			"Based in Berlin with a distributed team",
			"Engineering manager for the platform group",
			"Prefers asynchronous written communication",
		},
	}

	d := decomposeDemographics(trait)

	assert.Equal(t, "Fifteen years of experience across backend teams", d.ExperienceLevel, "first match wins")
	assert.Equal(t, "Works at a mid-size fintech company", d.Industry)
	assert.Equal(t, "Based in Berlin with a distributed team", d.Location)
	assert.Equal(t, []string{"Engineering manager for the platform group"}, d.Roles)
	assert.Contains(t, d.ProfessionalContext, "Senior contributor for over a decade now",
		"second experience item overflows into professional context")
	assert.Contains(t, d.ProfessionalContext, "Prefers asynchronous written communication",
		"unmatched items land in professional context")
	assert.Equal(t, trait.Value, d.Value)
	assert.Equal(t, trait.Confidence, d.Confidence)
	assert.Equal(t, trait.Evidence, d.Evidence, "raw evidence is preserved alongside the routing")
}

func TestNormalizePersonasSkipsInvalid(t *testing.T) {
	raw := []map[string]any{
		{
			// No name.
			"goals_and_motivations": map[string]any{
				"value":    "Wants to cut build times in half",
				"evidence": []any{longQuote},
			},
		},
		{
			// Name but every trait fails acceptance.
			"name":                  "Hollow Persona",
			"goals_and_motivations": map[string]any{"value": "unknown", "evidence": []any{longQuote}},
			"key_quotes":            "short",
		},
		validRawPersona("Priya the Platform Lead"),
	}

	personas := normalizePersonas(raw)
	require.Len(t, personas, 1)
	assert.Equal(t, "Priya the Platform Lead", personas[0].Name)
	require.NotNil(t, personas[0].GoalsAndMotivations)
	assert.Equal(t, 0.9, personas[0].OverallConfidence)
}

func TestNormalizePersonaAveragesConfidence(t *testing.T) {
	raw := map[string]any{
		"name":             "Marco the Migration Skeptic",
		"stakeholder_type": "Operations",
		"demographics": map[string]any{
			"value":      "Veteran operator in regulated industries",
			"confidence": 0.6,
			"evidence":   []any{"Twenty years running production systems in banking"},
		},
		"challenges_and_frustrations": map[string]any{
			"value":      "Change windows make every migration painful",
			"confidence": 0.8,
			"evidence":   []any{"Every deploy needs a change ticket and a weekend window."},
		},
	}

	persona, ok := normalizePersona(raw)
	require.True(t, ok)
	assert.Equal(t, "Operations", persona.StakeholderType)
	require.NotNil(t, persona.Demographics)
	require.NotNil(t, persona.ChallengesAndFrustrations)
	assert.Nil(t, persona.GoalsAndMotivations, "absent traits stay absent")
	assert.InDelta(t, 0.7, persona.OverallConfidence, 1e-9, "mean of the accepted trait confidences")
}

func TestNormalizePersonaDefaultsConfidence(t *testing.T) {
	raw := map[string]any{
		"name": "Dana the Data Wrangler",
		"key_quotes": map[string]any{
			"value":    "The export takes longer than the analysis itself",
			"evidence": []any{"I kick off the export before lunch and hope it finishes by two."},
		},
	}

	persona, ok := normalizePersona(raw)
	require.True(t, ok)
	assert.Equal(t, defaultTraitConfidence, persona.OverallConfidence)
}
