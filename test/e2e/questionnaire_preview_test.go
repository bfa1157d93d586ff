package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Questionnaire generation.
// ────────────────────────────────────────────────────────────

func TestE2E_QuestionnaireGeneration(t *testing.T) {
	app := NewTestApp(t)

	q := app.CreateQuestionnaire(t, defaultBrief())

	// Twelve questions at two minutes each plus five minutes setup.
	assert.Equal(t, "~29m", q["time_estimate"])

	primary, _ := field(t, q, "stakeholders", "primary").([]interface{})
	require.Len(t, primary, 1)
	first := primary[0].(map[string]interface{})
	assert.Equal(t, "primary_1", first["id"])
	assert.Equal(t, "Working Parents", first["name"])
	assert.NotEmpty(t, first["description"])
	questions, _ := first["questions"].([]interface{})
	require.Len(t, questions, 6)
	assert.Equal(t, "Walk me through how you decided what to cook last week.", questions[0])

	secondary, _ := field(t, q, "stakeholders", "secondary").([]interface{})
	require.Len(t, secondary, 1)
	second := secondary[0].(map[string]interface{})
	assert.Equal(t, "secondary_1", second["id"])
	assert.Equal(t, "Grocery Retailers", second["name"])

	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskQuestionnaireBuild))
}

func TestE2E_QuestionnaireValidation(t *testing.T) {
	app := NewTestApp(t)

	resp := app.postJSON(t, "/questionnaires", map[string]interface{}{
		"business_idea": "An idea with no customer or problem",
	}, http.StatusBadRequest)
	assert.Contains(t, resp["error"], "is required")
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskQuestionnaireBuild))
}

// ────────────────────────────────────────────────────────────
// Single-response preview.
// ────────────────────────────────────────────────────────────

func TestE2E_ResponsePreview(t *testing.T) {
	app := NewTestApp(t)

	resp := app.postJSON(t, "/responses/preview", map[string]interface{}{
		"question":            "Would you pay for this service?",
		"persona_description": "A 38-year-old parent of two who owns the weekly meal plan",
		"style":               "critical",
	}, http.StatusOK)
	answer, _ := resp["response"].(string)
	assert.Contains(t, answer, "price")
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskSingleResponse))

	bad := app.postJSON(t, "/responses/preview", map[string]interface{}{
		"question":            "Would you pay for this service?",
		"persona_description": "A parent",
		"style":               "sarcastic",
	}, http.StatusBadRequest)
	assert.Contains(t, bad["error"], "invalid style")

	missing := app.postJSON(t, "/responses/preview", map[string]interface{}{
		"persona_description": "A parent",
	}, http.StatusBadRequest)
	assert.Contains(t, missing["error"], "question is required")
}

// ────────────────────────────────────────────────────────────
// Bearer gate on mutating routes.
// ────────────────────────────────────────────────────────────

func TestE2E_BearerAuth(t *testing.T) {
	app := NewTestApp(t, WithAuthRequired())

	// Mutating routes reject anonymous requests.
	resp := app.postJSON(t, "/questionnaires", defaultBrief(), http.StatusUnauthorized)
	assert.Contains(t, resp["error"], "bearer token")
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskQuestionnaireBuild))

	// Reads stay open.
	app.GetHealth(t)
	list := app.ListSimulations(t)
	assert.EqualValues(t, 0, list["total_count"])

	// Presence of a token is enough; verification belongs to the fronting
	// proxy.
	q := app.postJSONAuth(t, "/questionnaires", "test-token", defaultBrief(), http.StatusOK)
	assert.Equal(t, "~29m", q["time_estimate"])
}
