package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Synchronous simulation — caller supplies the questionnaire.
// ────────────────────────────────────────────────────────────

func TestE2E_SyncSimulation(t *testing.T) {
	app := NewTestApp(t)

	sim := app.RunSimulation(t, map[string]interface{}{
		"business_context": defaultBrief(),
		"questions_data":   defaultQuestionsData(),
		"config": map[string]interface{}{
			"people_per_stakeholder": 1,
			"response_style":         "realistic",
			"temperature":            0.7,
			"depth":                  "detailed",
			"include_insights":       true,
		},
	})

	simulationID, _ := sim["simulation_id"].(string)
	require.NotEmpty(t, simulationID)
	assert.Equal(t, "completed", sim["status"])

	// Stage 1 was skipped; one stakeholder at one persona needs exactly one
	// persona batch and one interview.
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskQuestionnaireBuild))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskPersonaBatch))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskInterview))

	personas, _ := sim["personas"].([]interface{})
	require.Len(t, personas, 1)
	persona := personas[0].(map[string]interface{})
	assert.Equal(t, "Working Parents", persona["stakeholder_type"])
	assert.NotEmpty(t, persona["id"])
	assert.NotEmpty(t, persona["name"])
	assert.NotEmpty(t, persona["background"])

	interviews, _ := sim["interviews"].([]interface{})
	require.Len(t, interviews, 1)
	iv := interviews[0].(map[string]interface{})
	assert.Equal(t, persona["id"], iv["person_id"])
	assert.Equal(t, "Working Parents", iv["stakeholder_type"])
	assert.Equal(t, "neutral", iv["overall_sentiment"])
	assert.Contains(t, iv["key_themes"], "planning fatigue")
	assert.GreaterOrEqual(t, iv["duration_minutes"], 10.0)

	// Answers come back aligned with the submitted questions, in order.
	responses, _ := iv["responses"].([]interface{})
	require.Len(t, responses, 3)
	first := responses[0].(map[string]interface{})
	assert.Equal(t, "Walk me through how you decided what to cook last week.", first["question"])
	assert.NotEmpty(t, first["response"])
	assert.Equal(t, "positive", first["sentiment"])

	insights, ok := sim["insights"].(map[string]interface{})
	require.True(t, ok, "include_insights was requested")
	assert.EqualValues(t, 1, insights["total_interviews"])
	assert.EqualValues(t, 0, insights["failed_interviews"])
	counts := insights["stakeholder_counts"].(map[string]interface{})
	assert.EqualValues(t, 1, counts["Working Parents"])
	assert.Contains(t, insights["common_themes"], "planning fatigue")

	formatted, ok := sim["formatted_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "v1", formatted["version"])
	assert.EqualValues(t, 1, formatted["total_personas"])
	assert.EqualValues(t, 1, formatted["total_interviews"])

	// The stored record roundtrips by id.
	fetched := app.GetSimulation(t, simulationID)
	assert.Equal(t, simulationID, fetched["simulation_id"])
	assert.Equal(t, "completed", fetched["status"])
	assert.Equal(t, defaultBrief()["business_idea"],
		field(t, fetched, "business_context", "business_idea"))

	list := app.ListSimulations(t)
	assert.EqualValues(t, 1, list["total_count"])
	summaries, _ := list["simulations"].([]interface{})
	require.Len(t, summaries, 1)
	summary := summaries[0].(map[string]interface{})
	assert.Equal(t, simulationID, summary["simulation_id"])
	assert.Equal(t, "completed", summary["status"])
	assert.Equal(t, defaultBrief()["business_idea"], summary["business_idea"])
	assert.EqualValues(t, 1, summary["persona_count"])
	assert.EqualValues(t, 1, summary["interview_count"])
	assert.NotEmpty(t, summary["created_at"])
	assert.NotEmpty(t, summary["completed_at"])
}

// ────────────────────────────────────────────────────────────
// Synchronous simulation — questionnaire built from the brief.
// ────────────────────────────────────────────────────────────

func TestE2E_SyncSimulationBuildsQuestionnaire(t *testing.T) {
	app := NewTestApp(t)

	sim := app.RunSimulation(t, map[string]interface{}{
		"business_context": defaultBrief(),
		"config": map[string]interface{}{
			"people_per_stakeholder": 2,
			"response_style":         "critical",
			"temperature":            0.4,
			"depth":                  "quick",
			"include_insights":       false,
		},
	})

	assert.Equal(t, "completed", sim["status"])

	// The built questionnaire has two stakeholders, so two personas each.
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskQuestionnaireBuild))
	assert.Equal(t, 2, app.Gemini.CallCount(llm.TaskPersonaBatch))
	assert.Equal(t, 4, app.Gemini.CallCount(llm.TaskInterview))

	personas, _ := sim["personas"].([]interface{})
	assert.Len(t, personas, 4)
	interviews, _ := sim["interviews"].([]interface{})
	assert.Len(t, interviews, 4)

	// The generated questionnaire is stored with the simulation.
	questions := field(t, sim, "questions_data", "stakeholders", "primary")
	assert.NotEmpty(t, questions)

	// Insights were not requested.
	assert.NotContains(t, sim, "insights")
}

// ────────────────────────────────────────────────────────────
// Request validation.
// ────────────────────────────────────────────────────────────

func TestE2E_SyncSimulationValidation(t *testing.T) {
	app := NewTestApp(t)

	// Incomplete brief.
	resp := app.postJSON(t, "/simulations", map[string]interface{}{
		"business_context": map[string]interface{}{
			"business_idea": "An idea with no customer or problem",
		},
	}, http.StatusBadRequest)
	assert.Contains(t, resp["error"], "is required")

	// Questionnaire without stakeholders.
	resp = app.postJSON(t, "/simulations", map[string]interface{}{
		"business_context": defaultBrief(),
		"questions_data": map[string]interface{}{
			"stakeholders": map[string]interface{}{
				"primary":   []interface{}{},
				"secondary": []interface{}{},
			},
		},
	}, http.StatusBadRequest)
	assert.Contains(t, resp["error"], "no stakeholders")

	// Persona count above the configured limit.
	resp = app.postJSON(t, "/simulations", map[string]interface{}{
		"business_context": defaultBrief(),
		"questions_data":   defaultQuestionsData(),
		"config": map[string]interface{}{
			"people_per_stakeholder": 50,
			"response_style":         "realistic",
			"temperature":            0.7,
			"depth":                  "detailed",
		},
	}, http.StatusBadRequest)
	assert.Contains(t, resp["error"], "people_per_stakeholder")

	// Nothing reached the model.
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskPersonaBatch))
}
