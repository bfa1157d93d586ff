package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// seedSimulation runs one single-persona simulation and returns its id.
func seedSimulation(t *testing.T, app *TestApp) string {
	t.Helper()
	sim := app.RunSimulation(t, map[string]interface{}{
		"business_context": defaultBrief(),
		"questions_data":   defaultQuestionsData(),
		"config": map[string]interface{}{
			"people_per_stakeholder": 1,
			"response_style":         "realistic",
			"temperature":            0.7,
			"depth":                  "detailed",
			"include_insights":       false,
		},
	})
	simulationID, _ := sim["simulation_id"].(string)
	require.NotEmpty(t, simulationID)
	require.Equal(t, "completed", sim["status"])
	return simulationID
}

// ────────────────────────────────────────────────────────────
// Analysis over a stored simulation.
// ────────────────────────────────────────────────────────────

func TestE2E_AnalysisOfSimulation(t *testing.T) {
	app := NewTestApp(t)
	simulationID := seedSimulation(t, app)

	record := app.AnalyzeSimulation(t, simulationID)
	analysisID := int(record["analysis_id"].(float64))
	require.Positive(t, analysisID)
	assert.Equal(t, "completed", record["status"])
	assert.Equal(t, simulationID, record["simulation_id"])
	assert.Equal(t, "gemini", record["llm_provider"])
	assert.NotEmpty(t, record["llm_model"])

	results, ok := record["results"].(map[string]interface{})
	require.True(t, ok, "completed analysis must carry results")
	themes, _ := results["themes"].([]interface{})
	require.Len(t, themes, 2)
	assert.Equal(t, "Planning fatigue", themes[0].(map[string]interface{})["name"])
	assert.NotEmpty(t, results["patterns"])
	assert.NotEmpty(t, results["insights"])
	assert.NotEmpty(t, results["enhanced_personas"])
	assert.NotNil(t, results["stakeholder_intelligence"])
	sentiment := results["sentiment_overview"].(map[string]interface{})
	assert.EqualValues(t, 0.5, sentiment["positive"])

	// Each analysis sub-stage went to the model exactly once.
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskThemeExtraction))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskPatternDetection))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskStakeholderAnalysis))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskSentimentAnalysis))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskPersonaSynthesis))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskInsightSynthesis))

	fetched := app.GetAnalysis(t, analysisID)
	assert.Equal(t, record["analysis_id"], fetched["analysis_id"])
	assert.Equal(t, "completed", fetched["status"])
	assert.Equal(t, simulationID, fetched["simulation_id"])
}

// ────────────────────────────────────────────────────────────
// Dataset export joined with the source simulation.
// ────────────────────────────────────────────────────────────

func TestE2E_DatasetExport(t *testing.T) {
	app := NewTestApp(t)
	simulationID := seedSimulation(t, app)

	record := app.AnalyzeSimulation(t, simulationID)
	analysisID := int(record["analysis_id"].(float64))

	ds := app.ExportDataset(t, analysisID)
	assert.NotEmpty(t, ds["scope_id"])
	assert.Equal(t, defaultBrief()["business_idea"], ds["scope_name"])
	assert.Contains(t, ds["description"], simulationID)

	// Enhanced personas win over the plain synthesis output.
	personas, _ := ds["personas"].([]interface{})
	require.Len(t, personas, 1)
	persona := personas[0].(map[string]interface{})
	assert.Equal(t, "The Overloaded Planner", persona["name"])
	assert.Greater(t, persona["overall_confidence"], 0.0)
	meta := persona["metadata"].(map[string]interface{})
	assert.Equal(t, "enhanced_personas", meta["source"])
	assert.EqualValues(t, analysisID, meta["analysis_id"])
	assert.Equal(t, simulationID, meta["simulation_id"])

	interviews, _ := ds["interviews"].([]interface{})
	assert.Len(t, interviews, 1)
	people, _ := ds["simulation_people"].([]interface{})
	assert.Len(t, people, 1)

	quality := ds["quality"].(map[string]interface{})
	assert.EqualValues(t, 1, quality["interview_count"])
	assert.EqualValues(t, 1, quality["stakeholder_coverage"])
	assert.Greater(t, quality["avg_persona_quality"], 0.0)

	// The full envelope rides along for traceability.
	assert.NotEmpty(t, field(t, ds, "analysis", "themes"))
}

// ────────────────────────────────────────────────────────────
// Analysis over a raw transcript, export without a simulation.
// ────────────────────────────────────────────────────────────

func TestE2E_AnalysisOfTranscript(t *testing.T) {
	app := NewTestApp(t)

	transcript := "Interviewer: How do you plan meals today?\n" +
		"Parent: Honestly it all happens Sunday evening or not at all.\n" +
		"Interviewer: What do you throw away in a normal week?\n" +
		"Parent: Half the vegetables, most weeks. There is never a plan for them."

	record := app.AnalyzeText(t, transcript)
	assert.Equal(t, "completed", record["status"])
	assert.NotContains(t, record, "simulation_id")

	analysisID := int(record["analysis_id"].(float64))
	ds := app.ExportDataset(t, analysisID)

	// No simulation to join: the export degrades to analysis-only content.
	assert.Equal(t, fmt.Sprintf("Persona dataset %d", analysisID), ds["scope_name"])
	assert.Empty(t, ds["interviews"])
	assert.Empty(t, ds["simulation_people"])

	personas, _ := ds["personas"].([]interface{})
	require.Len(t, personas, 1)
	meta := personas[0].(map[string]interface{})["metadata"].(map[string]interface{})
	assert.Equal(t, "enhanced_personas", meta["source"])
	assert.NotContains(t, meta, "simulation_id")

	quality := ds["quality"].(map[string]interface{})
	assert.EqualValues(t, 0, quality["interview_count"])
	assert.EqualValues(t, 0, quality["stakeholder_coverage"])
}

// ────────────────────────────────────────────────────────────
// Error paths.
// ────────────────────────────────────────────────────────────

func TestE2E_AnalysisErrorPaths(t *testing.T) {
	app := NewTestApp(t)

	resp := app.getJSON(t, "/analysis/999999", http.StatusNotFound)
	assert.Contains(t, resp["error"], "not found")

	resp = app.postJSON(t, "/analysis?simulation_id=does-not-exist", nil, http.StatusNotFound)
	assert.Contains(t, resp["error"], "not found")

	resp = app.postJSON(t, "/analysis", nil, http.StatusBadRequest)
	assert.Contains(t, resp["error"], "interviews_text")

	resp = app.postJSON(t, "/exports/persona-dataset",
		map[string]int{"analysis_id": 424242}, http.StatusNotFound)
	assert.Contains(t, resp["error"], "not found")

	// None of these reached the model.
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskThemeExtraction))
}
