package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Async pipeline — happy path through all four stages.
// ────────────────────────────────────────────────────────────

func TestE2E_PipelineRun(t *testing.T) {
	app := NewTestApp(t)

	// Submit.
	submitted := app.SubmitRun(t, defaultBrief())
	jobID, _ := submitted["job_id"].(string)
	require.NotEmpty(t, jobID)
	assert.Equal(t, "pending", submitted["status"])

	// Wait for completion.
	snapshot := app.WaitForJobTerminal(t, jobID)
	require.Equal(t, "completed", snapshot["status"],
		"job error: %v", snapshot["error"])
	require.Contains(t, snapshot, "result")

	// The default questionnaire has 2 stakeholders; the default simulation
	// config interviews 5 people per stakeholder.
	result := snapshot["result"].(map[string]interface{})
	assert.EqualValues(t, 10, result["persona_count"])
	assert.EqualValues(t, 10, result["interview_count"])
	require.Contains(t, result, "dataset")

	// Full persisted run: one trace entry per stage, in order, all completed.
	run := app.GetRun(t, jobID)
	assert.Equal(t, "completed", run["status"])
	trace := run["execution_trace"].([]interface{})
	require.Len(t, trace, 4)
	wantStages := []string{"questionnaire", "simulation", "analysis", "export"}
	for i, raw := range trace {
		entry := raw.(map[string]interface{})
		assert.Equal(t, wantStages[i], entry["stage_name"])
		assert.Equal(t, "completed", entry["status"], "stage %s: %v", wantStages[i], entry["error"])
	}
	questionnaireOutputs := trace[0].(map[string]interface{})["outputs"].(map[string]interface{})
	assert.EqualValues(t, 2, questionnaireOutputs["stakeholder_count"])
	assert.Greater(t, run["total_duration_seconds"].(float64), 0.0)

	// The dataset is built from the synthesised enhanced personas.
	dataset := run["dataset"].(map[string]interface{})
	personas := dataset["personas"].([]interface{})
	require.Len(t, personas, 1)
	exported := personas[0].(map[string]interface{})
	assert.Equal(t, "The Overloaded Planner", exported["name"])
	assert.Equal(t, "enhanced_personas", field(t, exported, "metadata", "source"))
	assert.Len(t, dataset["interviews"].([]interface{}), 10)
	assert.EqualValues(t, 2, field(t, dataset, "quality", "stakeholder_coverage"))

	// Stage 2 persisted its simulation record.
	simulationID, _ := run["simulation_id"].(string)
	require.NotEmpty(t, simulationID)
	sim := app.GetSimulation(t, simulationID)
	assert.Equal(t, "completed", sim["status"])
	assert.Len(t, sim["personas"].([]interface{}), 10)
	assert.Len(t, sim["interviews"].([]interface{}), 10)

	// Stage 3 persisted its analysis row.
	analysisID := int(run["analysis_id"].(float64))
	require.Greater(t, analysisID, 0)
	record := app.GetAnalysis(t, analysisID)
	assert.Equal(t, "completed", record["status"])
	assert.Equal(t, "gemini", record["llm_provider"])
	results := record["results"].(map[string]interface{})
	assert.Len(t, results["themes"].([]interface{}), 2)
	assert.Len(t, results["enhanced_personas"].([]interface{}), 1)

	// Listing shows the run.
	listed := app.ListRuns(t, "")
	assert.EqualValues(t, 1, listed["total_count"])
	runs := listed["runs"].([]interface{})
	require.Len(t, runs, 1)
	assert.Equal(t, jobID, runs[0].(map[string]interface{})["job_id"])

	// Provider call accounting: 1 questionnaire, 1 persona batch per
	// stakeholder, 1 interview per persona, 6 analysis sub-stage calls of
	// which theme extraction is single-pass.
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskQuestionnaireBuild))
	assert.Equal(t, 2, app.Gemini.CallCount(llm.TaskPersonaBatch))
	assert.Equal(t, 10, app.Gemini.CallCount(llm.TaskInterview))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskThemeExtraction))
	assert.Equal(t, 1, app.Gemini.CallCount(llm.TaskInsightSynthesis))

	// The run left its traces on the scrape endpoint.
	metricsText := app.GetMetrics(t)
	assert.Contains(t, metricsText, "persim_llm_calls_total")
	assert.Contains(t, metricsText, "persim_interviews_total")
	assert.Contains(t, metricsText, `persim_pipeline_run_duration_seconds_count{status="completed"}`)
}

// ────────────────────────────────────────────────────────────
// Async pipeline — stage-1 failure fails the run and skips the rest.
// ────────────────────────────────────────────────────────────

func TestE2E_PipelineFailurePropagation(t *testing.T) {
	gemini := NewMockGemini(t)
	gemini.FailWith(llm.TaskQuestionnaireBuild, http.StatusBadRequest, "API key not valid")
	app := NewTestApp(t, WithGemini(gemini))

	submitted := app.SubmitRun(t, defaultBrief())
	jobID := submitted["job_id"].(string)

	snapshot := app.WaitForJobTerminal(t, jobID)
	assert.Equal(t, "failed", snapshot["status"])
	assert.Contains(t, snapshot["error"], "HTTP 400")
	assert.NotContains(t, snapshot, "result")

	// Trace: questionnaire failed, everything downstream skipped.
	run := app.GetRun(t, jobID)
	trace := run["execution_trace"].([]interface{})
	require.Len(t, trace, 4)
	first := trace[0].(map[string]interface{})
	assert.Equal(t, "failed", first["status"])
	assert.Contains(t, first["error"], "HTTP 400")
	for _, raw := range trace[1:] {
		entry := raw.(map[string]interface{})
		assert.Equal(t, "skipped", entry["status"])
		assert.Contains(t, entry["error"], "did not complete")
	}

	// Nothing downstream ran.
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskPersonaBatch))
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskInterview))

	// The failed run is visible through the status filter.
	listed := app.ListRuns(t, "status=failed")
	assert.EqualValues(t, 1, listed["total_count"])
}

// ────────────────────────────────────────────────────────────
// Async pipeline — a dead interview stage yields a partial run.
// ────────────────────────────────────────────────────────────

func TestE2E_PipelinePartialCompletion(t *testing.T) {
	gemini := NewMockGemini(t)
	gemini.FailWith(llm.TaskInterview, http.StatusForbidden, "persona refused")
	app := NewTestApp(t, WithGemini(gemini))

	submitted := app.SubmitRun(t, defaultBrief())
	jobID := submitted["job_id"].(string)

	snapshot := app.WaitForJobTerminal(t, jobID)
	assert.Equal(t, "partial", snapshot["status"])
	assert.Contains(t, snapshot["error"], "interviews failed")

	run := app.GetRun(t, jobID)
	trace := run["execution_trace"].([]interface{})
	require.Len(t, trace, 4)
	wantStatus := []string{"completed", "failed", "skipped", "skipped"}
	for i, raw := range trace {
		entry := raw.(map[string]interface{})
		assert.Equal(t, wantStatus[i], entry["status"], "stage %v", entry["stage_name"])
	}

	// The simulation record exists and is marked failed; its results were
	// never stored.
	simulationID, _ := run["simulation_id"].(string)
	require.NotEmpty(t, simulationID)
	sim := app.GetSimulation(t, simulationID)
	assert.Equal(t, "failed", sim["status"])
	assert.Contains(t, sim["error"], "interviews failed")
	assert.Empty(t, sim["personas"])

	// Every persona was interviewed exactly once: HTTP 403 is fatal, so the
	// fanout does not retry.
	assert.Equal(t, 10, app.Gemini.CallCount(llm.TaskInterview))
	assert.Equal(t, 0, app.Gemini.CallCount(llm.TaskThemeExtraction))
}
