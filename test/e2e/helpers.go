package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.postJSONAuth(t, path, "", body, expectedStatus)
}

// postJSONAuth is postJSON with a bearer token, for apps started with
// WithAuthRequired.
func (app *TestApp) postJSONAuth(t *testing.T, path, token string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getText(t *testing.T, path string, expectedStatus int) string {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

// ────────────────────────────────────────────────────────────
// Pipeline Job Helpers
// ────────────────────────────────────────────────────────────

// SubmitRun posts a brief to the async pipeline and returns the job status.
func (app *TestApp) SubmitRun(t *testing.T, brief map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/pipeline/run-async", brief, http.StatusOK)
}

// GetJob polls one job's status.
func (app *TestApp) GetJob(t *testing.T, jobID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/pipeline/jobs/"+jobID, http.StatusOK)
}

// GetRun retrieves the full persisted run: trace, dataset, counts.
func (app *TestApp) GetRun(t *testing.T, jobID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/pipeline/runs/"+jobID, http.StatusOK)
}

// ListRuns calls GET /pipeline/runs with optional query params.
func (app *TestApp) ListRuns(t *testing.T, queryParams string) map[string]interface{} {
	t.Helper()
	path := "/pipeline/runs"
	if queryParams != "" {
		path += "?" + queryParams
	}
	return app.getJSON(t, path, http.StatusOK)
}

// CancelJob sends POST /pipeline/jobs/:id/cancel.
func (app *TestApp) CancelJob(t *testing.T, jobID string, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/pipeline/jobs/"+jobID+"/cancel", nil, expectedStatus)
}

// WaitForJobStatus polls the job endpoint until the job reaches one of the
// expected statuses, and returns the last snapshot.
func (app *TestApp) WaitForJobStatus(t *testing.T, jobID string, expected ...string) map[string]interface{} {
	t.Helper()
	var snapshot map[string]interface{}
	var actual string
	require.Eventually(t, func() bool {
		snapshot = app.GetJob(t, jobID)
		actual, _ = snapshot["status"].(string)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"job %s did not reach status %v (last: %s)", jobID, expected, actual)
	return snapshot
}

// WaitForJobTerminal polls until the job settles in any terminal status.
func (app *TestApp) WaitForJobTerminal(t *testing.T, jobID string) map[string]interface{} {
	t.Helper()
	return app.WaitForJobStatus(t, jobID, "completed", "partial", "failed")
}

// ────────────────────────────────────────────────────────────
// Simulation / Analysis / Export Helpers
// ────────────────────────────────────────────────────────────

// RunSimulation runs the synchronous fanout endpoint.
func (app *TestApp) RunSimulation(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/simulations", body, http.StatusOK)
}

// GetSimulation retrieves a stored simulation by id.
func (app *TestApp) GetSimulation(t *testing.T, simulationID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/simulations/"+simulationID, http.StatusOK)
}

// ListSimulations calls GET /simulations.
func (app *TestApp) ListSimulations(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/simulations", http.StatusOK)
}

// AnalyzeSimulation runs the analysis pipeline over a stored simulation.
func (app *TestApp) AnalyzeSimulation(t *testing.T, simulationID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/analysis?simulation_id="+simulationID, nil, http.StatusOK)
}

// AnalyzeText runs the analysis pipeline over a raw transcript.
func (app *TestApp) AnalyzeText(t *testing.T, transcript string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/analysis",
		map[string]string{"interviews_text": transcript}, http.StatusOK)
}

// GetAnalysis retrieves a stored analysis record by id.
func (app *TestApp) GetAnalysis(t *testing.T, analysisID int) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, fmt.Sprintf("/analysis/%d", analysisID), http.StatusOK)
}

// ExportDataset assembles the persona dataset for one analysis.
func (app *TestApp) ExportDataset(t *testing.T, analysisID int) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/exports/persona-dataset",
		map[string]int{"analysis_id": analysisID}, http.StatusOK)
}

// CreateQuestionnaire builds an interview guide from a brief.
func (app *TestApp) CreateQuestionnaire(t *testing.T, brief map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/questionnaires", brief, http.StatusOK)
}

// GetHealth calls GET /health.
func (app *TestApp) GetHealth(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/health", http.StatusOK)
}

// GetMetrics returns the Prometheus exposition text.
func (app *TestApp) GetMetrics(t *testing.T) string {
	t.Helper()
	return app.getText(t, "/metrics", http.StatusOK)
}

// ────────────────────────────────────────────────────────────
// Request Fixtures
// ────────────────────────────────────────────────────────────

// defaultBrief is the business brief used across the suite.
func defaultBrief() map[string]interface{} {
	return map[string]interface{}{
		"business_idea":   "A weekly meal planning service that builds grocery lists automatically",
		"target_customer": "Dual-income households with children",
		"problem":         "Families waste food and evenings deciding what to cook",
		"industry":        "Consumer food tech",
		"location":        "Nordics",
	}
}

// defaultQuestionsData is a ready-made questionnaire for simulations that
// skip stage 1.
func defaultQuestionsData() map[string]interface{} {
	return map[string]interface{}{
		"stakeholders": map[string]interface{}{
			"primary": []interface{}{
				map[string]interface{}{
					"id":          "primary_1",
					"name":        "Working Parents",
					"description": "Dual-income households that own the weekly meal plan",
					"questions": []interface{}{
						"Walk me through how you decided what to cook last week.",
						"How much food would you say you throw away in a normal week?",
						"What would make you stop using a meal planning service after a month?",
					},
				},
			},
			"secondary": []interface{}{},
		},
		"time_estimate": "~11m",
	}
}

// field walks a decoded JSON object along a path of keys.
func field(t *testing.T, doc map[string]interface{}, path ...string) interface{} {
	t.Helper()
	var current interface{} = doc
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		require.True(t, ok, "field %v: %q is not an object", path, key)
		current, ok = obj[key]
		require.True(t, ok, "field %v: key %q missing", path, key)
	}
	return current
}
