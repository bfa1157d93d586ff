package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Job cancellation — interrupts in-flight interviews, settles failed.
// ────────────────────────────────────────────────────────────

func TestE2E_PipelineCancellation(t *testing.T) {
	gemini := NewMockGemini(t)
	gemini.Block(llm.TaskInterview)
	// The blocked calls must be interrupted by the job context, not by the
	// per-call timeout.
	app := NewTestApp(t, WithGemini(gemini), WithLLMTimeout(2*time.Minute))

	submitted := app.SubmitRun(t, defaultBrief())
	jobID := submitted["job_id"].(string)

	// Wait until the fanout is parked inside blocked interview calls.
	require.Eventually(t, func() bool {
		return app.Gemini.CallCount(llm.TaskInterview) > 0
	}, 30*time.Second, 50*time.Millisecond, "no interview call ever started")

	resp := app.CancelJob(t, jobID, http.StatusAccepted)
	assert.Equal(t, jobID, resp["job_id"])

	// Cancellation is terminal failure with the cancellation marker, never a
	// partial result.
	snapshot := app.WaitForJobStatus(t, jobID, "failed")
	assert.Equal(t, "cancelled", snapshot["error"])
	assert.NotContains(t, snapshot, "result")

	// The durable row agrees with the in-memory mirror, and the interrupted
	// simulation was marked failed on a context that survived the cancel.
	run := app.GetRun(t, jobID)
	assert.Equal(t, "failed", run["status"])
	simulationID, _ := run["simulation_id"].(string)
	require.NotEmpty(t, simulationID)
	sim := app.GetSimulation(t, simulationID)
	assert.Equal(t, "failed", sim["status"])
	assert.Contains(t, sim["error"], "cancelled")
}

// ────────────────────────────────────────────────────────────
// Cancel edge cases — finished and unknown jobs.
// ────────────────────────────────────────────────────────────

func TestE2E_CancelFinishedJob(t *testing.T) {
	app := NewTestApp(t)

	submitted := app.SubmitRun(t, defaultBrief())
	jobID := submitted["job_id"].(string)
	snapshot := app.WaitForJobTerminal(t, jobID)
	require.Equal(t, "completed", snapshot["status"])

	conflict := app.CancelJob(t, jobID, http.StatusConflict)
	assert.Contains(t, conflict["error"], "not in a cancellable state")
}

func TestE2E_CancelUnknownJob(t *testing.T) {
	app := NewTestApp(t)

	missing := app.CancelJob(t, "11111111-2222-3333-4444-555555555555", http.StatusNotFound)
	assert.Contains(t, missing["error"], "not found")
}
