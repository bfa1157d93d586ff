package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Health(t *testing.T) {
	app := NewTestApp(t)

	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "healthy", field(t, health, "checks", "database", "status"))
	assert.Contains(t, health, "version")
}

func TestE2E_MetricsExposition(t *testing.T) {
	app := NewTestApp(t)

	// Plain gauges are exposed from the first scrape; vector collectors only
	// appear once something has been recorded.
	body := app.GetMetrics(t)
	assert.Contains(t, body, "persim_pipeline_runs_active")

	// The request middleware observes after the response is flushed, so poll
	// for the health request showing up in the histogram.
	app.GetHealth(t)
	require.Eventually(t, func() bool {
		return strings.Contains(app.GetMetrics(t), `route="/health"`)
	}, 5*time.Second, 50*time.Millisecond, "health request was never observed")
}
