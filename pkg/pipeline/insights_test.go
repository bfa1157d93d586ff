package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
)

func TestBuildInsightsRollsUpInterviews(t *testing.T) {
	interviews := []models.Interview{
		{StakeholderType: "Developers", DurationMinutes: 10, KeyThemes: []string{"tooling", "latency"}},
		{StakeholderType: "Developers", DurationMinutes: 14, KeyThemes: []string{"tooling"}},
		{StakeholderType: "Operations", DurationMinutes: 6, KeyThemes: []string{"cost", "tooling"}},
	}

	insights := buildInsights(interviews, 2)

	assert.Equal(t, 3, insights.TotalInterviews)
	assert.Equal(t, 2, insights.FailedInterviews)
	assert.Equal(t, map[string]int{"Developers": 2, "Operations": 1}, insights.StakeholderCounts)
	assert.InDelta(t, 10.0, insights.AverageDuration, 0.001)
	// tooling appears three times, then latency and cost in first-seen order.
	assert.Equal(t, []string{"tooling", "latency", "cost"}, insights.CommonThemes)
}

func TestBuildInsightsCapsCommonThemes(t *testing.T) {
	iv := models.Interview{KeyThemes: []string{"a", "b", "c", "d", "e", "f", "g"}}

	insights := buildInsights([]models.Interview{iv}, 0)

	assert.Len(t, insights.CommonThemes, maxCommonThemes)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, insights.CommonThemes)
}

func TestBuildInsightsEmptyInput(t *testing.T) {
	insights := buildInsights(nil, 0)

	assert.Zero(t, insights.TotalInterviews)
	assert.Zero(t, insights.AverageDuration)
	assert.NotNil(t, insights.CommonThemes)
	assert.Empty(t, insights.CommonThemes)
	assert.Empty(t, insights.StakeholderCounts)
}

func TestFormatResultsGroupsByStakeholder(t *testing.T) {
	personas := []models.Persona{
		{Name: "Maya", StakeholderType: "Developers"},
		{Name: "Jonas", StakeholderType: "Developers"},
		{Name: "Priya", StakeholderType: "Operations"},
	}
	interviews := []models.Interview{
		{StakeholderType: "Developers", OverallSentiment: "positive"},
		{StakeholderType: "Developers", OverallSentiment: "negative"},
		{StakeholderType: "Developers", OverallSentiment: "positive"},
		{StakeholderType: "Operations", OverallSentiment: "mixed"},
	}

	formatted := formatResults(personas, interviews)

	assert.Equal(t, "v1", formatted["version"])
	assert.Equal(t, 3, formatted["total_personas"])
	assert.Equal(t, 4, formatted["total_interviews"])
	assert.NotEmpty(t, formatted["generated_at"])

	blocks, ok := formatted["stakeholders"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, blocks, 2)

	dev := blocks[0]
	assert.Equal(t, "Developers", dev["name"])
	assert.Equal(t, []string{"Maya", "Jonas"}, dev["personas"])
	assert.Equal(t, 3, dev["interview_count"])
	assert.Equal(t, "positive", dev["dominant_sentiment"])

	ops := blocks[1]
	assert.Equal(t, "Operations", ops["name"])
	assert.Equal(t, 1, ops["interview_count"])
	assert.Equal(t, "mixed", ops["dominant_sentiment"])
}

func TestFormatResultsHandlesInterviewOnlyStakeholder(t *testing.T) {
	// An interview whose stakeholder had no persona row still gets a block.
	formatted := formatResults(nil, []models.Interview{
		{StakeholderType: "Regulators", OverallSentiment: "neutral"},
	})

	blocks, ok := formatted["stakeholders"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Regulators", blocks[0]["name"])
	assert.Empty(t, blocks[0]["personas"])
	assert.Equal(t, 1, blocks[0]["interview_count"])
}
