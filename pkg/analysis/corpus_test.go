package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
)

func corpusInterview(person, stakeholder string, qa ...string) models.Interview {
	iv := models.Interview{
		PersonID:         person,
		StakeholderType:  stakeholder,
		DurationMinutes:  12,
		OverallSentiment: "neutral",
	}
	for i := 0; i+1 < len(qa); i += 2 {
		iv.Responses = append(iv.Responses, models.InterviewResponse{
			Question: qa[i],
			Response: qa[i+1],
		})
	}
	return iv
}

func TestBuildCorpusGroupsByStakeholder(t *testing.T) {
	interviews := []models.Interview{
		corpusInterview("p1", "Developers", "How do you debug?", "Mostly with print statements."),
		corpusInterview("p2", "Managers", "How do you plan?", "Quarterly, badly."),
		corpusInterview("p3", "Developers", "How do you test?", "CI runs everything."),
	}

	corpus := BuildCorpus(interviews)

	devIdx := strings.Index(corpus, "=== Stakeholder: Developers ===")
	mgrIdx := strings.Index(corpus, "=== Stakeholder: Managers ===")
	require.GreaterOrEqual(t, devIdx, 0)
	require.Greater(t, mgrIdx, devIdx, "group order follows first appearance")

	// Both developer interviews land in the same group, before the manager one.
	assert.Less(t, strings.Index(corpus, "participant p1"), mgrIdx)
	assert.Less(t, strings.Index(corpus, "participant p3"), mgrIdx)
	assert.Greater(t, strings.Index(corpus, "participant p2"), mgrIdx)

	assert.Contains(t, corpus, "Q: How do you debug?\nA: Mostly with print statements.")
	assert.Contains(t, corpus, "12 minutes, overall sentiment neutral")
}

func TestBuildCorpusLabelsMissingStakeholder(t *testing.T) {
	corpus := BuildCorpus([]models.Interview{corpusInterview("p1", "", "Q?", "A.")})
	assert.Contains(t, corpus, "=== Stakeholder: Unattributed ===")
}

func TestBuildCorpusIncludesKeyThemes(t *testing.T) {
	iv := corpusInterview("p1", "Developers", "Q?", "A.")
	iv.KeyThemes = []string{"tooling", "latency"}
	corpus := BuildCorpus([]models.Interview{iv})
	assert.Contains(t, corpus, "Noted themes: tooling, latency")
}

func TestCountExchanges(t *testing.T) {
	interviews := []models.Interview{
		corpusInterview("p1", "Developers", "Q1?", "A1.", "Q2?", "A2."),
		corpusInterview("p2", "Managers", "Q3?", "A3."),
		corpusInterview("p3", "Managers"),
	}
	assert.Equal(t, 3, CountExchanges(interviews))
}
