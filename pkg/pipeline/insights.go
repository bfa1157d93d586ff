package pipeline

import (
	"time"

	"github.com/synthlab-ai/persim/pkg/models"
)

const maxCommonThemes = 5

// buildInsights computes the lightweight roll-up stored next to the raw
// interviews. Common themes are ranked by frequency across interviews, ties
// broken by first appearance.
func buildInsights(interviews []models.Interview, failed int) *models.SimulationInsights {
	out := &models.SimulationInsights{
		TotalInterviews:   len(interviews),
		FailedInterviews:  failed,
		StakeholderCounts: make(map[string]int, 4),
		CommonThemes:      []string{},
	}

	totalMinutes := 0
	themeOrder := []string{}
	themeFreq := map[string]int{}
	for _, iv := range interviews {
		if iv.StakeholderType != "" {
			out.StakeholderCounts[iv.StakeholderType]++
		}
		totalMinutes += iv.DurationMinutes
		for _, theme := range iv.KeyThemes {
			if theme == "" {
				continue
			}
			if _, seen := themeFreq[theme]; !seen {
				themeOrder = append(themeOrder, theme)
			}
			themeFreq[theme]++
		}
	}
	if len(interviews) > 0 {
		out.AverageDuration = float64(totalMinutes) / float64(len(interviews))
	}

	// Stable selection sort over the small theme set.
	for len(out.CommonThemes) < maxCommonThemes && len(themeOrder) > 0 {
		best := 0
		for i, theme := range themeOrder {
			if themeFreq[theme] > themeFreq[themeOrder[best]] {
				best = i
			}
		}
		out.CommonThemes = append(out.CommonThemes, themeOrder[best])
		themeOrder = append(themeOrder[:best], themeOrder[best+1:]...)
	}
	return out
}

// formatResults builds the display-ready summary stored in formatted_data:
// one block per stakeholder in persona order, with the personas interviewed
// under it and the sentiment that dominated their answers.
func formatResults(personas []models.Persona, interviews []models.Interview) map[string]any {
	type block struct {
		names      []string
		interviews int
		sentiments map[string]int
		order      []string
	}

	blockOrder := []string{}
	blocks := map[string]*block{}
	ensure := func(stakeholder string) *block {
		b, ok := blocks[stakeholder]
		if !ok {
			b = &block{sentiments: map[string]int{}}
			blocks[stakeholder] = b
			blockOrder = append(blockOrder, stakeholder)
		}
		return b
	}

	for _, p := range personas {
		b := ensure(p.StakeholderType)
		b.names = append(b.names, p.Name)
	}
	for _, iv := range interviews {
		b := ensure(iv.StakeholderType)
		b.interviews++
		if iv.OverallSentiment != "" {
			if _, seen := b.sentiments[iv.OverallSentiment]; !seen {
				b.order = append(b.order, iv.OverallSentiment)
			}
			b.sentiments[iv.OverallSentiment]++
		}
	}

	stakeholders := make([]map[string]any, 0, len(blockOrder))
	for _, name := range blockOrder {
		b := blocks[name]
		dominant := ""
		for _, s := range b.order {
			if dominant == "" || b.sentiments[s] > b.sentiments[dominant] {
				dominant = s
			}
		}
		stakeholders = append(stakeholders, map[string]any{
			"name":               name,
			"personas":           b.names,
			"interview_count":    b.interviews,
			"dominant_sentiment": dominant,
		})
	}

	return map[string]any{
		"version":          "v1",
		"generated_at":     time.Now().UTC().Format(time.RFC3339),
		"total_personas":   len(personas),
		"total_interviews": len(interviews),
		"stakeholders":     stakeholders,
	}
}
