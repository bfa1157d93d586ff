package analysis

import (
	"fmt"
	"strings"

	"github.com/synthlab-ai/persim/pkg/models"
)

// BuildCorpus renders interviews as a stakeholder-aware transcript. Grouping
// by stakeholder keeps each role's voice contiguous, which the analysis
// prompts rely on when attributing themes and detecting cross-stakeholder
// patterns. Group order follows first appearance in the input.
func BuildCorpus(interviews []models.Interview) string {
	groups := make(map[string][]models.Interview)
	var order []string
	for _, iv := range interviews {
		key := iv.StakeholderType
		if key == "" {
			key = "Unattributed"
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], iv)
	}

	var b strings.Builder
	for _, stakeholder := range order {
		fmt.Fprintf(&b, "=== Stakeholder: %s ===\n\n", stakeholder)
		for i, iv := range groups[stakeholder] {
			fmt.Fprintf(&b, "Interview %d (participant %s, %d minutes, overall sentiment %s):\n",
				i+1, iv.PersonID, iv.DurationMinutes, iv.OverallSentiment)
			for _, r := range iv.Responses {
				fmt.Fprintf(&b, "Q: %s\nA: %s\n", r.Question, r.Response)
			}
			if len(iv.KeyThemes) > 0 {
				fmt.Fprintf(&b, "Noted themes: %s\n", strings.Join(iv.KeyThemes, ", "))
			}
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// CountExchanges returns the total number of Q/A exchanges across interviews.
func CountExchanges(interviews []models.Interview) int {
	n := 0
	for _, iv := range interviews {
		n += len(iv.Responses)
	}
	return n
}
