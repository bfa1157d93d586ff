// Package questionnaire turns a business brief into a stakeholder interview
// guide. One LLM call produces a raw per-phase document; the builder owns
// the deterministic part: flattening, id assignment, and the time estimate.
package questionnaire

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/models"
)

// Gateway is the slice of the LLM client the builder needs.
type Gateway interface {
	GenerateQuestionnaire(ctx context.Context, brief models.BusinessBrief) (*llm.QuestionnaireDoc, error)
}

// Builder assembles questionnaires. Safe for concurrent use.
type Builder struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewBuilder creates a questionnaire builder over the given gateway.
func NewBuilder(gateway Gateway) *Builder {
	return &Builder{
		gateway: gateway,
		logger:  slog.With("component", "questionnaire"),
	}
}

// Build produces the questionnaire for a brief. Any gateway error is fatal:
// no partial questionnaire is ever emitted.
func (b *Builder) Build(ctx context.Context, brief models.BusinessBrief) (*models.Questionnaire, error) {
	if field := brief.Validate(); field != "" {
		return nil, fmt.Errorf("missing required field: %s", field)
	}

	doc, err := b.gateway.GenerateQuestionnaire(ctx, brief)
	if err != nil {
		return nil, fmt.Errorf("generate questionnaire: %w", err)
	}

	q := &models.Questionnaire{
		Stakeholders: models.StakeholderGroups{
			Primary:   flattenBucket("primary", doc.PrimaryStakeholders),
			Secondary: flattenBucket("secondary", doc.SecondaryStakeholders),
		},
	}
	if q.StakeholderCount() == 0 {
		return nil, fmt.Errorf("model returned no usable stakeholders")
	}
	q.TimeEstimate = estimateTime(q.TotalQuestions())

	b.logger.Info("questionnaire built",
		"stakeholders", q.StakeholderCount(),
		"questions", q.TotalQuestions(),
		"time_estimate", q.TimeEstimate)
	return q, nil
}

// flattenBucket converts raw stakeholder docs into their canonical form.
// Phase identity is discarded: questions concatenate in fixed phase order
// (problem discovery, solution validation, follow-up). Stakeholders without
// a name are dropped; ids are bucket-prefixed, using the model's explicit
// index when present and the 1-based position otherwise.
func flattenBucket(bucket string, docs []llm.StakeholderDoc) []models.Stakeholder {
	out := make([]models.Stakeholder, 0, len(docs))
	for i, doc := range docs {
		name := strings.TrimSpace(doc.Name)
		if name == "" {
			continue
		}

		position := i + 1
		if doc.Index != nil && *doc.Index > 0 {
			position = *doc.Index
		}

		questions := make([]string, 0,
			len(doc.ProblemDiscoveryQuestions)+len(doc.SolutionValidationQuestions)+len(doc.FollowUpQuestions))
		for _, phase := range [][]string{
			doc.ProblemDiscoveryQuestions,
			doc.SolutionValidationQuestions,
			doc.FollowUpQuestions,
		} {
			for _, q := range phase {
				if s := strings.TrimSpace(q); s != "" {
					questions = append(questions, s)
				}
			}
		}

		out = append(out, models.Stakeholder{
			ID:          fmt.Sprintf("%s_%d", bucket, position),
			Name:        name,
			Description: strings.TrimSpace(doc.Description),
			Questions:   questions,
		})
	}
	return out
}

// estimateTime renders the rough interview time: two minutes per question
// plus five minutes setup.
func estimateTime(totalQuestions int) string {
	return fmt.Sprintf("~%dm", totalQuestions*2+5)
}
