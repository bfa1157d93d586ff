package llm

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Task output schemas. Deliberately shallow: they pin the envelope keys and
// collection types so a structurally wrong reply fails fast and retries,
// while leaving content validation to the consuming stage.
var taskSchemas = map[TaskKind]map[string]any{
	TaskQuestionnaireBuild: {
		"type":     "object",
		"required": []string{"primaryStakeholders", "secondaryStakeholders"},
		"properties": map[string]any{
			"primaryStakeholders":   stakeholderListSchema,
			"secondaryStakeholders": stakeholderListSchema,
		},
	},
	TaskPersonaBatch: {
		"type":     "object",
		"required": []string{"personas"},
		"properties": map[string]any{
			"personas": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
	TaskInterview: {
		"type":     "object",
		"required": []string{"responses"},
		"properties": map[string]any{
			"responses": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"question", "response"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"response": map[string]any{"type": "string"},
					},
				},
			},
			"overall_sentiment": map[string]any{"type": "string"},
			"key_themes":        map[string]any{"type": "array"},
		},
	},
	TaskThemeExtraction: {
		"type":     "object",
		"required": []string{"themes"},
		"properties": map[string]any{
			"themes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
				},
			},
			"enhanced_themes": map[string]any{"type": "array"},
		},
	},
	TaskPatternDetection: {
		"type":     "object",
		"required": []string{"patterns"},
		"properties": map[string]any{
			"patterns":          map[string]any{"type": "array"},
			"enhanced_patterns": map[string]any{"type": "array"},
		},
	},
	TaskStakeholderAnalysis: {
		"type":     "object",
		"required": []string{"detected_stakeholders"},
		"properties": map[string]any{
			"detected_stakeholders":      map[string]any{"type": "array"},
			"cross_stakeholder_patterns": map[string]any{"type": "object"},
			"multi_stakeholder_summary":  map[string]any{"type": "string"},
		},
	},
	TaskSentimentAnalysis: {
		"type":     "object",
		"required": []string{"sentiment_overview"},
		"properties": map[string]any{
			"sentiment_overview": map[string]any{
				"type":     "object",
				"required": []string{"positive", "neutral", "negative"},
				"properties": map[string]any{
					"positive": map[string]any{"type": "number"},
					"neutral":  map[string]any{"type": "number"},
					"negative": map[string]any{"type": "number"},
				},
			},
			"sentiment_details": map[string]any{"type": "array"},
		},
	},
	TaskPersonaSynthesis: {
		"type":     "object",
		"required": []string{"personas"},
		"properties": map[string]any{
			"personas":          map[string]any{"type": "array"},
			"enhanced_personas": map[string]any{"type": "array"},
		},
	},
	TaskInsightSynthesis: {
		"type":     "object",
		"required": []string{"insights"},
		"properties": map[string]any{
			"insights": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"title", "description"},
				},
			},
			"enhanced_insights": map[string]any{"type": "array"},
		},
	},
	TaskSingleResponse: {
		"type":     "object",
		"required": []string{"response"},
		"properties": map[string]any{
			"response": map[string]any{"type": "string"},
		},
	},
}

var stakeholderListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
		},
	},
}

// validateTaskOutput checks doc against the task's schema. A nil return means
// the envelope is usable; violations are joined into one error message.
func validateTaskOutput(kind TaskKind, doc string) error {
	schema, ok := taskSchemas[kind]
	if !ok {
		return nil
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
		if len(violations) == 5 {
			break
		}
	}
	return fmt.Errorf("output failed schema validation: %s", strings.Join(violations, "; "))
}
