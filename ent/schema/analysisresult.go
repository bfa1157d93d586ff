package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/synthlab-ai/persim/pkg/models"
)

// AnalysisResult holds the schema definition for the AnalysisResult entity.
// The implicit auto-increment id is the analysis surrogate key; simulation_id
// is a soft reference because an analysis may also be produced from direct
// text.
type AnalysisResult struct {
	ent.Schema
}

// Fields of the AnalysisResult.
func (AnalysisResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("simulation_id").
			Optional().
			Nillable(),
		field.String("status").
			Default("completed"),
		field.JSON("results", &models.DetailedAnalysis{}).
			Optional(),
		field.String("llm_provider").
			Optional(),
		field.String("llm_model").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the AnalysisResult.
func (AnalysisResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("simulation_id"),
		index.Fields("created_at"),
	}
}
