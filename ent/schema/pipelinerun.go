package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/synthlab-ai/persim/pkg/models"
)

// PipelineRun holds the schema definition for the PipelineRun entity.
// One row per background pipeline job. The row is authoritative: the job
// registry's in-memory map is only a volatile mirror of it.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "partial", "failed").
			Default("pending"),
		field.JSON("business_context", models.BusinessBrief{}),
		field.JSON("execution_trace", []models.StageTrace{}).
			Optional(),
		field.JSON("dataset", &models.Dataset{}).
			Optional(),
		field.Int("questionnaire_stakeholder_count").
			Optional(),
		field.String("simulation_id").
			Optional().
			Nillable(),
		field.Int("analysis_id").
			Optional().
			Nillable(),
		field.Int("persona_count").
			Optional(),
		field.Int("interview_count").
			Optional(),
		field.Float("total_duration_seconds").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set when the job leaves pending"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set when the job reaches a terminal status"),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("user_id"),
	}
}
