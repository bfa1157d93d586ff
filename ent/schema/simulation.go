package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/synthlab-ai/persim/pkg/models"
)

// Simulation holds the schema definition for the Simulation entity.
// One row per stage-2 run; personas and interviews are stored verbatim as JSON.
type Simulation struct {
	ent.Schema
}

// Fields of the Simulation.
func (Simulation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("simulation_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.JSON("business_context", models.BusinessBrief{}),
		field.JSON("questions_data", &models.Questionnaire{}).
			Optional(),
		field.JSON("config", models.SimulationConfig{}),
		field.JSON("personas", []models.Persona{}).
			Optional(),
		field.JSON("interviews", []models.Interview{}).
			Optional(),
		field.JSON("insights", &models.SimulationInsights{}).
			Optional(),
		field.JSON("formatted_data", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the Simulation.
func (Simulation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("user_id"),
	}
}
