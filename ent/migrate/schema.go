// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisResultsColumns holds the columns for the "analysis_results" table.
	AnalysisResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "simulation_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "completed"},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_provider", Type: field.TypeString, Nullable: true},
		{Name: "llm_model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// AnalysisResultsTable holds the schema information for the "analysis_results" table.
	AnalysisResultsTable = &schema.Table{
		Name:       "analysis_results",
		Columns:    AnalysisResultsColumns,
		PrimaryKey: []*schema.Column{AnalysisResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisresult_simulation_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisResultsColumns[1]},
			},
			{
				Name:    "analysisresult_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisResultsColumns[6]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "partial", "failed"}, Default: "pending"},
		{Name: "business_context", Type: field.TypeJSON},
		{Name: "execution_trace", Type: field.TypeJSON, Nullable: true},
		{Name: "dataset", Type: field.TypeJSON, Nullable: true},
		{Name: "questionnaire_stakeholder_count", Type: field.TypeInt, Nullable: true},
		{Name: "simulation_id", Type: field.TypeString, Nullable: true},
		{Name: "analysis_id", Type: field.TypeInt, Nullable: true},
		{Name: "persona_count", Type: field.TypeInt, Nullable: true},
		{Name: "interview_count", Type: field.TypeInt, Nullable: true},
		{Name: "total_duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[2]},
			},
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[2], PipelineRunsColumns[12]},
			},
			{
				Name:    "pipelinerun_user_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1]},
			},
		},
	}
	// SimulationsColumns holds the columns for the "simulations" table.
	SimulationsColumns = []*schema.Column{
		{Name: "simulation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "business_context", Type: field.TypeJSON},
		{Name: "questions_data", Type: field.TypeJSON, Nullable: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "personas", Type: field.TypeJSON, Nullable: true},
		{Name: "interviews", Type: field.TypeJSON, Nullable: true},
		{Name: "insights", Type: field.TypeJSON, Nullable: true},
		{Name: "formatted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// SimulationsTable holds the schema information for the "simulations" table.
	SimulationsTable = &schema.Table{
		Name:       "simulations",
		Columns:    SimulationsColumns,
		PrimaryKey: []*schema.Column{SimulationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "simulation_status",
				Unique:  false,
				Columns: []*schema.Column{SimulationsColumns[2]},
			},
			{
				Name:    "simulation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SimulationsColumns[2], SimulationsColumns[10]},
			},
			{
				Name:    "simulation_user_id",
				Unique:  false,
				Columns: []*schema.Column{SimulationsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisResultsTable,
		PipelineRunsTable,
		SimulationsTable,
	}
)

func init() {
}
