// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/ent/schema"
	"github.com/synthlab-ai/persim/ent/simulation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisresultFields := schema.AnalysisResult{}.Fields()
	_ = analysisresultFields
	// analysisresultDescStatus is the schema descriptor for status field.
	analysisresultDescStatus := analysisresultFields[1].Descriptor()
	// analysisresult.DefaultStatus holds the default value on creation for the status field.
	analysisresult.DefaultStatus = analysisresultDescStatus.Default.(string)
	// analysisresultDescCreatedAt is the schema descriptor for created_at field.
	analysisresultDescCreatedAt := analysisresultFields[5].Descriptor()
	// analysisresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisresult.DefaultCreatedAt = analysisresultDescCreatedAt.Default.(func() time.Time)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[12].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	simulationFields := schema.Simulation{}.Fields()
	_ = simulationFields
	// simulationDescCreatedAt is the schema descriptor for created_at field.
	simulationDescCreatedAt := simulationFields[10].Descriptor()
	// simulation.DefaultCreatedAt holds the default value on creation for the created_at field.
	simulation.DefaultCreatedAt = simulationDescCreatedAt.Default.(func() time.Time)
}
