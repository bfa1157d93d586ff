// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisResult is the predicate function for analysisresult builders.
type AnalysisResult func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Simulation is the predicate function for simulation builders.
type Simulation func(*sql.Selector)
