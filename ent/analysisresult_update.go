// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/ent/predicate"
	"github.com/synthlab-ai/persim/pkg/models"
)

// AnalysisResultUpdate is the builder for updating AnalysisResult entities.
type AnalysisResultUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisResultMutation
}

// Where appends a list predicates to the AnalysisResultUpdate builder.
func (_u *AnalysisResultUpdate) Where(ps ...predicate.AnalysisResult) *AnalysisResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSimulationID sets the "simulation_id" field.
func (_u *AnalysisResultUpdate) SetSimulationID(v string) *AnalysisResultUpdate {
	_u.mutation.SetSimulationID(v)
	return _u
}

// SetNillableSimulationID sets the "simulation_id" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableSimulationID(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetSimulationID(*v)
	}
	return _u
}

// ClearSimulationID clears the value of the "simulation_id" field.
func (_u *AnalysisResultUpdate) ClearSimulationID() *AnalysisResultUpdate {
	_u.mutation.ClearSimulationID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisResultUpdate) SetStatus(v string) *AnalysisResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableStatus(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *AnalysisResultUpdate) SetResults(v *models.DetailedAnalysis) *AnalysisResultUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *AnalysisResultUpdate) ClearResults() *AnalysisResultUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *AnalysisResultUpdate) SetLlmProvider(v string) *AnalysisResultUpdate {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableLlmProvider(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *AnalysisResultUpdate) ClearLlmProvider() *AnalysisResultUpdate {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *AnalysisResultUpdate) SetLlmModel(v string) *AnalysisResultUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableLlmModel(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *AnalysisResultUpdate) ClearLlmModel() *AnalysisResultUpdate {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisResultUpdate) SetErrorMessage(v string) *AnalysisResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableErrorMessage(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisResultUpdate) ClearErrorMessage() *AnalysisResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_u *AnalysisResultUpdate) Mutation() *AnalysisResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisresult.Table, analysisresult.Columns, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SimulationID(); ok {
		_spec.SetField(analysisresult.FieldSimulationID, field.TypeString, value)
	}
	if _u.mutation.SimulationIDCleared() {
		_spec.ClearField(analysisresult.FieldSimulationID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(analysisresult.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(analysisresult.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(analysisresult.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(analysisresult.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(analysisresult.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(analysisresult.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisresult.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisResultUpdateOne is the builder for updating a single AnalysisResult entity.
type AnalysisResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisResultMutation
}

// SetSimulationID sets the "simulation_id" field.
func (_u *AnalysisResultUpdateOne) SetSimulationID(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetSimulationID(v)
	return _u
}

// SetNillableSimulationID sets the "simulation_id" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableSimulationID(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetSimulationID(*v)
	}
	return _u
}

// ClearSimulationID clears the value of the "simulation_id" field.
func (_u *AnalysisResultUpdateOne) ClearSimulationID() *AnalysisResultUpdateOne {
	_u.mutation.ClearSimulationID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisResultUpdateOne) SetStatus(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableStatus(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *AnalysisResultUpdateOne) SetResults(v *models.DetailedAnalysis) *AnalysisResultUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *AnalysisResultUpdateOne) ClearResults() *AnalysisResultUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *AnalysisResultUpdateOne) SetLlmProvider(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableLlmProvider(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *AnalysisResultUpdateOne) ClearLlmProvider() *AnalysisResultUpdateOne {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *AnalysisResultUpdateOne) SetLlmModel(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableLlmModel(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *AnalysisResultUpdateOne) ClearLlmModel() *AnalysisResultUpdateOne {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisResultUpdateOne) SetErrorMessage(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableErrorMessage(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisResultUpdateOne) ClearErrorMessage() *AnalysisResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_u *AnalysisResultUpdateOne) Mutation() *AnalysisResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisResultUpdate builder.
func (_u *AnalysisResultUpdateOne) Where(ps ...predicate.AnalysisResult) *AnalysisResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisResultUpdateOne) Select(field string, fields ...string) *AnalysisResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisResult entity.
func (_u *AnalysisResultUpdateOne) Save(ctx context.Context) (*AnalysisResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisResultUpdateOne) SaveX(ctx context.Context) *AnalysisResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisResultUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisresult.Table, analysisresult.Columns, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisresult.FieldID)
		for _, f := range fields {
			if !analysisresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SimulationID(); ok {
		_spec.SetField(analysisresult.FieldSimulationID, field.TypeString, value)
	}
	if _u.mutation.SimulationIDCleared() {
		_spec.ClearField(analysisresult.FieldSimulationID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(analysisresult.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(analysisresult.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(analysisresult.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(analysisresult.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(analysisresult.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(analysisresult.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisresult.FieldErrorMessage, field.TypeString)
	}
	_node = &AnalysisResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
