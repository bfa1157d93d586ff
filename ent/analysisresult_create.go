// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/pkg/models"
)

// AnalysisResultCreate is the builder for creating a AnalysisResult entity.
type AnalysisResultCreate struct {
	config
	mutation *AnalysisResultMutation
	hooks    []Hook
}

// SetSimulationID sets the "simulation_id" field.
func (_c *AnalysisResultCreate) SetSimulationID(v string) *AnalysisResultCreate {
	_c.mutation.SetSimulationID(v)
	return _c
}

// SetNillableSimulationID sets the "simulation_id" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableSimulationID(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetSimulationID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisResultCreate) SetStatus(v string) *AnalysisResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableStatus(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *AnalysisResultCreate) SetResults(v *models.DetailedAnalysis) *AnalysisResultCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetLlmProvider sets the "llm_provider" field.
func (_c *AnalysisResultCreate) SetLlmProvider(v string) *AnalysisResultCreate {
	_c.mutation.SetLlmProvider(v)
	return _c
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableLlmProvider(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetLlmProvider(*v)
	}
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *AnalysisResultCreate) SetLlmModel(v string) *AnalysisResultCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableLlmModel(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetLlmModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisResultCreate) SetCreatedAt(v time.Time) *AnalysisResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableCreatedAt(v *time.Time) *AnalysisResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisResultCreate) SetErrorMessage(v string) *AnalysisResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableErrorMessage(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_c *AnalysisResultCreate) Mutation() *AnalysisResultMutation {
	return _c.mutation
}

// Save creates the AnalysisResult in the database.
func (_c *AnalysisResultCreate) Save(ctx context.Context) (*AnalysisResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisResultCreate) SaveX(ctx context.Context) *AnalysisResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisResultCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisResultCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisResult.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisResult.created_at"`)}
	}
	return nil
}

func (_c *AnalysisResultCreate) sqlSave(ctx context.Context) (*AnalysisResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisResultCreate) createSpec() (*AnalysisResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisresult.Table, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SimulationID(); ok {
		_spec.SetField(analysisresult.FieldSimulationID, field.TypeString, value)
		_node.SimulationID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(analysisresult.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.LlmProvider(); ok {
		_spec.SetField(analysisresult.FieldLlmProvider, field.TypeString, value)
		_node.LlmProvider = value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(analysisresult.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// AnalysisResultCreateBulk is the builder for creating many AnalysisResult entities in bulk.
type AnalysisResultCreateBulk struct {
	config
	err      error
	builders []*AnalysisResultCreate
}

// Save creates the AnalysisResult entities in the database.
func (_c *AnalysisResultCreateBulk) Save(ctx context.Context) ([]*AnalysisResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisResultCreateBulk) SaveX(ctx context.Context) []*AnalysisResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
