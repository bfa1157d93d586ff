// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synthlab-ai/persim/ent/simulation"
	"github.com/synthlab-ai/persim/pkg/models"
)

// SimulationCreate is the builder for creating a Simulation entity.
type SimulationCreate struct {
	config
	mutation *SimulationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SimulationCreate) SetUserID(v string) *SimulationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SimulationCreate) SetNillableUserID(v *string) *SimulationCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SimulationCreate) SetStatus(v simulation.Status) *SimulationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SimulationCreate) SetNillableStatus(v *simulation.Status) *SimulationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBusinessContext sets the "business_context" field.
func (_c *SimulationCreate) SetBusinessContext(v models.BusinessBrief) *SimulationCreate {
	_c.mutation.SetBusinessContext(v)
	return _c
}

// SetQuestionsData sets the "questions_data" field.
func (_c *SimulationCreate) SetQuestionsData(v *models.Questionnaire) *SimulationCreate {
	_c.mutation.SetQuestionsData(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *SimulationCreate) SetConfig(v models.SimulationConfig) *SimulationCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetPersonas sets the "personas" field.
func (_c *SimulationCreate) SetPersonas(v []models.Persona) *SimulationCreate {
	_c.mutation.SetPersonas(v)
	return _c
}

// SetInterviews sets the "interviews" field.
func (_c *SimulationCreate) SetInterviews(v []models.Interview) *SimulationCreate {
	_c.mutation.SetInterviews(v)
	return _c
}

// SetInsights sets the "insights" field.
func (_c *SimulationCreate) SetInsights(v *models.SimulationInsights) *SimulationCreate {
	_c.mutation.SetInsights(v)
	return _c
}

// SetFormattedData sets the "formatted_data" field.
func (_c *SimulationCreate) SetFormattedData(v map[string]interface{}) *SimulationCreate {
	_c.mutation.SetFormattedData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SimulationCreate) SetCreatedAt(v time.Time) *SimulationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SimulationCreate) SetNillableCreatedAt(v *time.Time) *SimulationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SimulationCreate) SetCompletedAt(v time.Time) *SimulationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SimulationCreate) SetNillableCompletedAt(v *time.Time) *SimulationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SimulationCreate) SetErrorMessage(v string) *SimulationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SimulationCreate) SetNillableErrorMessage(v *string) *SimulationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SimulationCreate) SetID(v string) *SimulationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SimulationMutation object of the builder.
func (_c *SimulationCreate) Mutation() *SimulationMutation {
	return _c.mutation
}

// Save creates the Simulation in the database.
func (_c *SimulationCreate) Save(ctx context.Context) (*Simulation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SimulationCreate) SaveX(ctx context.Context) *Simulation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SimulationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SimulationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SimulationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := simulation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := simulation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SimulationCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Simulation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := simulation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Simulation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessContext(); !ok {
		return &ValidationError{Name: "business_context", err: errors.New(`ent: missing required field "Simulation.business_context"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Simulation.config"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Simulation.created_at"`)}
	}
	return nil
}

func (_c *SimulationCreate) sqlSave(ctx context.Context) (*Simulation, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Simulation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SimulationCreate) createSpec() (*Simulation, *sqlgraph.CreateSpec) {
	var (
		_node = &Simulation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(simulation.Table, sqlgraph.NewFieldSpec(simulation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(simulation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(simulation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BusinessContext(); ok {
		_spec.SetField(simulation.FieldBusinessContext, field.TypeJSON, value)
		_node.BusinessContext = value
	}
	if value, ok := _c.mutation.QuestionsData(); ok {
		_spec.SetField(simulation.FieldQuestionsData, field.TypeJSON, value)
		_node.QuestionsData = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(simulation.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Personas(); ok {
		_spec.SetField(simulation.FieldPersonas, field.TypeJSON, value)
		_node.Personas = value
	}
	if value, ok := _c.mutation.Interviews(); ok {
		_spec.SetField(simulation.FieldInterviews, field.TypeJSON, value)
		_node.Interviews = value
	}
	if value, ok := _c.mutation.Insights(); ok {
		_spec.SetField(simulation.FieldInsights, field.TypeJSON, value)
		_node.Insights = value
	}
	if value, ok := _c.mutation.FormattedData(); ok {
		_spec.SetField(simulation.FieldFormattedData, field.TypeJSON, value)
		_node.FormattedData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(simulation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(simulation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(simulation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// SimulationCreateBulk is the builder for creating many Simulation entities in bulk.
type SimulationCreateBulk struct {
	config
	err      error
	builders []*SimulationCreate
}

// Save creates the Simulation entities in the database.
func (_c *SimulationCreateBulk) Save(ctx context.Context) ([]*Simulation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Simulation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SimulationMutation)
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
func (_c *SimulationCreateBulk) SaveX(ctx context.Context) []*Simulation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SimulationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SimulationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
