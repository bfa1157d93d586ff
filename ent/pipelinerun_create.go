// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/pkg/models"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PipelineRunCreate) SetUserID(v string) *PipelineRunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableUserID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBusinessContext sets the "business_context" field.
func (_c *PipelineRunCreate) SetBusinessContext(v models.BusinessBrief) *PipelineRunCreate {
	_c.mutation.SetBusinessContext(v)
	return _c
}

// SetExecutionTrace sets the "execution_trace" field.
func (_c *PipelineRunCreate) SetExecutionTrace(v []models.StageTrace) *PipelineRunCreate {
	_c.mutation.SetExecutionTrace(v)
	return _c
}

// SetDataset sets the "dataset" field.
func (_c *PipelineRunCreate) SetDataset(v *models.Dataset) *PipelineRunCreate {
	_c.mutation.SetDataset(v)
	return _c
}

// SetQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field.
func (_c *PipelineRunCreate) SetQuestionnaireStakeholderCount(v int) *PipelineRunCreate {
	_c.mutation.SetQuestionnaireStakeholderCount(v)
	return _c
}

// SetNillableQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableQuestionnaireStakeholderCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetQuestionnaireStakeholderCount(*v)
	}
	return _c
}

// SetSimulationID sets the "simulation_id" field.
func (_c *PipelineRunCreate) SetSimulationID(v string) *PipelineRunCreate {
	_c.mutation.SetSimulationID(v)
	return _c
}

// SetNillableSimulationID sets the "simulation_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableSimulationID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetSimulationID(*v)
	}
	return _c
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *PipelineRunCreate) SetAnalysisID(v int) *PipelineRunCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableAnalysisID(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetAnalysisID(*v)
	}
	return _c
}

// SetPersonaCount sets the "persona_count" field.
func (_c *PipelineRunCreate) SetPersonaCount(v int) *PipelineRunCreate {
	_c.mutation.SetPersonaCount(v)
	return _c
}

// SetNillablePersonaCount sets the "persona_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillablePersonaCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetPersonaCount(*v)
	}
	return _c
}

// SetInterviewCount sets the "interview_count" field.
func (_c *PipelineRunCreate) SetInterviewCount(v int) *PipelineRunCreate {
	_c.mutation.SetInterviewCount(v)
	return _c
}

// SetNillableInterviewCount sets the "interview_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableInterviewCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetInterviewCount(*v)
	}
	return _c
}

// SetTotalDurationSeconds sets the "total_duration_seconds" field.
func (_c *PipelineRunCreate) SetTotalDurationSeconds(v float64) *PipelineRunCreate {
	_c.mutation.SetTotalDurationSeconds(v)
	return _c
}

// SetNillableTotalDurationSeconds sets the "total_duration_seconds" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTotalDurationSeconds(v *float64) *PipelineRunCreate {
	if v != nil {
		_c.SetTotalDurationSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *PipelineRunCreate) SetDurationSeconds(v float64) *PipelineRunCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableDurationSeconds(v *float64) *PipelineRunCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineRunCreate) SetErrorMessage(v string) *PipelineRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorMessage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessContext(); !ok {
		return &ValidationError{Name: "business_context", err: errors.New(`ent: missing required field "PipelineRun.business_context"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pipelinerun.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BusinessContext(); ok {
		_spec.SetField(pipelinerun.FieldBusinessContext, field.TypeJSON, value)
		_node.BusinessContext = value
	}
	if value, ok := _c.mutation.ExecutionTrace(); ok {
		_spec.SetField(pipelinerun.FieldExecutionTrace, field.TypeJSON, value)
		_node.ExecutionTrace = value
	}
	if value, ok := _c.mutation.Dataset(); ok {
		_spec.SetField(pipelinerun.FieldDataset, field.TypeJSON, value)
		_node.Dataset = value
	}
	if value, ok := _c.mutation.QuestionnaireStakeholderCount(); ok {
		_spec.SetField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt, value)
		_node.QuestionnaireStakeholderCount = value
	}
	if value, ok := _c.mutation.SimulationID(); ok {
		_spec.SetField(pipelinerun.FieldSimulationID, field.TypeString, value)
		_node.SimulationID = &value
	}
	if value, ok := _c.mutation.AnalysisID(); ok {
		_spec.SetField(pipelinerun.FieldAnalysisID, field.TypeInt, value)
		_node.AnalysisID = &value
	}
	if value, ok := _c.mutation.PersonaCount(); ok {
		_spec.SetField(pipelinerun.FieldPersonaCount, field.TypeInt, value)
		_node.PersonaCount = value
	}
	if value, ok := _c.mutation.InterviewCount(); ok {
		_spec.SetField(pipelinerun.FieldInterviewCount, field.TypeInt, value)
		_node.InterviewCount = value
	}
	if value, ok := _c.mutation.TotalDurationSeconds(); ok {
		_spec.SetField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64, value)
		_node.TotalDurationSeconds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(pipelinerun.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
