// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/synthlab-ai/persim/ent/predicate"
	"github.com/synthlab-ai/persim/ent/simulation"
	"github.com/synthlab-ai/persim/pkg/models"
)

// SimulationUpdate is the builder for updating Simulation entities.
type SimulationUpdate struct {
	config
	hooks    []Hook
	mutation *SimulationMutation
}

// Where appends a list predicates to the SimulationUpdate builder.
func (_u *SimulationUpdate) Where(ps ...predicate.Simulation) *SimulationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SimulationUpdate) SetUserID(v string) *SimulationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SimulationUpdate) SetNillableUserID(v *string) *SimulationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SimulationUpdate) ClearUserID() *SimulationUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SimulationUpdate) SetStatus(v simulation.Status) *SimulationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SimulationUpdate) SetNillableStatus(v *simulation.Status) *SimulationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBusinessContext sets the "business_context" field.
func (_u *SimulationUpdate) SetBusinessContext(v models.BusinessBrief) *SimulationUpdate {
	_u.mutation.SetBusinessContext(v)
	return _u
}

// SetNillableBusinessContext sets the "business_context" field if the given value is not nil.
func (_u *SimulationUpdate) SetNillableBusinessContext(v *models.BusinessBrief) *SimulationUpdate {
	if v != nil {
		_u.SetBusinessContext(*v)
	}
	return _u
}

// SetQuestionsData sets the "questions_data" field.
func (_u *SimulationUpdate) SetQuestionsData(v *models.Questionnaire) *SimulationUpdate {
	_u.mutation.SetQuestionsData(v)
	return _u
}

// ClearQuestionsData clears the value of the "questions_data" field.
func (_u *SimulationUpdate) ClearQuestionsData() *SimulationUpdate {
	_u.mutation.ClearQuestionsData()
	return _u
}

// SetConfig sets the "config" field.
func (_u *SimulationUpdate) SetConfig(v models.SimulationConfig) *SimulationUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *SimulationUpdate) SetNillableConfig(v *models.SimulationConfig) *SimulationUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetPersonas sets the "personas" field.
func (_u *SimulationUpdate) SetPersonas(v []models.Persona) *SimulationUpdate {
	_u.mutation.SetPersonas(v)
	return _u
}

// AppendPersonas appends value to the "personas" field.
func (_u *SimulationUpdate) AppendPersonas(v []models.Persona) *SimulationUpdate {
	_u.mutation.AppendPersonas(v)
	return _u
}

// ClearPersonas clears the value of the "personas" field.
func (_u *SimulationUpdate) ClearPersonas() *SimulationUpdate {
	_u.mutation.ClearPersonas()
	return _u
}

// SetInterviews sets the "interviews" field.
func (_u *SimulationUpdate) SetInterviews(v []models.Interview) *SimulationUpdate {
	_u.mutation.SetInterviews(v)
	return _u
}

// AppendInterviews appends value to the "interviews" field.
func (_u *SimulationUpdate) AppendInterviews(v []models.Interview) *SimulationUpdate {
	_u.mutation.AppendInterviews(v)
	return _u
}

// ClearInterviews clears the value of the "interviews" field.
func (_u *SimulationUpdate) ClearInterviews() *SimulationUpdate {
	_u.mutation.ClearInterviews()
	return _u
}

// SetInsights sets the "insights" field.
func (_u *SimulationUpdate) SetInsights(v *models.SimulationInsights) *SimulationUpdate {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *SimulationUpdate) ClearInsights() *SimulationUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// SetFormattedData sets the "formatted_data" field.
func (_u *SimulationUpdate) SetFormattedData(v map[string]interface{}) *SimulationUpdate {
	_u.mutation.SetFormattedData(v)
	return _u
}

// ClearFormattedData clears the value of the "formatted_data" field.
func (_u *SimulationUpdate) ClearFormattedData() *SimulationUpdate {
	_u.mutation.ClearFormattedData()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SimulationUpdate) SetCompletedAt(v time.Time) *SimulationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SimulationUpdate) SetNillableCompletedAt(v *time.Time) *SimulationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SimulationUpdate) ClearCompletedAt() *SimulationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SimulationUpdate) SetErrorMessage(v string) *SimulationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SimulationUpdate) SetNillableErrorMessage(v *string) *SimulationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SimulationUpdate) ClearErrorMessage() *SimulationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SimulationMutation object of the builder.
func (_u *SimulationUpdate) Mutation() *SimulationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SimulationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SimulationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SimulationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SimulationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SimulationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := simulation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Simulation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SimulationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(simulation.Table, simulation.Columns, sqlgraph.NewFieldSpec(simulation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(simulation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(simulation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(simulation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessContext(); ok {
		_spec.SetField(simulation.FieldBusinessContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionsData(); ok {
		_spec.SetField(simulation.FieldQuestionsData, field.TypeJSON, value)
	}
	if _u.mutation.QuestionsDataCleared() {
		_spec.ClearField(simulation.FieldQuestionsData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(simulation.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Personas(); ok {
		_spec.SetField(simulation.FieldPersonas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, simulation.FieldPersonas, value)
		})
	}
	if _u.mutation.PersonasCleared() {
		_spec.ClearField(simulation.FieldPersonas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interviews(); ok {
		_spec.SetField(simulation.FieldInterviews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterviews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, simulation.FieldInterviews, value)
		})
	}
	if _u.mutation.InterviewsCleared() {
		_spec.ClearField(simulation.FieldInterviews, field.TypeJSON)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(simulation.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(simulation.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.FormattedData(); ok {
		_spec.SetField(simulation.FieldFormattedData, field.TypeJSON, value)
	}
	if _u.mutation.FormattedDataCleared() {
		_spec.ClearField(simulation.FieldFormattedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(simulation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(simulation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(simulation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(simulation.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{simulation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SimulationUpdateOne is the builder for updating a single Simulation entity.
type SimulationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SimulationMutation
}

// SetUserID sets the "user_id" field.
func (_u *SimulationUpdateOne) SetUserID(v string) *SimulationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SimulationUpdateOne) SetNillableUserID(v *string) *SimulationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SimulationUpdateOne) ClearUserID() *SimulationUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SimulationUpdateOne) SetStatus(v simulation.Status) *SimulationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SimulationUpdateOne) SetNillableStatus(v *simulation.Status) *SimulationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBusinessContext sets the "business_context" field.
func (_u *SimulationUpdateOne) SetBusinessContext(v models.BusinessBrief) *SimulationUpdateOne {
	_u.mutation.SetBusinessContext(v)
	return _u
}

// SetNillableBusinessContext sets the "business_context" field if the given value is not nil.
func (_u *SimulationUpdateOne) SetNillableBusinessContext(v *models.BusinessBrief) *SimulationUpdateOne {
	if v != nil {
		_u.SetBusinessContext(*v)
	}
	return _u
}

// SetQuestionsData sets the "questions_data" field.
func (_u *SimulationUpdateOne) SetQuestionsData(v *models.Questionnaire) *SimulationUpdateOne {
	_u.mutation.SetQuestionsData(v)
	return _u
}

// ClearQuestionsData clears the value of the "questions_data" field.
func (_u *SimulationUpdateOne) ClearQuestionsData() *SimulationUpdateOne {
	_u.mutation.ClearQuestionsData()
	return _u
}

// SetConfig sets the "config" field.
func (_u *SimulationUpdateOne) SetConfig(v models.SimulationConfig) *SimulationUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *SimulationUpdateOne) SetNillableConfig(v *models.SimulationConfig) *SimulationUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetPersonas sets the "personas" field.
func (_u *SimulationUpdateOne) SetPersonas(v []models.Persona) *SimulationUpdateOne {
	_u.mutation.SetPersonas(v)
	return _u
}

// AppendPersonas appends value to the "personas" field.
func (_u *SimulationUpdateOne) AppendPersonas(v []models.Persona) *SimulationUpdateOne {
	_u.mutation.AppendPersonas(v)
	return _u
}

// ClearPersonas clears the value of the "personas" field.
func (_u *SimulationUpdateOne) ClearPersonas() *SimulationUpdateOne {
	_u.mutation.ClearPersonas()
	return _u
}

// SetInterviews sets the "interviews" field.
func (_u *SimulationUpdateOne) SetInterviews(v []models.Interview) *SimulationUpdateOne {
	_u.mutation.SetInterviews(v)
	return _u
}

// AppendInterviews appends value to the "interviews" field.
func (_u *SimulationUpdateOne) AppendInterviews(v []models.Interview) *SimulationUpdateOne {
	_u.mutation.AppendInterviews(v)
	return _u
}

// ClearInterviews clears the value of the "interviews" field.
func (_u *SimulationUpdateOne) ClearInterviews() *SimulationUpdateOne {
	_u.mutation.ClearInterviews()
	return _u
}

// SetInsights sets the "insights" field.
func (_u *SimulationUpdateOne) SetInsights(v *models.SimulationInsights) *SimulationUpdateOne {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *SimulationUpdateOne) ClearInsights() *SimulationUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// SetFormattedData sets the "formatted_data" field.
func (_u *SimulationUpdateOne) SetFormattedData(v map[string]interface{}) *SimulationUpdateOne {
	_u.mutation.SetFormattedData(v)
	return _u
}

// ClearFormattedData clears the value of the "formatted_data" field.
func (_u *SimulationUpdateOne) ClearFormattedData() *SimulationUpdateOne {
	_u.mutation.ClearFormattedData()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SimulationUpdateOne) SetCompletedAt(v time.Time) *SimulationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SimulationUpdateOne) SetNillableCompletedAt(v *time.Time) *SimulationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SimulationUpdateOne) ClearCompletedAt() *SimulationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SimulationUpdateOne) SetErrorMessage(v string) *SimulationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SimulationUpdateOne) SetNillableErrorMessage(v *string) *SimulationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SimulationUpdateOne) ClearErrorMessage() *SimulationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SimulationMutation object of the builder.
func (_u *SimulationUpdateOne) Mutation() *SimulationMutation {
	return _u.mutation
}

// Where appends a list predicates to the SimulationUpdate builder.
func (_u *SimulationUpdateOne) Where(ps ...predicate.Simulation) *SimulationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SimulationUpdateOne) Select(field string, fields ...string) *SimulationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Simulation entity.
func (_u *SimulationUpdateOne) Save(ctx context.Context) (*Simulation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SimulationUpdateOne) SaveX(ctx context.Context) *Simulation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SimulationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SimulationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SimulationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := simulation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Simulation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SimulationUpdateOne) sqlSave(ctx context.Context) (_node *Simulation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(simulation.Table, simulation.Columns, sqlgraph.NewFieldSpec(simulation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Simulation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, simulation.FieldID)
		for _, f := range fields {
			if !simulation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != simulation.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(simulation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(simulation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(simulation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessContext(); ok {
		_spec.SetField(simulation.FieldBusinessContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionsData(); ok {
		_spec.SetField(simulation.FieldQuestionsData, field.TypeJSON, value)
	}
	if _u.mutation.QuestionsDataCleared() {
		_spec.ClearField(simulation.FieldQuestionsData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(simulation.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Personas(); ok {
		_spec.SetField(simulation.FieldPersonas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, simulation.FieldPersonas, value)
		})
	}
	if _u.mutation.PersonasCleared() {
		_spec.ClearField(simulation.FieldPersonas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interviews(); ok {
		_spec.SetField(simulation.FieldInterviews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterviews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, simulation.FieldInterviews, value)
		})
	}
	if _u.mutation.InterviewsCleared() {
		_spec.ClearField(simulation.FieldInterviews, field.TypeJSON)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(simulation.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(simulation.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.FormattedData(); ok {
		_spec.SetField(simulation.FieldFormattedData, field.TypeJSON, value)
	}
	if _u.mutation.FormattedDataCleared() {
		_spec.ClearField(simulation.FieldFormattedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(simulation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(simulation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(simulation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(simulation.FieldErrorMessage, field.TypeString)
	}
	_node = &Simulation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{simulation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
