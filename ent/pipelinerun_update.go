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
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/ent/predicate"
	"github.com/synthlab-ai/persim/pkg/models"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineRunUpdate) SetUserID(v string) *PipelineRunUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableUserID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PipelineRunUpdate) ClearUserID() *PipelineRunUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBusinessContext sets the "business_context" field.
func (_u *PipelineRunUpdate) SetBusinessContext(v models.BusinessBrief) *PipelineRunUpdate {
	_u.mutation.SetBusinessContext(v)
	return _u
}

// SetNillableBusinessContext sets the "business_context" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableBusinessContext(v *models.BusinessBrief) *PipelineRunUpdate {
	if v != nil {
		_u.SetBusinessContext(*v)
	}
	return _u
}

// SetExecutionTrace sets the "execution_trace" field.
func (_u *PipelineRunUpdate) SetExecutionTrace(v []models.StageTrace) *PipelineRunUpdate {
	_u.mutation.SetExecutionTrace(v)
	return _u
}

// AppendExecutionTrace appends value to the "execution_trace" field.
func (_u *PipelineRunUpdate) AppendExecutionTrace(v []models.StageTrace) *PipelineRunUpdate {
	_u.mutation.AppendExecutionTrace(v)
	return _u
}

// ClearExecutionTrace clears the value of the "execution_trace" field.
func (_u *PipelineRunUpdate) ClearExecutionTrace() *PipelineRunUpdate {
	_u.mutation.ClearExecutionTrace()
	return _u
}

// SetDataset sets the "dataset" field.
func (_u *PipelineRunUpdate) SetDataset(v *models.Dataset) *PipelineRunUpdate {
	_u.mutation.SetDataset(v)
	return _u
}

// ClearDataset clears the value of the "dataset" field.
func (_u *PipelineRunUpdate) ClearDataset() *PipelineRunUpdate {
	_u.mutation.ClearDataset()
	return _u
}

// SetQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field.
func (_u *PipelineRunUpdate) SetQuestionnaireStakeholderCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetQuestionnaireStakeholderCount()
	_u.mutation.SetQuestionnaireStakeholderCount(v)
	return _u
}

// SetNillableQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableQuestionnaireStakeholderCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetQuestionnaireStakeholderCount(*v)
	}
	return _u
}

// AddQuestionnaireStakeholderCount adds value to the "questionnaire_stakeholder_count" field.
func (_u *PipelineRunUpdate) AddQuestionnaireStakeholderCount(v int) *PipelineRunUpdate {
	_u.mutation.AddQuestionnaireStakeholderCount(v)
	return _u
}

// ClearQuestionnaireStakeholderCount clears the value of the "questionnaire_stakeholder_count" field.
func (_u *PipelineRunUpdate) ClearQuestionnaireStakeholderCount() *PipelineRunUpdate {
	_u.mutation.ClearQuestionnaireStakeholderCount()
	return _u
}

// SetSimulationID sets the "simulation_id" field.
func (_u *PipelineRunUpdate) SetSimulationID(v string) *PipelineRunUpdate {
	_u.mutation.SetSimulationID(v)
	return _u
}

// SetNillableSimulationID sets the "simulation_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableSimulationID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetSimulationID(*v)
	}
	return _u
}

// ClearSimulationID clears the value of the "simulation_id" field.
func (_u *PipelineRunUpdate) ClearSimulationID() *PipelineRunUpdate {
	_u.mutation.ClearSimulationID()
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *PipelineRunUpdate) SetAnalysisID(v int) *PipelineRunUpdate {
	_u.mutation.ResetAnalysisID()
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableAnalysisID(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// AddAnalysisID adds value to the "analysis_id" field.
func (_u *PipelineRunUpdate) AddAnalysisID(v int) *PipelineRunUpdate {
	_u.mutation.AddAnalysisID(v)
	return _u
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (_u *PipelineRunUpdate) ClearAnalysisID() *PipelineRunUpdate {
	_u.mutation.ClearAnalysisID()
	return _u
}

// SetPersonaCount sets the "persona_count" field.
func (_u *PipelineRunUpdate) SetPersonaCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetPersonaCount()
	_u.mutation.SetPersonaCount(v)
	return _u
}

// SetNillablePersonaCount sets the "persona_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillablePersonaCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetPersonaCount(*v)
	}
	return _u
}

// AddPersonaCount adds value to the "persona_count" field.
func (_u *PipelineRunUpdate) AddPersonaCount(v int) *PipelineRunUpdate {
	_u.mutation.AddPersonaCount(v)
	return _u
}

// ClearPersonaCount clears the value of the "persona_count" field.
func (_u *PipelineRunUpdate) ClearPersonaCount() *PipelineRunUpdate {
	_u.mutation.ClearPersonaCount()
	return _u
}

// SetInterviewCount sets the "interview_count" field.
func (_u *PipelineRunUpdate) SetInterviewCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetInterviewCount()
	_u.mutation.SetInterviewCount(v)
	return _u
}

// SetNillableInterviewCount sets the "interview_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableInterviewCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetInterviewCount(*v)
	}
	return _u
}

// AddInterviewCount adds value to the "interview_count" field.
func (_u *PipelineRunUpdate) AddInterviewCount(v int) *PipelineRunUpdate {
	_u.mutation.AddInterviewCount(v)
	return _u
}

// ClearInterviewCount clears the value of the "interview_count" field.
func (_u *PipelineRunUpdate) ClearInterviewCount() *PipelineRunUpdate {
	_u.mutation.ClearInterviewCount()
	return _u
}

// SetTotalDurationSeconds sets the "total_duration_seconds" field.
func (_u *PipelineRunUpdate) SetTotalDurationSeconds(v float64) *PipelineRunUpdate {
	_u.mutation.ResetTotalDurationSeconds()
	_u.mutation.SetTotalDurationSeconds(v)
	return _u
}

// SetNillableTotalDurationSeconds sets the "total_duration_seconds" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTotalDurationSeconds(v *float64) *PipelineRunUpdate {
	if v != nil {
		_u.SetTotalDurationSeconds(*v)
	}
	return _u
}

// AddTotalDurationSeconds adds value to the "total_duration_seconds" field.
func (_u *PipelineRunUpdate) AddTotalDurationSeconds(v float64) *PipelineRunUpdate {
	_u.mutation.AddTotalDurationSeconds(v)
	return _u
}

// ClearTotalDurationSeconds clears the value of the "total_duration_seconds" field.
func (_u *PipelineRunUpdate) ClearTotalDurationSeconds() *PipelineRunUpdate {
	_u.mutation.ClearTotalDurationSeconds()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *PipelineRunUpdate) SetDurationSeconds(v float64) *PipelineRunUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableDurationSeconds(v *float64) *PipelineRunUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *PipelineRunUpdate) AddDurationSeconds(v float64) *PipelineRunUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *PipelineRunUpdate) ClearDurationSeconds() *PipelineRunUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdate) SetErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdate) ClearErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pipelinerun.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(pipelinerun.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessContext(); ok {
		_spec.SetField(pipelinerun.FieldBusinessContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExecutionTrace(); ok {
		_spec.SetField(pipelinerun.FieldExecutionTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldExecutionTrace, value)
		})
	}
	if _u.mutation.ExecutionTraceCleared() {
		_spec.ClearField(pipelinerun.FieldExecutionTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dataset(); ok {
		_spec.SetField(pipelinerun.FieldDataset, field.TypeJSON, value)
	}
	if _u.mutation.DatasetCleared() {
		_spec.ClearField(pipelinerun.FieldDataset, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionnaireStakeholderCount(); ok {
		_spec.SetField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionnaireStakeholderCount(); ok {
		_spec.AddField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt, value)
	}
	if _u.mutation.QuestionnaireStakeholderCountCleared() {
		_spec.ClearField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt)
	}
	if value, ok := _u.mutation.SimulationID(); ok {
		_spec.SetField(pipelinerun.FieldSimulationID, field.TypeString, value)
	}
	if _u.mutation.SimulationIDCleared() {
		_spec.ClearField(pipelinerun.FieldSimulationID, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(pipelinerun.FieldAnalysisID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnalysisID(); ok {
		_spec.AddField(pipelinerun.FieldAnalysisID, field.TypeInt, value)
	}
	if _u.mutation.AnalysisIDCleared() {
		_spec.ClearField(pipelinerun.FieldAnalysisID, field.TypeInt)
	}
	if value, ok := _u.mutation.PersonaCount(); ok {
		_spec.SetField(pipelinerun.FieldPersonaCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPersonaCount(); ok {
		_spec.AddField(pipelinerun.FieldPersonaCount, field.TypeInt, value)
	}
	if _u.mutation.PersonaCountCleared() {
		_spec.ClearField(pipelinerun.FieldPersonaCount, field.TypeInt)
	}
	if value, ok := _u.mutation.InterviewCount(); ok {
		_spec.SetField(pipelinerun.FieldInterviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterviewCount(); ok {
		_spec.AddField(pipelinerun.FieldInterviewCount, field.TypeInt, value)
	}
	if _u.mutation.InterviewCountCleared() {
		_spec.ClearField(pipelinerun.FieldInterviewCount, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalDurationSeconds(); ok {
		_spec.SetField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationSeconds(); ok {
		_spec.AddField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDurationSecondsCleared() {
		_spec.ClearField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(pipelinerun.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(pipelinerun.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(pipelinerun.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetUserID sets the "user_id" field.
func (_u *PipelineRunUpdateOne) SetUserID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableUserID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PipelineRunUpdateOne) ClearUserID() *PipelineRunUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBusinessContext sets the "business_context" field.
func (_u *PipelineRunUpdateOne) SetBusinessContext(v models.BusinessBrief) *PipelineRunUpdateOne {
	_u.mutation.SetBusinessContext(v)
	return _u
}

// SetNillableBusinessContext sets the "business_context" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableBusinessContext(v *models.BusinessBrief) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetBusinessContext(*v)
	}
	return _u
}

// SetExecutionTrace sets the "execution_trace" field.
func (_u *PipelineRunUpdateOne) SetExecutionTrace(v []models.StageTrace) *PipelineRunUpdateOne {
	_u.mutation.SetExecutionTrace(v)
	return _u
}

// AppendExecutionTrace appends value to the "execution_trace" field.
func (_u *PipelineRunUpdateOne) AppendExecutionTrace(v []models.StageTrace) *PipelineRunUpdateOne {
	_u.mutation.AppendExecutionTrace(v)
	return _u
}

// ClearExecutionTrace clears the value of the "execution_trace" field.
func (_u *PipelineRunUpdateOne) ClearExecutionTrace() *PipelineRunUpdateOne {
	_u.mutation.ClearExecutionTrace()
	return _u
}

// SetDataset sets the "dataset" field.
func (_u *PipelineRunUpdateOne) SetDataset(v *models.Dataset) *PipelineRunUpdateOne {
	_u.mutation.SetDataset(v)
	return _u
}

// ClearDataset clears the value of the "dataset" field.
func (_u *PipelineRunUpdateOne) ClearDataset() *PipelineRunUpdateOne {
	_u.mutation.ClearDataset()
	return _u
}

// SetQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field.
func (_u *PipelineRunUpdateOne) SetQuestionnaireStakeholderCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetQuestionnaireStakeholderCount()
	_u.mutation.SetQuestionnaireStakeholderCount(v)
	return _u
}

// SetNillableQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableQuestionnaireStakeholderCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetQuestionnaireStakeholderCount(*v)
	}
	return _u
}

// AddQuestionnaireStakeholderCount adds value to the "questionnaire_stakeholder_count" field.
func (_u *PipelineRunUpdateOne) AddQuestionnaireStakeholderCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddQuestionnaireStakeholderCount(v)
	return _u
}

// ClearQuestionnaireStakeholderCount clears the value of the "questionnaire_stakeholder_count" field.
func (_u *PipelineRunUpdateOne) ClearQuestionnaireStakeholderCount() *PipelineRunUpdateOne {
	_u.mutation.ClearQuestionnaireStakeholderCount()
	return _u
}

// SetSimulationID sets the "simulation_id" field.
func (_u *PipelineRunUpdateOne) SetSimulationID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetSimulationID(v)
	return _u
}

// SetNillableSimulationID sets the "simulation_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableSimulationID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetSimulationID(*v)
	}
	return _u
}

// ClearSimulationID clears the value of the "simulation_id" field.
func (_u *PipelineRunUpdateOne) ClearSimulationID() *PipelineRunUpdateOne {
	_u.mutation.ClearSimulationID()
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *PipelineRunUpdateOne) SetAnalysisID(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetAnalysisID()
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableAnalysisID(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// AddAnalysisID adds value to the "analysis_id" field.
func (_u *PipelineRunUpdateOne) AddAnalysisID(v int) *PipelineRunUpdateOne {
	_u.mutation.AddAnalysisID(v)
	return _u
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (_u *PipelineRunUpdateOne) ClearAnalysisID() *PipelineRunUpdateOne {
	_u.mutation.ClearAnalysisID()
	return _u
}

// SetPersonaCount sets the "persona_count" field.
func (_u *PipelineRunUpdateOne) SetPersonaCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetPersonaCount()
	_u.mutation.SetPersonaCount(v)
	return _u
}

// SetNillablePersonaCount sets the "persona_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillablePersonaCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetPersonaCount(*v)
	}
	return _u
}

// AddPersonaCount adds value to the "persona_count" field.
func (_u *PipelineRunUpdateOne) AddPersonaCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddPersonaCount(v)
	return _u
}

// ClearPersonaCount clears the value of the "persona_count" field.
func (_u *PipelineRunUpdateOne) ClearPersonaCount() *PipelineRunUpdateOne {
	_u.mutation.ClearPersonaCount()
	return _u
}

// SetInterviewCount sets the "interview_count" field.
func (_u *PipelineRunUpdateOne) SetInterviewCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetInterviewCount()
	_u.mutation.SetInterviewCount(v)
	return _u
}

// SetNillableInterviewCount sets the "interview_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableInterviewCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetInterviewCount(*v)
	}
	return _u
}

// AddInterviewCount adds value to the "interview_count" field.
func (_u *PipelineRunUpdateOne) AddInterviewCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddInterviewCount(v)
	return _u
}

// ClearInterviewCount clears the value of the "interview_count" field.
func (_u *PipelineRunUpdateOne) ClearInterviewCount() *PipelineRunUpdateOne {
	_u.mutation.ClearInterviewCount()
	return _u
}

// SetTotalDurationSeconds sets the "total_duration_seconds" field.
func (_u *PipelineRunUpdateOne) SetTotalDurationSeconds(v float64) *PipelineRunUpdateOne {
	_u.mutation.ResetTotalDurationSeconds()
	_u.mutation.SetTotalDurationSeconds(v)
	return _u
}

// SetNillableTotalDurationSeconds sets the "total_duration_seconds" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTotalDurationSeconds(v *float64) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTotalDurationSeconds(*v)
	}
	return _u
}

// AddTotalDurationSeconds adds value to the "total_duration_seconds" field.
func (_u *PipelineRunUpdateOne) AddTotalDurationSeconds(v float64) *PipelineRunUpdateOne {
	_u.mutation.AddTotalDurationSeconds(v)
	return _u
}

// ClearTotalDurationSeconds clears the value of the "total_duration_seconds" field.
func (_u *PipelineRunUpdateOne) ClearTotalDurationSeconds() *PipelineRunUpdateOne {
	_u.mutation.ClearTotalDurationSeconds()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *PipelineRunUpdateOne) SetDurationSeconds(v float64) *PipelineRunUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableDurationSeconds(v *float64) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *PipelineRunUpdateOne) AddDurationSeconds(v float64) *PipelineRunUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *PipelineRunUpdateOne) ClearDurationSeconds() *PipelineRunUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdateOne) SetErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdateOne) ClearErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
		_spec.SetField(pipelinerun.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(pipelinerun.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessContext(); ok {
		_spec.SetField(pipelinerun.FieldBusinessContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExecutionTrace(); ok {
		_spec.SetField(pipelinerun.FieldExecutionTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldExecutionTrace, value)
		})
	}
	if _u.mutation.ExecutionTraceCleared() {
		_spec.ClearField(pipelinerun.FieldExecutionTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dataset(); ok {
		_spec.SetField(pipelinerun.FieldDataset, field.TypeJSON, value)
	}
	if _u.mutation.DatasetCleared() {
		_spec.ClearField(pipelinerun.FieldDataset, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionnaireStakeholderCount(); ok {
		_spec.SetField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionnaireStakeholderCount(); ok {
		_spec.AddField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt, value)
	}
	if _u.mutation.QuestionnaireStakeholderCountCleared() {
		_spec.ClearField(pipelinerun.FieldQuestionnaireStakeholderCount, field.TypeInt)
	}
	if value, ok := _u.mutation.SimulationID(); ok {
		_spec.SetField(pipelinerun.FieldSimulationID, field.TypeString, value)
	}
	if _u.mutation.SimulationIDCleared() {
		_spec.ClearField(pipelinerun.FieldSimulationID, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(pipelinerun.FieldAnalysisID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnalysisID(); ok {
		_spec.AddField(pipelinerun.FieldAnalysisID, field.TypeInt, value)
	}
	if _u.mutation.AnalysisIDCleared() {
		_spec.ClearField(pipelinerun.FieldAnalysisID, field.TypeInt)
	}
	if value, ok := _u.mutation.PersonaCount(); ok {
		_spec.SetField(pipelinerun.FieldPersonaCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPersonaCount(); ok {
		_spec.AddField(pipelinerun.FieldPersonaCount, field.TypeInt, value)
	}
	if _u.mutation.PersonaCountCleared() {
		_spec.ClearField(pipelinerun.FieldPersonaCount, field.TypeInt)
	}
	if value, ok := _u.mutation.InterviewCount(); ok {
		_spec.SetField(pipelinerun.FieldInterviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterviewCount(); ok {
		_spec.AddField(pipelinerun.FieldInterviewCount, field.TypeInt, value)
	}
	if _u.mutation.InterviewCountCleared() {
		_spec.ClearField(pipelinerun.FieldInterviewCount, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalDurationSeconds(); ok {
		_spec.SetField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationSeconds(); ok {
		_spec.AddField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDurationSecondsCleared() {
		_spec.ClearField(pipelinerun.FieldTotalDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(pipelinerun.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(pipelinerun.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(pipelinerun.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
