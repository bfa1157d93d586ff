// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldUserID, v))
}

// QuestionnaireStakeholderCount applies equality check predicate on the "questionnaire_stakeholder_count" field. It's identical to QuestionnaireStakeholderCountEQ.
func QuestionnaireStakeholderCount(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldQuestionnaireStakeholderCount, v))
}

// SimulationID applies equality check predicate on the "simulation_id" field. It's identical to SimulationIDEQ.
func SimulationID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldSimulationID, v))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldAnalysisID, v))
}

// PersonaCount applies equality check predicate on the "persona_count" field. It's identical to PersonaCountEQ.
func PersonaCount(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPersonaCount, v))
}

// InterviewCount applies equality check predicate on the "interview_count" field. It's identical to InterviewCountEQ.
func InterviewCount(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldInterviewCount, v))
}

// TotalDurationSeconds applies equality check predicate on the "total_duration_seconds" field. It's identical to TotalDurationSecondsEQ.
func TotalDurationSeconds(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTotalDurationSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldDurationSeconds, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecutionTraceIsNil applies the IsNil predicate on the "execution_trace" field.
func ExecutionTraceIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldExecutionTrace))
}

// ExecutionTraceNotNil applies the NotNil predicate on the "execution_trace" field.
func ExecutionTraceNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldExecutionTrace))
}

// DatasetIsNil applies the IsNil predicate on the "dataset" field.
func DatasetIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldDataset))
}

// DatasetNotNil applies the NotNil predicate on the "dataset" field.
func DatasetNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldDataset))
}

// QuestionnaireStakeholderCountEQ applies the EQ predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldQuestionnaireStakeholderCount, v))
}

// QuestionnaireStakeholderCountNEQ applies the NEQ predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldQuestionnaireStakeholderCount, v))
}

// QuestionnaireStakeholderCountIn applies the In predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldQuestionnaireStakeholderCount, vs...))
}

// QuestionnaireStakeholderCountNotIn applies the NotIn predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldQuestionnaireStakeholderCount, vs...))
}

// QuestionnaireStakeholderCountGT applies the GT predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldQuestionnaireStakeholderCount, v))
}

// QuestionnaireStakeholderCountGTE applies the GTE predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldQuestionnaireStakeholderCount, v))
}

// QuestionnaireStakeholderCountLT applies the LT predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldQuestionnaireStakeholderCount, v))
}

// QuestionnaireStakeholderCountLTE applies the LTE predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldQuestionnaireStakeholderCount, v))
}

// QuestionnaireStakeholderCountIsNil applies the IsNil predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldQuestionnaireStakeholderCount))
}

// QuestionnaireStakeholderCountNotNil applies the NotNil predicate on the "questionnaire_stakeholder_count" field.
func QuestionnaireStakeholderCountNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldQuestionnaireStakeholderCount))
}

// SimulationIDEQ applies the EQ predicate on the "simulation_id" field.
func SimulationIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldSimulationID, v))
}

// SimulationIDNEQ applies the NEQ predicate on the "simulation_id" field.
func SimulationIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldSimulationID, v))
}

// SimulationIDIn applies the In predicate on the "simulation_id" field.
func SimulationIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldSimulationID, vs...))
}

// SimulationIDNotIn applies the NotIn predicate on the "simulation_id" field.
func SimulationIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldSimulationID, vs...))
}

// SimulationIDGT applies the GT predicate on the "simulation_id" field.
func SimulationIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldSimulationID, v))
}

// SimulationIDGTE applies the GTE predicate on the "simulation_id" field.
func SimulationIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldSimulationID, v))
}

// SimulationIDLT applies the LT predicate on the "simulation_id" field.
func SimulationIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldSimulationID, v))
}

// SimulationIDLTE applies the LTE predicate on the "simulation_id" field.
func SimulationIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldSimulationID, v))
}

// SimulationIDContains applies the Contains predicate on the "simulation_id" field.
func SimulationIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldSimulationID, v))
}

// SimulationIDHasPrefix applies the HasPrefix predicate on the "simulation_id" field.
func SimulationIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldSimulationID, v))
}

// SimulationIDHasSuffix applies the HasSuffix predicate on the "simulation_id" field.
func SimulationIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldSimulationID, v))
}

// SimulationIDIsNil applies the IsNil predicate on the "simulation_id" field.
func SimulationIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldSimulationID))
}

// SimulationIDNotNil applies the NotNil predicate on the "simulation_id" field.
func SimulationIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldSimulationID))
}

// SimulationIDEqualFold applies the EqualFold predicate on the "simulation_id" field.
func SimulationIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldSimulationID, v))
}

// SimulationIDContainsFold applies the ContainsFold predicate on the "simulation_id" field.
func SimulationIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldSimulationID, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// AnalysisIDGT applies the GT predicate on the "analysis_id" field.
func AnalysisIDGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldAnalysisID, v))
}

// AnalysisIDGTE applies the GTE predicate on the "analysis_id" field.
func AnalysisIDGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldAnalysisID, v))
}

// AnalysisIDLT applies the LT predicate on the "analysis_id" field.
func AnalysisIDLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldAnalysisID, v))
}

// AnalysisIDLTE applies the LTE predicate on the "analysis_id" field.
func AnalysisIDLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldAnalysisID, v))
}

// AnalysisIDIsNil applies the IsNil predicate on the "analysis_id" field.
func AnalysisIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldAnalysisID))
}

// AnalysisIDNotNil applies the NotNil predicate on the "analysis_id" field.
func AnalysisIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldAnalysisID))
}

// PersonaCountEQ applies the EQ predicate on the "persona_count" field.
func PersonaCountEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPersonaCount, v))
}

// PersonaCountNEQ applies the NEQ predicate on the "persona_count" field.
func PersonaCountNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldPersonaCount, v))
}

// PersonaCountIn applies the In predicate on the "persona_count" field.
func PersonaCountIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldPersonaCount, vs...))
}

// PersonaCountNotIn applies the NotIn predicate on the "persona_count" field.
func PersonaCountNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldPersonaCount, vs...))
}

// PersonaCountGT applies the GT predicate on the "persona_count" field.
func PersonaCountGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldPersonaCount, v))
}

// PersonaCountGTE applies the GTE predicate on the "persona_count" field.
func PersonaCountGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldPersonaCount, v))
}

// PersonaCountLT applies the LT predicate on the "persona_count" field.
func PersonaCountLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldPersonaCount, v))
}

// PersonaCountLTE applies the LTE predicate on the "persona_count" field.
func PersonaCountLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldPersonaCount, v))
}

// PersonaCountIsNil applies the IsNil predicate on the "persona_count" field.
func PersonaCountIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldPersonaCount))
}

// PersonaCountNotNil applies the NotNil predicate on the "persona_count" field.
func PersonaCountNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldPersonaCount))
}

// InterviewCountEQ applies the EQ predicate on the "interview_count" field.
func InterviewCountEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldInterviewCount, v))
}

// InterviewCountNEQ applies the NEQ predicate on the "interview_count" field.
func InterviewCountNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldInterviewCount, v))
}

// InterviewCountIn applies the In predicate on the "interview_count" field.
func InterviewCountIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldInterviewCount, vs...))
}

// InterviewCountNotIn applies the NotIn predicate on the "interview_count" field.
func InterviewCountNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldInterviewCount, vs...))
}

// InterviewCountGT applies the GT predicate on the "interview_count" field.
func InterviewCountGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldInterviewCount, v))
}

// InterviewCountGTE applies the GTE predicate on the "interview_count" field.
func InterviewCountGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldInterviewCount, v))
}

// InterviewCountLT applies the LT predicate on the "interview_count" field.
func InterviewCountLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldInterviewCount, v))
}

// InterviewCountLTE applies the LTE predicate on the "interview_count" field.
func InterviewCountLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldInterviewCount, v))
}

// InterviewCountIsNil applies the IsNil predicate on the "interview_count" field.
func InterviewCountIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldInterviewCount))
}

// InterviewCountNotNil applies the NotNil predicate on the "interview_count" field.
func InterviewCountNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldInterviewCount))
}

// TotalDurationSecondsEQ applies the EQ predicate on the "total_duration_seconds" field.
func TotalDurationSecondsEQ(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTotalDurationSeconds, v))
}

// TotalDurationSecondsNEQ applies the NEQ predicate on the "total_duration_seconds" field.
func TotalDurationSecondsNEQ(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldTotalDurationSeconds, v))
}

// TotalDurationSecondsIn applies the In predicate on the "total_duration_seconds" field.
func TotalDurationSecondsIn(vs ...float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldTotalDurationSeconds, vs...))
}

// TotalDurationSecondsNotIn applies the NotIn predicate on the "total_duration_seconds" field.
func TotalDurationSecondsNotIn(vs ...float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldTotalDurationSeconds, vs...))
}

// TotalDurationSecondsGT applies the GT predicate on the "total_duration_seconds" field.
func TotalDurationSecondsGT(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldTotalDurationSeconds, v))
}

// TotalDurationSecondsGTE applies the GTE predicate on the "total_duration_seconds" field.
func TotalDurationSecondsGTE(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldTotalDurationSeconds, v))
}

// TotalDurationSecondsLT applies the LT predicate on the "total_duration_seconds" field.
func TotalDurationSecondsLT(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldTotalDurationSeconds, v))
}

// TotalDurationSecondsLTE applies the LTE predicate on the "total_duration_seconds" field.
func TotalDurationSecondsLTE(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldTotalDurationSeconds, v))
}

// TotalDurationSecondsIsNil applies the IsNil predicate on the "total_duration_seconds" field.
func TotalDurationSecondsIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldTotalDurationSeconds))
}

// TotalDurationSecondsNotNil applies the NotNil predicate on the "total_duration_seconds" field.
func TotalDurationSecondsNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldTotalDurationSeconds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCompletedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldDurationSeconds))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
