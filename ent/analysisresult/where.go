// Code generated by ent, DO NOT EDIT.

package analysisresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldID, id))
}

// SimulationID applies equality check predicate on the "simulation_id" field. It's identical to SimulationIDEQ.
func SimulationID(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldSimulationID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldStatus, v))
}

// LlmProvider applies equality check predicate on the "llm_provider" field. It's identical to LlmProviderEQ.
func LlmProvider(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldLlmModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldErrorMessage, v))
}

// SimulationIDEQ applies the EQ predicate on the "simulation_id" field.
func SimulationIDEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldSimulationID, v))
}

// SimulationIDNEQ applies the NEQ predicate on the "simulation_id" field.
func SimulationIDNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldSimulationID, v))
}

// SimulationIDIn applies the In predicate on the "simulation_id" field.
func SimulationIDIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldSimulationID, vs...))
}

// SimulationIDNotIn applies the NotIn predicate on the "simulation_id" field.
func SimulationIDNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldSimulationID, vs...))
}

// SimulationIDGT applies the GT predicate on the "simulation_id" field.
func SimulationIDGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldSimulationID, v))
}

// SimulationIDGTE applies the GTE predicate on the "simulation_id" field.
func SimulationIDGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldSimulationID, v))
}

// SimulationIDLT applies the LT predicate on the "simulation_id" field.
func SimulationIDLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldSimulationID, v))
}

// SimulationIDLTE applies the LTE predicate on the "simulation_id" field.
func SimulationIDLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldSimulationID, v))
}

// SimulationIDContains applies the Contains predicate on the "simulation_id" field.
func SimulationIDContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldSimulationID, v))
}

// SimulationIDHasPrefix applies the HasPrefix predicate on the "simulation_id" field.
func SimulationIDHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldSimulationID, v))
}

// SimulationIDHasSuffix applies the HasSuffix predicate on the "simulation_id" field.
func SimulationIDHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldSimulationID, v))
}

// SimulationIDIsNil applies the IsNil predicate on the "simulation_id" field.
func SimulationIDIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldSimulationID))
}

// SimulationIDNotNil applies the NotNil predicate on the "simulation_id" field.
func SimulationIDNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldSimulationID))
}

// SimulationIDEqualFold applies the EqualFold predicate on the "simulation_id" field.
func SimulationIDEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldSimulationID, v))
}

// SimulationIDContainsFold applies the ContainsFold predicate on the "simulation_id" field.
func SimulationIDContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldSimulationID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldStatus, v))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldResults))
}

// LlmProviderEQ applies the EQ predicate on the "llm_provider" field.
func LlmProviderEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmProviderNEQ applies the NEQ predicate on the "llm_provider" field.
func LlmProviderNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldLlmProvider, v))
}

// LlmProviderIn applies the In predicate on the "llm_provider" field.
func LlmProviderIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldLlmProvider, vs...))
}

// LlmProviderNotIn applies the NotIn predicate on the "llm_provider" field.
func LlmProviderNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldLlmProvider, vs...))
}

// LlmProviderGT applies the GT predicate on the "llm_provider" field.
func LlmProviderGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldLlmProvider, v))
}

// LlmProviderGTE applies the GTE predicate on the "llm_provider" field.
func LlmProviderGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldLlmProvider, v))
}

// LlmProviderLT applies the LT predicate on the "llm_provider" field.
func LlmProviderLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldLlmProvider, v))
}

// LlmProviderLTE applies the LTE predicate on the "llm_provider" field.
func LlmProviderLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldLlmProvider, v))
}

// LlmProviderContains applies the Contains predicate on the "llm_provider" field.
func LlmProviderContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldLlmProvider, v))
}

// LlmProviderHasPrefix applies the HasPrefix predicate on the "llm_provider" field.
func LlmProviderHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldLlmProvider, v))
}

// LlmProviderHasSuffix applies the HasSuffix predicate on the "llm_provider" field.
func LlmProviderHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldLlmProvider, v))
}

// LlmProviderIsNil applies the IsNil predicate on the "llm_provider" field.
func LlmProviderIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldLlmProvider))
}

// LlmProviderNotNil applies the NotNil predicate on the "llm_provider" field.
func LlmProviderNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldLlmProvider))
}

// LlmProviderEqualFold applies the EqualFold predicate on the "llm_provider" field.
func LlmProviderEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldLlmProvider, v))
}

// LlmProviderContainsFold applies the ContainsFold predicate on the "llm_provider" field.
func LlmProviderContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldLlmProvider, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelIsNil applies the IsNil predicate on the "llm_model" field.
func LlmModelIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldLlmModel))
}

// LlmModelNotNil applies the NotNil predicate on the "llm_model" field.
func LlmModelNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldLlmModel))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldLlmModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldCreatedAt, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.NotPredicates(p))
}
