// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/synthlab-ai/persim/ent/analysisresult"
	"github.com/synthlab-ai/persim/ent/pipelinerun"
	"github.com/synthlab-ai/persim/ent/predicate"
	"github.com/synthlab-ai/persim/ent/simulation"
	"github.com/synthlab-ai/persim/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisResult = "AnalysisResult"
	TypePipelineRun    = "PipelineRun"
	TypeSimulation     = "Simulation"
)

// AnalysisResultMutation represents an operation that mutates the AnalysisResult nodes in the graph.
type AnalysisResultMutation struct {
	config
	op            Op
	typ           string
	id            *int
	simulation_id *string
	status        *string
	results       **models.DetailedAnalysis
	llm_provider  *string
	llm_model     *string
	created_at    *time.Time
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnalysisResult, error)
	predicates    []predicate.AnalysisResult
}

var _ ent.Mutation = (*AnalysisResultMutation)(nil)

// analysisresultOption allows management of the mutation configuration using functional options.
type analysisresultOption func(*AnalysisResultMutation)

// newAnalysisResultMutation creates new mutation for the AnalysisResult entity.
func newAnalysisResultMutation(c config, op Op, opts ...analysisresultOption) *AnalysisResultMutation {
	m := &AnalysisResultMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisResultID sets the ID field of the mutation.
func withAnalysisResultID(id int) analysisresultOption {
	return func(m *AnalysisResultMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisResult
		)
		m.oldValue = func(ctx context.Context) (*AnalysisResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisResult sets the old AnalysisResult of the mutation.
func withAnalysisResult(node *AnalysisResult) analysisresultOption {
	return func(m *AnalysisResultMutation) {
		m.oldValue = func(context.Context) (*AnalysisResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSimulationID sets the "simulation_id" field.
func (m *AnalysisResultMutation) SetSimulationID(s string) {
	m.simulation_id = &s
}

// SimulationID returns the value of the "simulation_id" field in the mutation.
func (m *AnalysisResultMutation) SimulationID() (r string, exists bool) {
	v := m.simulation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSimulationID returns the old "simulation_id" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldSimulationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimulationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimulationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimulationID: %w", err)
	}
	return oldValue.SimulationID, nil
}

// ClearSimulationID clears the value of the "simulation_id" field.
func (m *AnalysisResultMutation) ClearSimulationID() {
	m.simulation_id = nil
	m.clearedFields[analysisresult.FieldSimulationID] = struct{}{}
}

// SimulationIDCleared returns if the "simulation_id" field was cleared in this mutation.
func (m *AnalysisResultMutation) SimulationIDCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldSimulationID]
	return ok
}

// ResetSimulationID resets all changes to the "simulation_id" field.
func (m *AnalysisResultMutation) ResetSimulationID() {
	m.simulation_id = nil
	delete(m.clearedFields, analysisresult.FieldSimulationID)
}

// SetStatus sets the "status" field.
func (m *AnalysisResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisResultMutation) ResetStatus() {
	m.status = nil
}

// SetResults sets the "results" field.
func (m *AnalysisResultMutation) SetResults(ma *models.DetailedAnalysis) {
	m.results = &ma
}

// Results returns the value of the "results" field in the mutation.
func (m *AnalysisResultMutation) Results() (r *models.DetailedAnalysis, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldResults(ctx context.Context) (v *models.DetailedAnalysis, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// ClearResults clears the value of the "results" field.
func (m *AnalysisResultMutation) ClearResults() {
	m.results = nil
	m.clearedFields[analysisresult.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *AnalysisResultMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *AnalysisResultMutation) ResetResults() {
	m.results = nil
	delete(m.clearedFields, analysisresult.FieldResults)
}

// SetLlmProvider sets the "llm_provider" field.
func (m *AnalysisResultMutation) SetLlmProvider(s string) {
	m.llm_provider = &s
}

// LlmProvider returns the value of the "llm_provider" field in the mutation.
func (m *AnalysisResultMutation) LlmProvider() (r string, exists bool) {
	v := m.llm_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProvider returns the old "llm_provider" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldLlmProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProvider: %w", err)
	}
	return oldValue.LlmProvider, nil
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (m *AnalysisResultMutation) ClearLlmProvider() {
	m.llm_provider = nil
	m.clearedFields[analysisresult.FieldLlmProvider] = struct{}{}
}

// LlmProviderCleared returns if the "llm_provider" field was cleared in this mutation.
func (m *AnalysisResultMutation) LlmProviderCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldLlmProvider]
	return ok
}

// ResetLlmProvider resets all changes to the "llm_provider" field.
func (m *AnalysisResultMutation) ResetLlmProvider() {
	m.llm_provider = nil
	delete(m.clearedFields, analysisresult.FieldLlmProvider)
}

// SetLlmModel sets the "llm_model" field.
func (m *AnalysisResultMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *AnalysisResultMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldLlmModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ClearLlmModel clears the value of the "llm_model" field.
func (m *AnalysisResultMutation) ClearLlmModel() {
	m.llm_model = nil
	m.clearedFields[analysisresult.FieldLlmModel] = struct{}{}
}

// LlmModelCleared returns if the "llm_model" field was cleared in this mutation.
func (m *AnalysisResultMutation) LlmModelCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldLlmModel]
	return ok
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *AnalysisResultMutation) ResetLlmModel() {
	m.llm_model = nil
	delete(m.clearedFields, analysisresult.FieldLlmModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisresult.FieldErrorMessage)
}

// Where appends a list predicates to the AnalysisResultMutation builder.
func (m *AnalysisResultMutation) Where(ps ...predicate.AnalysisResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisResult).
func (m *AnalysisResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.simulation_id != nil {
		fields = append(fields, analysisresult.FieldSimulationID)
	}
	if m.status != nil {
		fields = append(fields, analysisresult.FieldStatus)
	}
	if m.results != nil {
		fields = append(fields, analysisresult.FieldResults)
	}
	if m.llm_provider != nil {
		fields = append(fields, analysisresult.FieldLlmProvider)
	}
	if m.llm_model != nil {
		fields = append(fields, analysisresult.FieldLlmModel)
	}
	if m.created_at != nil {
		fields = append(fields, analysisresult.FieldCreatedAt)
	}
	if m.error_message != nil {
		fields = append(fields, analysisresult.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisresult.FieldSimulationID:
		return m.SimulationID()
	case analysisresult.FieldStatus:
		return m.Status()
	case analysisresult.FieldResults:
		return m.Results()
	case analysisresult.FieldLlmProvider:
		return m.LlmProvider()
	case analysisresult.FieldLlmModel:
		return m.LlmModel()
	case analysisresult.FieldCreatedAt:
		return m.CreatedAt()
	case analysisresult.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisresult.FieldSimulationID:
		return m.OldSimulationID(ctx)
	case analysisresult.FieldStatus:
		return m.OldStatus(ctx)
	case analysisresult.FieldResults:
		return m.OldResults(ctx)
	case analysisresult.FieldLlmProvider:
		return m.OldLlmProvider(ctx)
	case analysisresult.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case analysisresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisresult.FieldSimulationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimulationID(v)
		return nil
	case analysisresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisresult.FieldResults:
		v, ok := value.(*models.DetailedAnalysis)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case analysisresult.FieldLlmProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProvider(v)
		return nil
	case analysisresult.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case analysisresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisresult.FieldSimulationID) {
		fields = append(fields, analysisresult.FieldSimulationID)
	}
	if m.FieldCleared(analysisresult.FieldResults) {
		fields = append(fields, analysisresult.FieldResults)
	}
	if m.FieldCleared(analysisresult.FieldLlmProvider) {
		fields = append(fields, analysisresult.FieldLlmProvider)
	}
	if m.FieldCleared(analysisresult.FieldLlmModel) {
		fields = append(fields, analysisresult.FieldLlmModel)
	}
	if m.FieldCleared(analysisresult.FieldErrorMessage) {
		fields = append(fields, analysisresult.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisResultMutation) ClearField(name string) error {
	switch name {
	case analysisresult.FieldSimulationID:
		m.ClearSimulationID()
		return nil
	case analysisresult.FieldResults:
		m.ClearResults()
		return nil
	case analysisresult.FieldLlmProvider:
		m.ClearLlmProvider()
		return nil
	case analysisresult.FieldLlmModel:
		m.ClearLlmModel()
		return nil
	case analysisresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisResultMutation) ResetField(name string) error {
	switch name {
	case analysisresult.FieldSimulationID:
		m.ResetSimulationID()
		return nil
	case analysisresult.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisresult.FieldResults:
		m.ResetResults()
		return nil
	case analysisresult.FieldLlmProvider:
		m.ResetLlmProvider()
		return nil
	case analysisresult.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case analysisresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisResult edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                                 Op
	typ                                string
	id                                 *string
	user_id                            *string
	status                             *pipelinerun.Status
	business_context                   *models.BusinessBrief
	execution_trace                    *[]models.StageTrace
	appendexecution_trace              []models.StageTrace
	dataset                            **models.Dataset
	questionnaire_stakeholder_count    *int
	addquestionnaire_stakeholder_count *int
	simulation_id                      *string
	analysis_id                        *int
	addanalysis_id                     *int
	persona_count                      *int
	addpersona_count                   *int
	interview_count                    *int
	addinterview_count                 *int
	total_duration_seconds             *float64
	addtotal_duration_seconds          *float64
	created_at                         *time.Time
	started_at                         *time.Time
	completed_at                       *time.Time
	duration_seconds                   *float64
	addduration_seconds                *float64
	error_message                      *string
	clearedFields                      map[string]struct{}
	done                               bool
	oldValue                           func(context.Context) (*PipelineRun, error)
	predicates                         []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PipelineRunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PipelineRunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PipelineRunMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[pipelinerun.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PipelineRunMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PipelineRunMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, pipelinerun.FieldUserID)
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetBusinessContext sets the "business_context" field.
func (m *PipelineRunMutation) SetBusinessContext(mb models.BusinessBrief) {
	m.business_context = &mb
}

// BusinessContext returns the value of the "business_context" field in the mutation.
func (m *PipelineRunMutation) BusinessContext() (r models.BusinessBrief, exists bool) {
	v := m.business_context
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessContext returns the old "business_context" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldBusinessContext(ctx context.Context) (v models.BusinessBrief, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessContext: %w", err)
	}
	return oldValue.BusinessContext, nil
}

// ResetBusinessContext resets all changes to the "business_context" field.
func (m *PipelineRunMutation) ResetBusinessContext() {
	m.business_context = nil
}

// SetExecutionTrace sets the "execution_trace" field.
func (m *PipelineRunMutation) SetExecutionTrace(mt []models.StageTrace) {
	m.execution_trace = &mt
	m.appendexecution_trace = nil
}

// ExecutionTrace returns the value of the "execution_trace" field in the mutation.
func (m *PipelineRunMutation) ExecutionTrace() (r []models.StageTrace, exists bool) {
	v := m.execution_trace
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTrace returns the old "execution_trace" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldExecutionTrace(ctx context.Context) (v []models.StageTrace, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTrace: %w", err)
	}
	return oldValue.ExecutionTrace, nil
}

// AppendExecutionTrace adds mt to the "execution_trace" field.
func (m *PipelineRunMutation) AppendExecutionTrace(mt []models.StageTrace) {
	m.appendexecution_trace = append(m.appendexecution_trace, mt...)
}

// AppendedExecutionTrace returns the list of values that were appended to the "execution_trace" field in this mutation.
func (m *PipelineRunMutation) AppendedExecutionTrace() ([]models.StageTrace, bool) {
	if len(m.appendexecution_trace) == 0 {
		return nil, false
	}
	return m.appendexecution_trace, true
}

// ClearExecutionTrace clears the value of the "execution_trace" field.
func (m *PipelineRunMutation) ClearExecutionTrace() {
	m.execution_trace = nil
	m.appendexecution_trace = nil
	m.clearedFields[pipelinerun.FieldExecutionTrace] = struct{}{}
}

// ExecutionTraceCleared returns if the "execution_trace" field was cleared in this mutation.
func (m *PipelineRunMutation) ExecutionTraceCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldExecutionTrace]
	return ok
}

// ResetExecutionTrace resets all changes to the "execution_trace" field.
func (m *PipelineRunMutation) ResetExecutionTrace() {
	m.execution_trace = nil
	m.appendexecution_trace = nil
	delete(m.clearedFields, pipelinerun.FieldExecutionTrace)
}

// SetDataset sets the "dataset" field.
func (m *PipelineRunMutation) SetDataset(value *models.Dataset) {
	m.dataset = &value
}

// Dataset returns the value of the "dataset" field in the mutation.
func (m *PipelineRunMutation) Dataset() (r *models.Dataset, exists bool) {
	v := m.dataset
	if v == nil {
		return
	}
	return *v, true
}

// OldDataset returns the old "dataset" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDataset(ctx context.Context) (v *models.Dataset, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataset: %w", err)
	}
	return oldValue.Dataset, nil
}

// ClearDataset clears the value of the "dataset" field.
func (m *PipelineRunMutation) ClearDataset() {
	m.dataset = nil
	m.clearedFields[pipelinerun.FieldDataset] = struct{}{}
}

// DatasetCleared returns if the "dataset" field was cleared in this mutation.
func (m *PipelineRunMutation) DatasetCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldDataset]
	return ok
}

// ResetDataset resets all changes to the "dataset" field.
func (m *PipelineRunMutation) ResetDataset() {
	m.dataset = nil
	delete(m.clearedFields, pipelinerun.FieldDataset)
}

// SetQuestionnaireStakeholderCount sets the "questionnaire_stakeholder_count" field.
func (m *PipelineRunMutation) SetQuestionnaireStakeholderCount(i int) {
	m.questionnaire_stakeholder_count = &i
	m.addquestionnaire_stakeholder_count = nil
}

// QuestionnaireStakeholderCount returns the value of the "questionnaire_stakeholder_count" field in the mutation.
func (m *PipelineRunMutation) QuestionnaireStakeholderCount() (r int, exists bool) {
	v := m.questionnaire_stakeholder_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireStakeholderCount returns the old "questionnaire_stakeholder_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldQuestionnaireStakeholderCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireStakeholderCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireStakeholderCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireStakeholderCount: %w", err)
	}
	return oldValue.QuestionnaireStakeholderCount, nil
}

// AddQuestionnaireStakeholderCount adds i to the "questionnaire_stakeholder_count" field.
func (m *PipelineRunMutation) AddQuestionnaireStakeholderCount(i int) {
	if m.addquestionnaire_stakeholder_count != nil {
		*m.addquestionnaire_stakeholder_count += i
	} else {
		m.addquestionnaire_stakeholder_count = &i
	}
}

// AddedQuestionnaireStakeholderCount returns the value that was added to the "questionnaire_stakeholder_count" field in this mutation.
func (m *PipelineRunMutation) AddedQuestionnaireStakeholderCount() (r int, exists bool) {
	v := m.addquestionnaire_stakeholder_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuestionnaireStakeholderCount clears the value of the "questionnaire_stakeholder_count" field.
func (m *PipelineRunMutation) ClearQuestionnaireStakeholderCount() {
	m.questionnaire_stakeholder_count = nil
	m.addquestionnaire_stakeholder_count = nil
	m.clearedFields[pipelinerun.FieldQuestionnaireStakeholderCount] = struct{}{}
}

// QuestionnaireStakeholderCountCleared returns if the "questionnaire_stakeholder_count" field was cleared in this mutation.
func (m *PipelineRunMutation) QuestionnaireStakeholderCountCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldQuestionnaireStakeholderCount]
	return ok
}

// ResetQuestionnaireStakeholderCount resets all changes to the "questionnaire_stakeholder_count" field.
func (m *PipelineRunMutation) ResetQuestionnaireStakeholderCount() {
	m.questionnaire_stakeholder_count = nil
	m.addquestionnaire_stakeholder_count = nil
	delete(m.clearedFields, pipelinerun.FieldQuestionnaireStakeholderCount)
}

// SetSimulationID sets the "simulation_id" field.
func (m *PipelineRunMutation) SetSimulationID(s string) {
	m.simulation_id = &s
}

// SimulationID returns the value of the "simulation_id" field in the mutation.
func (m *PipelineRunMutation) SimulationID() (r string, exists bool) {
	v := m.simulation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSimulationID returns the old "simulation_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldSimulationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimulationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimulationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimulationID: %w", err)
	}
	return oldValue.SimulationID, nil
}

// ClearSimulationID clears the value of the "simulation_id" field.
func (m *PipelineRunMutation) ClearSimulationID() {
	m.simulation_id = nil
	m.clearedFields[pipelinerun.FieldSimulationID] = struct{}{}
}

// SimulationIDCleared returns if the "simulation_id" field was cleared in this mutation.
func (m *PipelineRunMutation) SimulationIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldSimulationID]
	return ok
}

// ResetSimulationID resets all changes to the "simulation_id" field.
func (m *PipelineRunMutation) ResetSimulationID() {
	m.simulation_id = nil
	delete(m.clearedFields, pipelinerun.FieldSimulationID)
}

// SetAnalysisID sets the "analysis_id" field.
func (m *PipelineRunMutation) SetAnalysisID(i int) {
	m.analysis_id = &i
	m.addanalysis_id = nil
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *PipelineRunMutation) AnalysisID() (r int, exists bool) {
	v := m.analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldAnalysisID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// AddAnalysisID adds i to the "analysis_id" field.
func (m *PipelineRunMutation) AddAnalysisID(i int) {
	if m.addanalysis_id != nil {
		*m.addanalysis_id += i
	} else {
		m.addanalysis_id = &i
	}
}

// AddedAnalysisID returns the value that was added to the "analysis_id" field in this mutation.
func (m *PipelineRunMutation) AddedAnalysisID() (r int, exists bool) {
	v := m.addanalysis_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (m *PipelineRunMutation) ClearAnalysisID() {
	m.analysis_id = nil
	m.addanalysis_id = nil
	m.clearedFields[pipelinerun.FieldAnalysisID] = struct{}{}
}

// AnalysisIDCleared returns if the "analysis_id" field was cleared in this mutation.
func (m *PipelineRunMutation) AnalysisIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldAnalysisID]
	return ok
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *PipelineRunMutation) ResetAnalysisID() {
	m.analysis_id = nil
	m.addanalysis_id = nil
	delete(m.clearedFields, pipelinerun.FieldAnalysisID)
}

// SetPersonaCount sets the "persona_count" field.
func (m *PipelineRunMutation) SetPersonaCount(i int) {
	m.persona_count = &i
	m.addpersona_count = nil
}

// PersonaCount returns the value of the "persona_count" field in the mutation.
func (m *PipelineRunMutation) PersonaCount() (r int, exists bool) {
	v := m.persona_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaCount returns the old "persona_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPersonaCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaCount: %w", err)
	}
	return oldValue.PersonaCount, nil
}

// AddPersonaCount adds i to the "persona_count" field.
func (m *PipelineRunMutation) AddPersonaCount(i int) {
	if m.addpersona_count != nil {
		*m.addpersona_count += i
	} else {
		m.addpersona_count = &i
	}
}

// AddedPersonaCount returns the value that was added to the "persona_count" field in this mutation.
func (m *PipelineRunMutation) AddedPersonaCount() (r int, exists bool) {
	v := m.addpersona_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPersonaCount clears the value of the "persona_count" field.
func (m *PipelineRunMutation) ClearPersonaCount() {
	m.persona_count = nil
	m.addpersona_count = nil
	m.clearedFields[pipelinerun.FieldPersonaCount] = struct{}{}
}

// PersonaCountCleared returns if the "persona_count" field was cleared in this mutation.
func (m *PipelineRunMutation) PersonaCountCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldPersonaCount]
	return ok
}

// ResetPersonaCount resets all changes to the "persona_count" field.
func (m *PipelineRunMutation) ResetPersonaCount() {
	m.persona_count = nil
	m.addpersona_count = nil
	delete(m.clearedFields, pipelinerun.FieldPersonaCount)
}

// SetInterviewCount sets the "interview_count" field.
func (m *PipelineRunMutation) SetInterviewCount(i int) {
	m.interview_count = &i
	m.addinterview_count = nil
}

// InterviewCount returns the value of the "interview_count" field in the mutation.
func (m *PipelineRunMutation) InterviewCount() (r int, exists bool) {
	v := m.interview_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviewCount returns the old "interview_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldInterviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviewCount: %w", err)
	}
	return oldValue.InterviewCount, nil
}

// AddInterviewCount adds i to the "interview_count" field.
func (m *PipelineRunMutation) AddInterviewCount(i int) {
	if m.addinterview_count != nil {
		*m.addinterview_count += i
	} else {
		m.addinterview_count = &i
	}
}

// AddedInterviewCount returns the value that was added to the "interview_count" field in this mutation.
func (m *PipelineRunMutation) AddedInterviewCount() (r int, exists bool) {
	v := m.addinterview_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearInterviewCount clears the value of the "interview_count" field.
func (m *PipelineRunMutation) ClearInterviewCount() {
	m.interview_count = nil
	m.addinterview_count = nil
	m.clearedFields[pipelinerun.FieldInterviewCount] = struct{}{}
}

// InterviewCountCleared returns if the "interview_count" field was cleared in this mutation.
func (m *PipelineRunMutation) InterviewCountCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldInterviewCount]
	return ok
}

// ResetInterviewCount resets all changes to the "interview_count" field.
func (m *PipelineRunMutation) ResetInterviewCount() {
	m.interview_count = nil
	m.addinterview_count = nil
	delete(m.clearedFields, pipelinerun.FieldInterviewCount)
}

// SetTotalDurationSeconds sets the "total_duration_seconds" field.
func (m *PipelineRunMutation) SetTotalDurationSeconds(f float64) {
	m.total_duration_seconds = &f
	m.addtotal_duration_seconds = nil
}

// TotalDurationSeconds returns the value of the "total_duration_seconds" field in the mutation.
func (m *PipelineRunMutation) TotalDurationSeconds() (r float64, exists bool) {
	v := m.total_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDurationSeconds returns the old "total_duration_seconds" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTotalDurationSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDurationSeconds: %w", err)
	}
	return oldValue.TotalDurationSeconds, nil
}

// AddTotalDurationSeconds adds f to the "total_duration_seconds" field.
func (m *PipelineRunMutation) AddTotalDurationSeconds(f float64) {
	if m.addtotal_duration_seconds != nil {
		*m.addtotal_duration_seconds += f
	} else {
		m.addtotal_duration_seconds = &f
	}
}

// AddedTotalDurationSeconds returns the value that was added to the "total_duration_seconds" field in this mutation.
func (m *PipelineRunMutation) AddedTotalDurationSeconds() (r float64, exists bool) {
	v := m.addtotal_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDurationSeconds clears the value of the "total_duration_seconds" field.
func (m *PipelineRunMutation) ClearTotalDurationSeconds() {
	m.total_duration_seconds = nil
	m.addtotal_duration_seconds = nil
	m.clearedFields[pipelinerun.FieldTotalDurationSeconds] = struct{}{}
}

// TotalDurationSecondsCleared returns if the "total_duration_seconds" field was cleared in this mutation.
func (m *PipelineRunMutation) TotalDurationSecondsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldTotalDurationSeconds]
	return ok
}

// ResetTotalDurationSeconds resets all changes to the "total_duration_seconds" field.
func (m *PipelineRunMutation) ResetTotalDurationSeconds() {
	m.total_duration_seconds = nil
	m.addtotal_duration_seconds = nil
	delete(m.clearedFields, pipelinerun.FieldTotalDurationSeconds)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *PipelineRunMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *PipelineRunMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *PipelineRunMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *PipelineRunMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *PipelineRunMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[pipelinerun.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *PipelineRunMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *PipelineRunMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, pipelinerun.FieldDurationSeconds)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinerun.FieldErrorMessage)
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user_id != nil {
		fields = append(fields, pipelinerun.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.business_context != nil {
		fields = append(fields, pipelinerun.FieldBusinessContext)
	}
	if m.execution_trace != nil {
		fields = append(fields, pipelinerun.FieldExecutionTrace)
	}
	if m.dataset != nil {
		fields = append(fields, pipelinerun.FieldDataset)
	}
	if m.questionnaire_stakeholder_count != nil {
		fields = append(fields, pipelinerun.FieldQuestionnaireStakeholderCount)
	}
	if m.simulation_id != nil {
		fields = append(fields, pipelinerun.FieldSimulationID)
	}
	if m.analysis_id != nil {
		fields = append(fields, pipelinerun.FieldAnalysisID)
	}
	if m.persona_count != nil {
		fields = append(fields, pipelinerun.FieldPersonaCount)
	}
	if m.interview_count != nil {
		fields = append(fields, pipelinerun.FieldInterviewCount)
	}
	if m.total_duration_seconds != nil {
		fields = append(fields, pipelinerun.FieldTotalDurationSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, pipelinerun.FieldDurationSeconds)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldUserID:
		return m.UserID()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldBusinessContext:
		return m.BusinessContext()
	case pipelinerun.FieldExecutionTrace:
		return m.ExecutionTrace()
	case pipelinerun.FieldDataset:
		return m.Dataset()
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		return m.QuestionnaireStakeholderCount()
	case pipelinerun.FieldSimulationID:
		return m.SimulationID()
	case pipelinerun.FieldAnalysisID:
		return m.AnalysisID()
	case pipelinerun.FieldPersonaCount:
		return m.PersonaCount()
	case pipelinerun.FieldInterviewCount:
		return m.InterviewCount()
	case pipelinerun.FieldTotalDurationSeconds:
		return m.TotalDurationSeconds()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinerun.FieldDurationSeconds:
		return m.DurationSeconds()
	case pipelinerun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldUserID:
		return m.OldUserID(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldBusinessContext:
		return m.OldBusinessContext(ctx)
	case pipelinerun.FieldExecutionTrace:
		return m.OldExecutionTrace(ctx)
	case pipelinerun.FieldDataset:
		return m.OldDataset(ctx)
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		return m.OldQuestionnaireStakeholderCount(ctx)
	case pipelinerun.FieldSimulationID:
		return m.OldSimulationID(ctx)
	case pipelinerun.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case pipelinerun.FieldPersonaCount:
		return m.OldPersonaCount(ctx)
	case pipelinerun.FieldInterviewCount:
		return m.OldInterviewCount(ctx)
	case pipelinerun.FieldTotalDurationSeconds:
		return m.OldTotalDurationSeconds(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinerun.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case pipelinerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldBusinessContext:
		v, ok := value.(models.BusinessBrief)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessContext(v)
		return nil
	case pipelinerun.FieldExecutionTrace:
		v, ok := value.([]models.StageTrace)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTrace(v)
		return nil
	case pipelinerun.FieldDataset:
		v, ok := value.(*models.Dataset)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataset(v)
		return nil
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireStakeholderCount(v)
		return nil
	case pipelinerun.FieldSimulationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimulationID(v)
		return nil
	case pipelinerun.FieldAnalysisID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case pipelinerun.FieldPersonaCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaCount(v)
		return nil
	case pipelinerun.FieldInterviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviewCount(v)
		return nil
	case pipelinerun.FieldTotalDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDurationSeconds(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinerun.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case pipelinerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addquestionnaire_stakeholder_count != nil {
		fields = append(fields, pipelinerun.FieldQuestionnaireStakeholderCount)
	}
	if m.addanalysis_id != nil {
		fields = append(fields, pipelinerun.FieldAnalysisID)
	}
	if m.addpersona_count != nil {
		fields = append(fields, pipelinerun.FieldPersonaCount)
	}
	if m.addinterview_count != nil {
		fields = append(fields, pipelinerun.FieldInterviewCount)
	}
	if m.addtotal_duration_seconds != nil {
		fields = append(fields, pipelinerun.FieldTotalDurationSeconds)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, pipelinerun.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		return m.AddedQuestionnaireStakeholderCount()
	case pipelinerun.FieldAnalysisID:
		return m.AddedAnalysisID()
	case pipelinerun.FieldPersonaCount:
		return m.AddedPersonaCount()
	case pipelinerun.FieldInterviewCount:
		return m.AddedInterviewCount()
	case pipelinerun.FieldTotalDurationSeconds:
		return m.AddedTotalDurationSeconds()
	case pipelinerun.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionnaireStakeholderCount(v)
		return nil
	case pipelinerun.FieldAnalysisID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalysisID(v)
		return nil
	case pipelinerun.FieldPersonaCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPersonaCount(v)
		return nil
	case pipelinerun.FieldInterviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterviewCount(v)
		return nil
	case pipelinerun.FieldTotalDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDurationSeconds(v)
		return nil
	case pipelinerun.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldUserID) {
		fields = append(fields, pipelinerun.FieldUserID)
	}
	if m.FieldCleared(pipelinerun.FieldExecutionTrace) {
		fields = append(fields, pipelinerun.FieldExecutionTrace)
	}
	if m.FieldCleared(pipelinerun.FieldDataset) {
		fields = append(fields, pipelinerun.FieldDataset)
	}
	if m.FieldCleared(pipelinerun.FieldQuestionnaireStakeholderCount) {
		fields = append(fields, pipelinerun.FieldQuestionnaireStakeholderCount)
	}
	if m.FieldCleared(pipelinerun.FieldSimulationID) {
		fields = append(fields, pipelinerun.FieldSimulationID)
	}
	if m.FieldCleared(pipelinerun.FieldAnalysisID) {
		fields = append(fields, pipelinerun.FieldAnalysisID)
	}
	if m.FieldCleared(pipelinerun.FieldPersonaCount) {
		fields = append(fields, pipelinerun.FieldPersonaCount)
	}
	if m.FieldCleared(pipelinerun.FieldInterviewCount) {
		fields = append(fields, pipelinerun.FieldInterviewCount)
	}
	if m.FieldCleared(pipelinerun.FieldTotalDurationSeconds) {
		fields = append(fields, pipelinerun.FieldTotalDurationSeconds)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinerun.FieldDurationSeconds) {
		fields = append(fields, pipelinerun.FieldDurationSeconds)
	}
	if m.FieldCleared(pipelinerun.FieldErrorMessage) {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldUserID:
		m.ClearUserID()
		return nil
	case pipelinerun.FieldExecutionTrace:
		m.ClearExecutionTrace()
		return nil
	case pipelinerun.FieldDataset:
		m.ClearDataset()
		return nil
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		m.ClearQuestionnaireStakeholderCount()
		return nil
	case pipelinerun.FieldSimulationID:
		m.ClearSimulationID()
		return nil
	case pipelinerun.FieldAnalysisID:
		m.ClearAnalysisID()
		return nil
	case pipelinerun.FieldPersonaCount:
		m.ClearPersonaCount()
		return nil
	case pipelinerun.FieldInterviewCount:
		m.ClearInterviewCount()
		return nil
	case pipelinerun.FieldTotalDurationSeconds:
		m.ClearTotalDurationSeconds()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinerun.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldUserID:
		m.ResetUserID()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldBusinessContext:
		m.ResetBusinessContext()
		return nil
	case pipelinerun.FieldExecutionTrace:
		m.ResetExecutionTrace()
		return nil
	case pipelinerun.FieldDataset:
		m.ResetDataset()
		return nil
	case pipelinerun.FieldQuestionnaireStakeholderCount:
		m.ResetQuestionnaireStakeholderCount()
		return nil
	case pipelinerun.FieldSimulationID:
		m.ResetSimulationID()
		return nil
	case pipelinerun.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case pipelinerun.FieldPersonaCount:
		m.ResetPersonaCount()
		return nil
	case pipelinerun.FieldInterviewCount:
		m.ResetInterviewCount()
		return nil
	case pipelinerun.FieldTotalDurationSeconds:
		m.ResetTotalDurationSeconds()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinerun.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// SimulationMutation represents an operation that mutates the Simulation nodes in the graph.
type SimulationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	status           *simulation.Status
	business_context *models.BusinessBrief
	questions_data   **models.Questionnaire
	_config          *models.SimulationConfig
	personas         *[]models.Persona
	appendpersonas   []models.Persona
	interviews       *[]models.Interview
	appendinterviews []models.Interview
	insights         **models.SimulationInsights
	formatted_data   *map[string]interface{}
	created_at       *time.Time
	completed_at     *time.Time
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Simulation, error)
	predicates       []predicate.Simulation
}

var _ ent.Mutation = (*SimulationMutation)(nil)

// simulationOption allows management of the mutation configuration using functional options.
type simulationOption func(*SimulationMutation)

// newSimulationMutation creates new mutation for the Simulation entity.
func newSimulationMutation(c config, op Op, opts ...simulationOption) *SimulationMutation {
	m := &SimulationMutation{
		config:        c,
		op:            op,
		typ:           TypeSimulation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSimulationID sets the ID field of the mutation.
func withSimulationID(id string) simulationOption {
	return func(m *SimulationMutation) {
		var (
			err   error
			once  sync.Once
			value *Simulation
		)
		m.oldValue = func(ctx context.Context) (*Simulation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Simulation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSimulation sets the old Simulation of the mutation.
func withSimulation(node *Simulation) simulationOption {
	return func(m *SimulationMutation) {
		m.oldValue = func(context.Context) (*Simulation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SimulationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SimulationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Simulation entities.
func (m *SimulationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SimulationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SimulationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Simulation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SimulationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SimulationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *SimulationMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[simulation.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *SimulationMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[simulation.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SimulationMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, simulation.FieldUserID)
}

// SetStatus sets the "status" field.
func (m *SimulationMutation) SetStatus(s simulation.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SimulationMutation) Status() (r simulation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldStatus(ctx context.Context) (v simulation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SimulationMutation) ResetStatus() {
	m.status = nil
}

// SetBusinessContext sets the "business_context" field.
func (m *SimulationMutation) SetBusinessContext(mb models.BusinessBrief) {
	m.business_context = &mb
}

// BusinessContext returns the value of the "business_context" field in the mutation.
func (m *SimulationMutation) BusinessContext() (r models.BusinessBrief, exists bool) {
	v := m.business_context
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessContext returns the old "business_context" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldBusinessContext(ctx context.Context) (v models.BusinessBrief, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessContext: %w", err)
	}
	return oldValue.BusinessContext, nil
}

// ResetBusinessContext resets all changes to the "business_context" field.
func (m *SimulationMutation) ResetBusinessContext() {
	m.business_context = nil
}

// SetQuestionsData sets the "questions_data" field.
func (m *SimulationMutation) SetQuestionsData(value *models.Questionnaire) {
	m.questions_data = &value
}

// QuestionsData returns the value of the "questions_data" field in the mutation.
func (m *SimulationMutation) QuestionsData() (r *models.Questionnaire, exists bool) {
	v := m.questions_data
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsData returns the old "questions_data" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldQuestionsData(ctx context.Context) (v *models.Questionnaire, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsData: %w", err)
	}
	return oldValue.QuestionsData, nil
}

// ClearQuestionsData clears the value of the "questions_data" field.
func (m *SimulationMutation) ClearQuestionsData() {
	m.questions_data = nil
	m.clearedFields[simulation.FieldQuestionsData] = struct{}{}
}

// QuestionsDataCleared returns if the "questions_data" field was cleared in this mutation.
func (m *SimulationMutation) QuestionsDataCleared() bool {
	_, ok := m.clearedFields[simulation.FieldQuestionsData]
	return ok
}

// ResetQuestionsData resets all changes to the "questions_data" field.
func (m *SimulationMutation) ResetQuestionsData() {
	m.questions_data = nil
	delete(m.clearedFields, simulation.FieldQuestionsData)
}

// SetConfig sets the "config" field.
func (m *SimulationMutation) SetConfig(mc models.SimulationConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *SimulationMutation) Config() (r models.SimulationConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldConfig(ctx context.Context) (v models.SimulationConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *SimulationMutation) ResetConfig() {
	m._config = nil
}

// SetPersonas sets the "personas" field.
func (m *SimulationMutation) SetPersonas(value []models.Persona) {
	m.personas = &value
	m.appendpersonas = nil
}

// Personas returns the value of the "personas" field in the mutation.
func (m *SimulationMutation) Personas() (r []models.Persona, exists bool) {
	v := m.personas
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonas returns the old "personas" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldPersonas(ctx context.Context) (v []models.Persona, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonas: %w", err)
	}
	return oldValue.Personas, nil
}

// AppendPersonas adds value to the "personas" field.
func (m *SimulationMutation) AppendPersonas(value []models.Persona) {
	m.appendpersonas = append(m.appendpersonas, value...)
}

// AppendedPersonas returns the list of values that were appended to the "personas" field in this mutation.
func (m *SimulationMutation) AppendedPersonas() ([]models.Persona, bool) {
	if len(m.appendpersonas) == 0 {
		return nil, false
	}
	return m.appendpersonas, true
}

// ClearPersonas clears the value of the "personas" field.
func (m *SimulationMutation) ClearPersonas() {
	m.personas = nil
	m.appendpersonas = nil
	m.clearedFields[simulation.FieldPersonas] = struct{}{}
}

// PersonasCleared returns if the "personas" field was cleared in this mutation.
func (m *SimulationMutation) PersonasCleared() bool {
	_, ok := m.clearedFields[simulation.FieldPersonas]
	return ok
}

// ResetPersonas resets all changes to the "personas" field.
func (m *SimulationMutation) ResetPersonas() {
	m.personas = nil
	m.appendpersonas = nil
	delete(m.clearedFields, simulation.FieldPersonas)
}

// SetInterviews sets the "interviews" field.
func (m *SimulationMutation) SetInterviews(value []models.Interview) {
	m.interviews = &value
	m.appendinterviews = nil
}

// Interviews returns the value of the "interviews" field in the mutation.
func (m *SimulationMutation) Interviews() (r []models.Interview, exists bool) {
	v := m.interviews
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviews returns the old "interviews" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldInterviews(ctx context.Context) (v []models.Interview, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviews: %w", err)
	}
	return oldValue.Interviews, nil
}

// AppendInterviews adds value to the "interviews" field.
func (m *SimulationMutation) AppendInterviews(value []models.Interview) {
	m.appendinterviews = append(m.appendinterviews, value...)
}

// AppendedInterviews returns the list of values that were appended to the "interviews" field in this mutation.
func (m *SimulationMutation) AppendedInterviews() ([]models.Interview, bool) {
	if len(m.appendinterviews) == 0 {
		return nil, false
	}
	return m.appendinterviews, true
}

// ClearInterviews clears the value of the "interviews" field.
func (m *SimulationMutation) ClearInterviews() {
	m.interviews = nil
	m.appendinterviews = nil
	m.clearedFields[simulation.FieldInterviews] = struct{}{}
}

// InterviewsCleared returns if the "interviews" field was cleared in this mutation.
func (m *SimulationMutation) InterviewsCleared() bool {
	_, ok := m.clearedFields[simulation.FieldInterviews]
	return ok
}

// ResetInterviews resets all changes to the "interviews" field.
func (m *SimulationMutation) ResetInterviews() {
	m.interviews = nil
	m.appendinterviews = nil
	delete(m.clearedFields, simulation.FieldInterviews)
}

// SetInsights sets the "insights" field.
func (m *SimulationMutation) SetInsights(mi *models.SimulationInsights) {
	m.insights = &mi
}

// Insights returns the value of the "insights" field in the mutation.
func (m *SimulationMutation) Insights() (r *models.SimulationInsights, exists bool) {
	v := m.insights
	if v == nil {
		return
	}
	return *v, true
}

// OldInsights returns the old "insights" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldInsights(ctx context.Context) (v *models.SimulationInsights, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsights: %w", err)
	}
	return oldValue.Insights, nil
}

// ClearInsights clears the value of the "insights" field.
func (m *SimulationMutation) ClearInsights() {
	m.insights = nil
	m.clearedFields[simulation.FieldInsights] = struct{}{}
}

// InsightsCleared returns if the "insights" field was cleared in this mutation.
func (m *SimulationMutation) InsightsCleared() bool {
	_, ok := m.clearedFields[simulation.FieldInsights]
	return ok
}

// ResetInsights resets all changes to the "insights" field.
func (m *SimulationMutation) ResetInsights() {
	m.insights = nil
	delete(m.clearedFields, simulation.FieldInsights)
}

// SetFormattedData sets the "formatted_data" field.
func (m *SimulationMutation) SetFormattedData(value map[string]interface{}) {
	m.formatted_data = &value
}

// FormattedData returns the value of the "formatted_data" field in the mutation.
func (m *SimulationMutation) FormattedData() (r map[string]interface{}, exists bool) {
	v := m.formatted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFormattedData returns the old "formatted_data" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldFormattedData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormattedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormattedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormattedData: %w", err)
	}
	return oldValue.FormattedData, nil
}

// ClearFormattedData clears the value of the "formatted_data" field.
func (m *SimulationMutation) ClearFormattedData() {
	m.formatted_data = nil
	m.clearedFields[simulation.FieldFormattedData] = struct{}{}
}

// FormattedDataCleared returns if the "formatted_data" field was cleared in this mutation.
func (m *SimulationMutation) FormattedDataCleared() bool {
	_, ok := m.clearedFields[simulation.FieldFormattedData]
	return ok
}

// ResetFormattedData resets all changes to the "formatted_data" field.
func (m *SimulationMutation) ResetFormattedData() {
	m.formatted_data = nil
	delete(m.clearedFields, simulation.FieldFormattedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *SimulationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SimulationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SimulationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SimulationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SimulationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SimulationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[simulation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SimulationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[simulation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SimulationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, simulation.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *SimulationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SimulationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Simulation entity.
// If the Simulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SimulationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SimulationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[simulation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SimulationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[simulation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SimulationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, simulation.FieldErrorMessage)
}

// Where appends a list predicates to the SimulationMutation builder.
func (m *SimulationMutation) Where(ps ...predicate.Simulation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SimulationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SimulationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Simulation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SimulationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SimulationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Simulation).
func (m *SimulationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SimulationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, simulation.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, simulation.FieldStatus)
	}
	if m.business_context != nil {
		fields = append(fields, simulation.FieldBusinessContext)
	}
	if m.questions_data != nil {
		fields = append(fields, simulation.FieldQuestionsData)
	}
	if m._config != nil {
		fields = append(fields, simulation.FieldConfig)
	}
	if m.personas != nil {
		fields = append(fields, simulation.FieldPersonas)
	}
	if m.interviews != nil {
		fields = append(fields, simulation.FieldInterviews)
	}
	if m.insights != nil {
		fields = append(fields, simulation.FieldInsights)
	}
	if m.formatted_data != nil {
		fields = append(fields, simulation.FieldFormattedData)
	}
	if m.created_at != nil {
		fields = append(fields, simulation.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, simulation.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, simulation.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SimulationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case simulation.FieldUserID:
		return m.UserID()
	case simulation.FieldStatus:
		return m.Status()
	case simulation.FieldBusinessContext:
		return m.BusinessContext()
	case simulation.FieldQuestionsData:
		return m.QuestionsData()
	case simulation.FieldConfig:
		return m.Config()
	case simulation.FieldPersonas:
		return m.Personas()
	case simulation.FieldInterviews:
		return m.Interviews()
	case simulation.FieldInsights:
		return m.Insights()
	case simulation.FieldFormattedData:
		return m.FormattedData()
	case simulation.FieldCreatedAt:
		return m.CreatedAt()
	case simulation.FieldCompletedAt:
		return m.CompletedAt()
	case simulation.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SimulationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case simulation.FieldUserID:
		return m.OldUserID(ctx)
	case simulation.FieldStatus:
		return m.OldStatus(ctx)
	case simulation.FieldBusinessContext:
		return m.OldBusinessContext(ctx)
	case simulation.FieldQuestionsData:
		return m.OldQuestionsData(ctx)
	case simulation.FieldConfig:
		return m.OldConfig(ctx)
	case simulation.FieldPersonas:
		return m.OldPersonas(ctx)
	case simulation.FieldInterviews:
		return m.OldInterviews(ctx)
	case simulation.FieldInsights:
		return m.OldInsights(ctx)
	case simulation.FieldFormattedData:
		return m.OldFormattedData(ctx)
	case simulation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case simulation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case simulation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Simulation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SimulationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case simulation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case simulation.FieldStatus:
		v, ok := value.(simulation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case simulation.FieldBusinessContext:
		v, ok := value.(models.BusinessBrief)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessContext(v)
		return nil
	case simulation.FieldQuestionsData:
		v, ok := value.(*models.Questionnaire)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsData(v)
		return nil
	case simulation.FieldConfig:
		v, ok := value.(models.SimulationConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case simulation.FieldPersonas:
		v, ok := value.([]models.Persona)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonas(v)
		return nil
	case simulation.FieldInterviews:
		v, ok := value.([]models.Interview)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviews(v)
		return nil
	case simulation.FieldInsights:
		v, ok := value.(*models.SimulationInsights)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsights(v)
		return nil
	case simulation.FieldFormattedData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormattedData(v)
		return nil
	case simulation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case simulation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case simulation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Simulation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SimulationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SimulationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SimulationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Simulation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SimulationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(simulation.FieldUserID) {
		fields = append(fields, simulation.FieldUserID)
	}
	if m.FieldCleared(simulation.FieldQuestionsData) {
		fields = append(fields, simulation.FieldQuestionsData)
	}
	if m.FieldCleared(simulation.FieldPersonas) {
		fields = append(fields, simulation.FieldPersonas)
	}
	if m.FieldCleared(simulation.FieldInterviews) {
		fields = append(fields, simulation.FieldInterviews)
	}
	if m.FieldCleared(simulation.FieldInsights) {
		fields = append(fields, simulation.FieldInsights)
	}
	if m.FieldCleared(simulation.FieldFormattedData) {
		fields = append(fields, simulation.FieldFormattedData)
	}
	if m.FieldCleared(simulation.FieldCompletedAt) {
		fields = append(fields, simulation.FieldCompletedAt)
	}
	if m.FieldCleared(simulation.FieldErrorMessage) {
		fields = append(fields, simulation.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SimulationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SimulationMutation) ClearField(name string) error {
	switch name {
	case simulation.FieldUserID:
		m.ClearUserID()
		return nil
	case simulation.FieldQuestionsData:
		m.ClearQuestionsData()
		return nil
	case simulation.FieldPersonas:
		m.ClearPersonas()
		return nil
	case simulation.FieldInterviews:
		m.ClearInterviews()
		return nil
	case simulation.FieldInsights:
		m.ClearInsights()
		return nil
	case simulation.FieldFormattedData:
		m.ClearFormattedData()
		return nil
	case simulation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case simulation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Simulation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SimulationMutation) ResetField(name string) error {
	switch name {
	case simulation.FieldUserID:
		m.ResetUserID()
		return nil
	case simulation.FieldStatus:
		m.ResetStatus()
		return nil
	case simulation.FieldBusinessContext:
		m.ResetBusinessContext()
		return nil
	case simulation.FieldQuestionsData:
		m.ResetQuestionsData()
		return nil
	case simulation.FieldConfig:
		m.ResetConfig()
		return nil
	case simulation.FieldPersonas:
		m.ResetPersonas()
		return nil
	case simulation.FieldInterviews:
		m.ResetInterviews()
		return nil
	case simulation.FieldInsights:
		m.ResetInsights()
		return nil
	case simulation.FieldFormattedData:
		m.ResetFormattedData()
		return nil
	case simulation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case simulation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case simulation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Simulation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SimulationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SimulationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SimulationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SimulationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SimulationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SimulationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SimulationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Simulation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SimulationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Simulation edge %s", name)
}
