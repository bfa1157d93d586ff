package dataset

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/services"
)

type fakeAnalysisStore struct {
	records map[int]*models.AnalysisRecord
	err     error
}

func (f *fakeAnalysisStore) Get(_ context.Context, analysisID int) (*models.AnalysisRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.records[analysisID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return rec, nil
}

type fakeSimulationStore struct {
	sims map[string]*models.Simulation
	err  error
}

func (f *fakeSimulationStore) Get(_ context.Context, simulationID string) (*models.Simulation, error) {
	if f.err != nil {
		return nil, f.err
	}
	sim, ok := f.sims[simulationID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return sim, nil
}

func analysisWithPersonas(simID string) *models.AnalysisRecord {
	results := models.NewDetailedAnalysis()
	results.Status = "completed"
	results.Personas = []models.AnalysisPersona{
		{Name: "Plain Persona", OverallConfidence: 0.5},
	}
	results.EnhancedPersonas = []models.AnalysisPersona{
		{
			Name:              "Priya the Platform Lead",
			StakeholderType:   "Developers",
			OverallConfidence: 0.9,
			GoalsAndMotivations: &models.Trait{
				Value:      "Wants to cut build times in half",
				Confidence: 0.9,
				Evidence:   []string{"I spend half my day waiting on CI."},
			},
		},
		{Name: "Marco the Migration Skeptic", StakeholderType: "Operations", OverallConfidence: 0.7},
	}
	rec := &models.AnalysisRecord{
		AnalysisID: 7,
		Status:     "completed",
		Results:    results,
	}
	if simID != "" {
		rec.SimulationID = &simID
	}
	return rec
}

func testSimulation(id string) *models.Simulation {
	return &models.Simulation{
		SimulationID: id,
		Status:       models.SimulationStatusCompleted,
		BusinessContext: models.BusinessBrief{
			BusinessIdea:   "A build acceleration service for CI-heavy teams",
			TargetCustomer: "platform engineers",
			Problem:        "builds are slow",
		},
		Personas: []models.Persona{
			{ID: "per-1", Name: "Sim Person", StakeholderType: "Developers"},
		},
		Interviews: []models.Interview{
			{PersonID: "per-1", StakeholderType: "Developers", DurationMinutes: 12},
			{PersonID: "per-2", StakeholderType: "Operations", DurationMinutes: 15},
			{PersonID: "per-3", StakeholderType: "Developers", DurationMinutes: 11},
			{PersonID: "per-4", StakeholderType: "", DurationMinutes: 10},
		},
	}
}

func TestAssembleJoinsAnalysisAndSimulation(t *testing.T) {
	analyses := &fakeAnalysisStore{records: map[int]*models.AnalysisRecord{7: analysisWithPersonas("sim-1")}}
	sims := &fakeSimulationStore{sims: map[string]*models.Simulation{"sim-1": testSimulation("sim-1")}}
	asm := NewAssembler(analyses, sims)

	ds, err := asm.Assemble(context.Background(), 7)
	require.NoError(t, err)

	assert.NotEmpty(t, ds.ScopeID)
	assert.Equal(t, "A build acceleration service for CI-heavy teams", ds.ScopeName)
	assert.Contains(t, ds.Description, "sim-1")

	// Enhanced personas win over plain ones.
	require.Len(t, ds.Personas, 2)
	assert.Equal(t, "Priya the Platform Lead", ds.Personas[0].Name)
	assert.Equal(t, SourceEnhancedPersonas, ds.Personas[0].Metadata.Source)
	assert.Equal(t, 7, ds.Personas[0].Metadata.AnalysisID)
	assert.Equal(t, "sim-1", ds.Personas[0].Metadata.SimulationID)
	require.NotNil(t, ds.Personas[0].GoalsAndMotivations)

	assert.Len(t, ds.Interviews, 4)
	assert.Len(t, ds.SimulationPeople, 1)
	require.NotNil(t, ds.Analysis)

	assert.Equal(t, 4, ds.Quality.InterviewCount)
	assert.Equal(t, 2, ds.Quality.StakeholderCoverage, "blank stakeholder types do not count")
	assert.InDelta(t, 0.8, ds.Quality.AvgPersonaQuality, 1e-9)
}

func TestAssembleFallsBackToPlainPersonas(t *testing.T) {
	rec := analysisWithPersonas("sim-1")
	rec.Results.EnhancedPersonas = nil
	analyses := &fakeAnalysisStore{records: map[int]*models.AnalysisRecord{7: rec}}
	sims := &fakeSimulationStore{sims: map[string]*models.Simulation{"sim-1": testSimulation("sim-1")}}
	asm := NewAssembler(analyses, sims)

	ds, err := asm.Assemble(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, ds.Personas, 1)
	assert.Equal(t, "Plain Persona", ds.Personas[0].Name)
	assert.Equal(t, SourcePersonas, ds.Personas[0].Metadata.Source)
	assert.InDelta(t, 0.5, ds.Quality.AvgPersonaQuality, 1e-9)
}

func TestAssembleToleratesMissingSimulation(t *testing.T) {
	analyses := &fakeAnalysisStore{records: map[int]*models.AnalysisRecord{7: analysisWithPersonas("sim-gone")}}
	sims := &fakeSimulationStore{sims: map[string]*models.Simulation{}}
	asm := NewAssembler(analyses, sims)

	ds, err := asm.Assemble(context.Background(), 7)
	require.NoError(t, err, "a vanished simulation degrades, not fails")

	assert.NotNil(t, ds.Interviews)
	assert.Empty(t, ds.Interviews)
	assert.NotNil(t, ds.SimulationPeople)
	assert.Empty(t, ds.SimulationPeople)
	assert.Equal(t, 0, ds.Quality.InterviewCount)
	assert.Equal(t, 0, ds.Quality.StakeholderCoverage)
	assert.Equal(t, "sim-gone", ds.Personas[0].Metadata.SimulationID,
		"metadata keeps the reference even when the row is gone")
	assert.Equal(t, "Persona dataset 7", ds.ScopeName)
}

func TestAssembleUnknownAnalysisIsNotFound(t *testing.T) {
	asm := NewAssembler(&fakeAnalysisStore{}, &fakeSimulationStore{})
	_, err := asm.Assemble(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAssembleAnalysisWithoutResultsIsNotFound(t *testing.T) {
	rec := &models.AnalysisRecord{AnalysisID: 7, Status: "failed"}
	asm := NewAssembler(&fakeAnalysisStore{records: map[int]*models.AnalysisRecord{7: rec}}, &fakeSimulationStore{})

	_, err := asm.Assemble(context.Background(), 7)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAssemblePropagatesSimulationStoreFailure(t *testing.T) {
	analyses := &fakeAnalysisStore{records: map[int]*models.AnalysisRecord{7: analysisWithPersonas("sim-1")}}
	sims := &fakeSimulationStore{err: errors.New("connection refused")}
	asm := NewAssembler(analyses, sims)

	_, err := asm.Assemble(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAssembleEmptyPersonasQuality(t *testing.T) {
	rec := analysisWithPersonas("")
	rec.Results.Personas = nil
	rec.Results.EnhancedPersonas = nil
	asm := NewAssembler(&fakeAnalysisStore{records: map[int]*models.AnalysisRecord{7: rec}}, &fakeSimulationStore{})

	ds, err := asm.Assemble(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, ds.Personas)
	assert.Zero(t, ds.Quality.AvgPersonaQuality)
}

func TestScopeNameTruncatesLongIdeas(t *testing.T) {
	sim := testSimulation("sim-1")
	sim.BusinessContext.BusinessIdea = strings.Repeat("market analysis ", 20)

	name := scopeName(sim, 7)
	assert.LessOrEqual(t, len([]rune(name)), scopeNameMaxLen)
	assert.True(t, strings.HasSuffix(name, "…"))
}
