// Package dataset assembles the stage-4 export: one analysis envelope joined
// with its source simulation into the canonical persona dataset.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/synthlab-ai/persim/pkg/models"
	"github.com/synthlab-ai/persim/pkg/services"
)

// Persona provenance labels recorded in dataset metadata.
const (
	SourceEnhancedPersonas = "enhanced_personas"
	SourcePersonas         = "personas"
)

const scopeNameMaxLen = 80

// AnalysisStore loads analysis envelopes by id.
type AnalysisStore interface {
	Get(ctx context.Context, analysisID int) (*models.AnalysisRecord, error)
}

// SimulationStore loads simulations by id.
type SimulationStore interface {
	Get(ctx context.Context, simulationID string) (*models.Simulation, error)
}

// Assembler joins analyses with their source simulations.
type Assembler struct {
	analyses    AnalysisStore
	simulations SimulationStore
	logger      *slog.Logger
}

// NewAssembler builds an assembler over the two stores.
func NewAssembler(analyses AnalysisStore, simulations SimulationStore) *Assembler {
	return &Assembler{
		analyses:    analyses,
		simulations: simulations,
		logger:      slog.With("component", "dataset"),
	}
}

// Assemble builds the dataset for one analysis. A missing simulation degrades
// to a dataset without interviews or simulation people; a missing analysis,
// or one that never produced results, is a not-found error.
func (a *Assembler) Assemble(ctx context.Context, analysisID int) (*models.Dataset, error) {
	record, err := a.analyses.Get(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("load analysis %d: %w", analysisID, err)
	}
	if record.Results == nil {
		return nil, fmt.Errorf("analysis %d has no results: %w", analysisID, services.ErrNotFound)
	}

	var sim *models.Simulation
	simulationID := ""
	if record.SimulationID != nil {
		simulationID = *record.SimulationID
		sim, err = a.simulations.Get(ctx, simulationID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			a.logger.Warn("simulation missing, assembling without interviews",
				"analysis_id", analysisID,
				"simulation_id", simulationID)
			sim = nil
		case err != nil:
			return nil, fmt.Errorf("load simulation %s: %w", simulationID, err)
		}
	}

	source, personas := personaSource(record.Results)
	meta := models.DatasetPersonaMetadata{
		Source:       source,
		AnalysisID:   analysisID,
		SimulationID: simulationID,
	}

	ds := &models.Dataset{
		ScopeID:          uuid.NewString(),
		ScopeName:        scopeName(sim, analysisID),
		Description:      scopeDescription(sim, analysisID),
		Personas:         make([]models.DatasetPersona, 0, len(personas)),
		Interviews:       []models.Interview{},
		Analysis:         record.Results,
		SimulationPeople: []models.Persona{},
	}
	if sim != nil {
		ds.Interviews = append(ds.Interviews, sim.Interviews...)
		ds.SimulationPeople = append(ds.SimulationPeople, sim.Personas...)
	}
	for _, p := range personas {
		ds.Personas = append(ds.Personas, adaptPersona(p, meta))
	}
	ds.Quality = quality(ds.Interviews, ds.Personas)

	a.logger.Info("dataset assembled",
		"analysis_id", analysisID,
		"personas", len(ds.Personas),
		"interviews", len(ds.Interviews),
		"persona_source", source)
	return ds, nil
}

// personaSource prefers enhanced personas and falls back to plain ones.
func personaSource(analysis *models.DetailedAnalysis) (string, []models.AnalysisPersona) {
	if len(analysis.EnhancedPersonas) > 0 {
		return SourceEnhancedPersonas, analysis.EnhancedPersonas
	}
	return SourcePersonas, analysis.Personas
}

func adaptPersona(p models.AnalysisPersona, meta models.DatasetPersonaMetadata) models.DatasetPersona {
	return models.DatasetPersona{
		Name:                      p.Name,
		Description:               p.Description,
		StakeholderType:           p.StakeholderType,
		Demographics:              p.Demographics,
		GoalsAndMotivations:       p.GoalsAndMotivations,
		ChallengesAndFrustrations: p.ChallengesAndFrustrations,
		KeyQuotes:                 p.KeyQuotes,
		OverallConfidence:         p.OverallConfidence,
		Metadata:                  meta,
	}
}

func quality(interviews []models.Interview, personas []models.DatasetPersona) models.DatasetQuality {
	coverage := make(map[string]struct{})
	for _, iv := range interviews {
		if iv.StakeholderType != "" {
			coverage[iv.StakeholderType] = struct{}{}
		}
	}
	q := models.DatasetQuality{
		InterviewCount:      len(interviews),
		StakeholderCoverage: len(coverage),
	}
	if len(personas) > 0 {
		sum := 0.0
		for _, p := range personas {
			sum += p.OverallConfidence
		}
		q.AvgPersonaQuality = sum / float64(len(personas))
	}
	return q
}

// scopeName titles the dataset after the business idea when the simulation
// survives, and after the analysis id otherwise.
func scopeName(sim *models.Simulation, analysisID int) string {
	if sim != nil {
		if idea := strings.TrimSpace(sim.BusinessContext.BusinessIdea); idea != "" {
			return truncate(idea, scopeNameMaxLen)
		}
	}
	return fmt.Sprintf("Persona dataset %d", analysisID)
}

func scopeDescription(sim *models.Simulation, analysisID int) string {
	if sim != nil {
		return fmt.Sprintf("Synthetic persona research dataset assembled from simulation %s.", sim.SimulationID)
	}
	return fmt.Sprintf("Synthetic persona research dataset assembled from analysis %d.", analysisID)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
