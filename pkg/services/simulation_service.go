package services

import (
	"context"
	"fmt"
	"time"

	"github.com/synthlab-ai/persim/ent"
	"github.com/synthlab-ai/persim/ent/simulation"
	"github.com/synthlab-ai/persim/pkg/models"
)

// SimulationService persists stage-2 simulation records
type SimulationService struct {
	client *ent.Client
}

// NewSimulationService creates a new SimulationService
func NewSimulationService(client *ent.Client) *SimulationService {
	return &SimulationService{client: client}
}

// Create inserts a pending simulation row
func (s *SimulationService) Create(httpCtx context.Context, simulationID, userID string, brief models.BusinessBrief, questions *models.Questionnaire, config models.SimulationConfig) (*models.Simulation, error) {
	if simulationID == "" {
		return nil, NewValidationError("simulation_id", "required")
	}
	if field := brief.Validate(); field != "" {
		return nil, NewValidationError(field, "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Simulation.Create().
		SetID(simulationID).
		SetStatus(simulation.StatusPending).
		SetBusinessContext(brief).
		SetConfig(config)
	if userID != "" {
		builder.SetUserID(userID)
	}
	if questions != nil {
		builder.SetQuestionsData(questions)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	return simulationFromRow(row), nil
}

// MarkRunning advances a pending simulation to running
func (s *SimulationService) MarkRunning(httpCtx context.Context, simulationID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Simulation.Update().
		Where(
			simulation.IDEQ(simulationID),
			simulation.StatusNotIn(simulation.StatusCompleted, simulation.StatusFailed),
		).
		SetStatus(simulation.StatusRunning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark simulation running: %w", err)
	}
	if n == 0 {
		return s.writeRejection(ctx, simulationID)
	}
	return nil
}

// UpdateResults stores the fanout output and completes the simulation
func (s *SimulationService) UpdateResults(httpCtx context.Context, simulationID string, personas []models.Persona, interviews []models.Interview, insights *models.SimulationInsights, formatted map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Simulation.Update().
		Where(
			simulation.IDEQ(simulationID),
			simulation.StatusNotIn(simulation.StatusCompleted, simulation.StatusFailed),
		).
		SetStatus(simulation.StatusCompleted).
		SetPersonas(personas).
		SetInterviews(interviews).
		SetCompletedAt(time.Now())
	if insights != nil {
		update.SetInsights(insights)
	}
	if formatted != nil {
		update.SetFormattedData(formatted)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to store simulation results: %w", err)
	}
	if n == 0 {
		return s.writeRejection(ctx, simulationID)
	}
	return nil
}

// MarkFailed terminates a simulation with an error message
func (s *SimulationService) MarkFailed(httpCtx context.Context, simulationID string, cause error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	message := "unknown failure"
	if cause != nil {
		message = cause.Error()
	}

	n, err := s.client.Simulation.Update().
		Where(
			simulation.IDEQ(simulationID),
			simulation.StatusNotIn(simulation.StatusCompleted, simulation.StatusFailed),
		).
		SetStatus(simulation.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark simulation failed: %w", err)
	}
	if n == 0 {
		return s.writeRejection(ctx, simulationID)
	}
	return nil
}

// Get retrieves one simulation by id
func (s *SimulationService) Get(ctx context.Context, simulationID string) (*models.Simulation, error) {
	row, err := s.client.Simulation.Query().
		Where(simulation.IDEQ(simulationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) || isUndefinedTable(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get simulation: %w", err)
	}
	return simulationFromRow(row), nil
}

// ListCompleted returns completed simulations, newest first
func (s *SimulationService) ListCompleted(ctx context.Context) ([]*models.Simulation, error) {
	rows, err := s.client.Simulation.Query().
		Where(simulation.StatusEQ(simulation.StatusCompleted)).
		Order(ent.Desc(simulation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		if isUndefinedTable(err) {
			return []*models.Simulation{}, nil
		}
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}

	out := make([]*models.Simulation, 0, len(rows))
	for _, row := range rows {
		out = append(out, simulationFromRow(row))
	}
	return out, nil
}

// writeRejection distinguishes a missing row from a terminal one after a
// guarded update matched nothing.
func (s *SimulationService) writeRejection(ctx context.Context, simulationID string) error {
	exists, err := s.client.Simulation.Query().
		Where(simulation.IDEQ(simulationID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check simulation state: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrTerminalState
}

func simulationFromRow(row *ent.Simulation) *models.Simulation {
	sim := &models.Simulation{
		SimulationID:    row.ID,
		UserID:          row.UserID,
		Status:          models.SimulationStatus(row.Status),
		BusinessContext: row.BusinessContext,
		QuestionsData:   row.QuestionsData,
		Config:          row.Config,
		Personas:        row.Personas,
		Interviews:      row.Interviews,
		Insights:        row.Insights,
		FormattedData:   row.FormattedData,
		CreatedAt:       row.CreatedAt,
		CompletedAt:     row.CompletedAt,
	}
	if row.ErrorMessage != nil {
		sim.Error = *row.ErrorMessage
	}
	return sim
}
