package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/pkg/analysis"
	"github.com/synthlab-ai/persim/pkg/interview"
	"github.com/synthlab-ai/persim/pkg/models"
)

func runBrief() models.BusinessBrief {
	return models.BusinessBrief{
		BusinessIdea:   "An AI meal planner for busy families",
		TargetCustomer: "Working parents",
		Problem:        "Weeknight dinners take too much planning",
	}
}

func runQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		Stakeholders: models.StakeholderGroups{
			Primary: []models.Stakeholder{
				{ID: "devs", Name: "Developers", Questions: []string{"q1", "q2"}},
			},
			Secondary: []models.Stakeholder{
				{ID: "ops", Name: "Operations", Questions: []string{"q3"}},
			},
		},
		TimeEstimate: "10-15 minutes",
	}
}

func fanoutResult() *interview.Result {
	return &interview.Result{
		Personas: []models.Persona{
			{ID: "p1", Name: "Maya", StakeholderType: "Developers"},
		},
		Interviews: []models.Interview{
			{
				PersonID:        "p1",
				StakeholderType: "Developers",
				Responses: []models.InterviewResponse{
					{Question: "q1", Response: "long answer"},
				},
				DurationMinutes:  9,
				OverallSentiment: "positive",
				KeyThemes:        []string{"tooling"},
			},
		},
		Failed: 1,
	}
}

type stubQuestionnaires struct {
	fn    func(ctx context.Context) (*models.Questionnaire, error)
	calls int
}

func (s *stubQuestionnaires) Build(ctx context.Context, _ models.BusinessBrief) (*models.Questionnaire, error) {
	s.calls++
	if s.fn != nil {
		return s.fn(ctx)
	}
	return runQuestionnaire(), nil
}

type stubInterviews struct {
	fn        func(ctx context.Context) (*interview.Result, error)
	calls     int
	gotConfig models.SimulationConfig
}

func (s *stubInterviews) Run(ctx context.Context, _ *models.Questionnaire, _ models.BusinessBrief, cfg models.SimulationConfig, _ interview.ProgressFunc) (*interview.Result, error) {
	s.calls++
	s.gotConfig = cfg
	if s.fn != nil {
		return s.fn(ctx)
	}
	return fanoutResult(), nil
}

type stubAnalyzer struct {
	fn            func(ctx context.Context) (*models.DetailedAnalysis, error)
	gotInterviews []models.Interview
}

func (s *stubAnalyzer) Analyze(ctx context.Context, interviews []models.Interview, _ analysis.Options) (*models.DetailedAnalysis, error) {
	s.gotInterviews = interviews
	if s.fn != nil {
		return s.fn(ctx)
	}
	out := models.NewDetailedAnalysis()
	out.Status = "completed"
	out.Themes = append(out.Themes, models.Theme{Name: "Tooling friction", Frequency: 2})
	out.Insights = append(out.Insights, models.Insight{Title: "Automate the plan"})
	return out, nil
}

type stubAssembler struct {
	fn    func(ctx context.Context, analysisID int) (*models.Dataset, error)
	gotID int
}

func (s *stubAssembler) Assemble(ctx context.Context, analysisID int) (*models.Dataset, error) {
	s.gotID = analysisID
	if s.fn != nil {
		return s.fn(ctx, analysisID)
	}
	return &models.Dataset{
		ScopeID:    "scope-1",
		ScopeName:  "Persona dataset",
		Personas:   []models.DatasetPersona{{Name: "Maya", OverallConfidence: 0.8}},
		Interviews: []models.Interview{{PersonID: "p1"}},
		Quality:    models.DatasetQuality{InterviewCount: 1, StakeholderCoverage: 1, AvgPersonaQuality: 0.8},
	}, nil
}

type fakeSimulations struct {
	mu            sync.Mutex
	created       []string
	running       []string
	resultsFor    []string
	failedFor     []string
	failedWith    []error
	lastUser      string
	lastQuestions *models.Questionnaire
	lastConfig    models.SimulationConfig
	lastInsights  *models.SimulationInsights
	lastFormatted map[string]any
	createErr     error
	resultsErr    error
}

func (f *fakeSimulations) Create(_ context.Context, simulationID, userID string, _ models.BusinessBrief, questions *models.Questionnaire, config models.SimulationConfig) (*models.Simulation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, simulationID)
	f.lastUser = userID
	f.lastQuestions = questions
	f.lastConfig = config
	return &models.Simulation{SimulationID: simulationID, Status: models.SimulationStatusPending}, nil
}

func (f *fakeSimulations) MarkRunning(_ context.Context, simulationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = append(f.running, simulationID)
	return nil
}

func (f *fakeSimulations) UpdateResults(_ context.Context, simulationID string, _ []models.Persona, _ []models.Interview, insights *models.SimulationInsights, formatted map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resultsErr != nil {
		return f.resultsErr
	}
	f.resultsFor = append(f.resultsFor, simulationID)
	f.lastInsights = insights
	f.lastFormatted = formatted
	return nil
}

func (f *fakeSimulations) MarkFailed(_ context.Context, simulationID string, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failedFor = append(f.failedFor, simulationID)
	f.failedWith = append(f.failedWith, cause)
	return nil
}

type analysisInsert struct {
	simulationID *string
	results      *models.DetailedAnalysis
	provider     string
	model        string
	status       string
	cause        error
}

type fakeAnalysisRows struct {
	mu        sync.Mutex
	inserts   []analysisInsert
	insertErr error
	nextID    int
}

func (f *fakeAnalysisRows) Insert(_ context.Context, simulationID *string, results *models.DetailedAnalysis, provider, model, status string, cause error) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts = append(f.inserts, analysisInsert{
		simulationID: simulationID,
		results:      results,
		provider:     provider,
		model:        model,
		status:       status,
		cause:        cause,
	})
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.nextID++
	return 40 + f.nextID, nil
}

type orchestratorFixture struct {
	orch           *Orchestrator
	questionnaires *stubQuestionnaires
	interviews     *stubInterviews
	analyzer       *stubAnalyzer
	assembler      *stubAssembler
	simulations    *fakeSimulations
	analysisRows   *fakeAnalysisRows
}

func newOrchestratorFixture() *orchestratorFixture {
	f := &orchestratorFixture{
		questionnaires: &stubQuestionnaires{},
		interviews:     &stubInterviews{},
		analyzer:       &stubAnalyzer{},
		assembler:      &stubAssembler{},
		simulations:    &fakeSimulations{},
		analysisRows:   &fakeAnalysisRows{},
	}
	f.orch = NewOrchestrator(Deps{
		Questionnaires: f.questionnaires,
		Interviews:     f.interviews,
		Analyses:       f.analyzer,
		Datasets:       f.assembler,
		Simulations:    f.simulations,
		AnalysisRows:   f.analysisRows,
		Provider:       "gemini",
		Model:          "gemini-2.0-flash",
	})
	return f
}

func TestRunHappyPathCompletesAllStages(t *testing.T) {
	f := newOrchestratorFixture()

	out := f.orch.Run(context.Background(), runBrief(), models.DefaultSimulationConfig(), "user-1")

	assert.Equal(t, models.RunStatusCompleted, out.Status)
	require.Len(t, out.Trace, 4)
	for i, name := range models.StageOrder {
		assert.Equal(t, name, out.Trace[i].StageName)
		assert.Equal(t, models.StageStatusCompleted, out.Trace[i].Status)
		assert.Empty(t, out.Trace[i].Error)
	}

	assert.Equal(t, 2, out.StakeholderCount)
	assert.NotEmpty(t, out.SimulationID)
	assert.Equal(t, 41, out.AnalysisID)
	assert.Equal(t, 1, out.PersonaCount)
	assert.Equal(t, 1, out.InterviewCount)
	require.NotNil(t, out.Dataset)
	assert.GreaterOrEqual(t, out.TotalDurationSeconds, 0.0)

	assert.Equal(t, 2, out.Trace[0].Outputs["stakeholder_count"])
	assert.Equal(t, 3, out.Trace[0].Outputs["total_questions"])
	assert.Equal(t, out.SimulationID, out.Trace[1].Outputs["simulation_id"])
	assert.Equal(t, 1, out.Trace[1].Outputs["failed_interviews"])
	assert.Equal(t, 41, out.Trace[2].Outputs["analysis_id"])
	assert.Equal(t, 1, out.Trace[2].Outputs["theme_count"])
	assert.Equal(t, 1, out.Trace[3].Outputs["stakeholder_coverage"])

	assert.Equal(t, []string{out.SimulationID}, f.simulations.created)
	assert.Equal(t, []string{out.SimulationID}, f.simulations.running)
	assert.Equal(t, []string{out.SimulationID}, f.simulations.resultsFor)
	assert.Equal(t, "user-1", f.simulations.lastUser)
	require.NotNil(t, f.simulations.lastQuestions)
	require.NotNil(t, f.simulations.lastInsights)
	assert.NotEmpty(t, f.simulations.lastFormatted)

	require.Len(t, f.analysisRows.inserts, 1)
	insert := f.analysisRows.inserts[0]
	assert.Equal(t, "completed", insert.status)
	assert.Equal(t, "gemini", insert.provider)
	assert.Equal(t, "gemini-2.0-flash", insert.model)
	require.NotNil(t, insert.simulationID)
	assert.Equal(t, out.SimulationID, *insert.simulationID)
	require.NotNil(t, insert.results)

	assert.Equal(t, 41, f.assembler.gotID)
	require.Len(t, f.analyzer.gotInterviews, 1)
	assert.Equal(t, "p1", f.analyzer.gotInterviews[0].PersonID)
}

func TestRunQuestionnaireFailureSkipsEverything(t *testing.T) {
	f := newOrchestratorFixture()
	f.questionnaires.fn = func(context.Context) (*models.Questionnaire, error) {
		return nil, errors.New("gemini: 503")
	}

	out := f.orch.Run(context.Background(), runBrief(), models.DefaultSimulationConfig(), "")

	assert.Equal(t, models.RunStatusFailed, out.Status)
	require.Len(t, out.Trace, 4)
	assert.Equal(t, models.StageStatusFailed, out.Trace[0].Status)
	assert.Contains(t, out.Trace[0].Error, "503")
	assert.Equal(t, models.StageStatusSkipped, out.Trace[1].Status)
	assert.Equal(t, "Skipped because questionnaire did not complete.", out.Trace[1].Error)
	assert.Equal(t, models.StageStatusSkipped, out.Trace[2].Status)
	assert.Equal(t, "Skipped because simulation did not complete.", out.Trace[2].Error)
	assert.Equal(t, models.StageStatusSkipped, out.Trace[3].Status)
	assert.Equal(t, "Skipped because analysis did not complete.", out.Trace[3].Error)

	assert.Empty(t, f.simulations.created)
	assert.Empty(t, f.analysisRows.inserts)
	assert.Nil(t, out.Dataset)
}

func TestRunFanoutFailureIsPartial(t *testing.T) {
	f := newOrchestratorFixture()
	f.interviews.fn = func(context.Context) (*interview.Result, error) {
		return nil, errors.New("all interviews failed")
	}

	out := f.orch.Run(context.Background(), runBrief(), models.DefaultSimulationConfig(), "")

	assert.Equal(t, models.RunStatusPartial, out.Status)
	assert.Equal(t, models.StageStatusCompleted, out.Trace[0].Status)
	assert.Equal(t, models.StageStatusFailed, out.Trace[1].Status)
	assert.Equal(t, models.StageStatusSkipped, out.Trace[2].Status)
	assert.Equal(t, models.StageStatusSkipped, out.Trace[3].Status)

	// The record exists even though the stage failed.
	assert.NotEmpty(t, out.SimulationID)
	require.Len(t, f.simulations.failedFor, 1)
	assert.Equal(t, out.SimulationID, f.simulations.failedFor[0])
	assert.Zero(t, out.PersonaCount)
	assert.Empty(t, f.analysisRows.inserts)
}

func TestRunAnalysisFailureRecordsFailedRow(t *testing.T) {
	f := newOrchestratorFixture()
	f.analyzer.fn = func(context.Context) (*models.DetailedAnalysis, error) {
		return nil, errors.New("pattern_detection: gemini: 500")
	}

	out := f.orch.Run(context.Background(), runBrief(), models.DefaultSimulationConfig(), "")

	assert.Equal(t, models.RunStatusPartial, out.Status)
	assert.Equal(t, models.StageStatusFailed, out.Trace[2].Status)
	assert.Equal(t, models.StageStatusSkipped, out.Trace[3].Status)
	assert.Equal(t, "Skipped because analysis did not complete.", out.Trace[3].Error)
	assert.Zero(t, out.AnalysisID)

	require.Len(t, f.analysisRows.inserts, 1)
	insert := f.analysisRows.inserts[0]
	assert.Equal(t, "failed", insert.status)
	assert.Nil(t, insert.results)
	require.Error(t, insert.cause)
}

func TestRunExportFailureIsPartial(t *testing.T) {
	f := newOrchestratorFixture()
	f.assembler.fn = func(context.Context, int) (*models.Dataset, error) {
		return nil, errors.New("analysis 41 has no results")
	}

	out := f.orch.Run(context.Background(), runBrief(), models.DefaultSimulationConfig(), "")

	assert.Equal(t, models.RunStatusPartial, out.Status)
	assert.Equal(t, models.StageStatusFailed, out.Trace[3].Status)
	assert.Nil(t, out.Dataset)
	assert.Equal(t, 41, out.AnalysisID)
}

func TestRunEnvelopeInsertFailureFailsAnalysisStage(t *testing.T) {
	f := newOrchestratorFixture()
	f.analysisRows.insertErr = errors.New("connection refused")

	out := f.orch.Run(context.Background(), runBrief(), models.DefaultSimulationConfig(), "")

	assert.Equal(t, models.RunStatusPartial, out.Status)
	assert.Equal(t, models.StageStatusFailed, out.Trace[2].Status)
	assert.Contains(t, out.Trace[2].Error, "failed to store analysis results")
	assert.Equal(t, models.StageStatusSkipped, out.Trace[3].Status)
}

func TestRunCancellationFailsNextStage(t *testing.T) {
	f := newOrchestratorFixture()
	ctx, cancel := context.WithCancel(context.Background())
	f.questionnaires.fn = func(context.Context) (*models.Questionnaire, error) {
		cancel()
		return runQuestionnaire(), nil
	}

	out := f.orch.Run(ctx, runBrief(), models.DefaultSimulationConfig(), "")

	assert.Equal(t, models.RunStatusPartial, out.Status)
	assert.Equal(t, models.StageStatusCompleted, out.Trace[0].Status)
	assert.Equal(t, models.StageStatusFailed, out.Trace[1].Status)
	assert.Contains(t, out.Trace[1].Error, "cancelled before simulation")
	assert.Equal(t, models.StageStatusSkipped, out.Trace[2].Status)
	assert.Equal(t, models.StageStatusSkipped, out.Trace[3].Status)
	assert.Empty(t, f.simulations.created)
	assert.Zero(t, f.interviews.calls)
}

func TestRunSimulationStoresInsightsWhenRequested(t *testing.T) {
	f := newOrchestratorFixture()
	cfg := models.DefaultSimulationConfig()

	simID, res, err := f.orch.RunSimulation(context.Background(), runBrief(), runQuestionnaire(), cfg, "user-2")
	require.NoError(t, err)
	assert.NotEmpty(t, simID)
	require.NotNil(t, res)
	assert.Equal(t, "user-2", f.simulations.lastUser)
	require.NotNil(t, f.simulations.lastInsights)
	assert.Equal(t, 1, f.simulations.lastInsights.TotalInterviews)
	assert.Equal(t, 1, f.simulations.lastInsights.FailedInterviews)
	assert.NotEmpty(t, f.simulations.lastFormatted)
}

func TestRunSimulationSkipsInsightsWhenDisabled(t *testing.T) {
	f := newOrchestratorFixture()
	cfg := models.DefaultSimulationConfig()
	cfg.IncludeInsights = false

	_, _, err := f.orch.RunSimulation(context.Background(), runBrief(), runQuestionnaire(), cfg, "")
	require.NoError(t, err)
	assert.Nil(t, f.simulations.lastInsights)
	assert.NotEmpty(t, f.simulations.lastFormatted)
}

func TestRunSimulationCreateFailure(t *testing.T) {
	f := newOrchestratorFixture()
	f.simulations.createErr = errors.New("connection refused")

	simID, res, err := f.orch.RunSimulation(context.Background(), runBrief(), runQuestionnaire(), models.DefaultSimulationConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create simulation record")
	assert.Empty(t, simID)
	assert.Nil(t, res)
	assert.Zero(t, f.interviews.calls)
}

func TestRunSimulationFanoutFailureMarksRecordFailed(t *testing.T) {
	f := newOrchestratorFixture()
	cause := errors.New("all interviews failed")
	f.interviews.fn = func(context.Context) (*interview.Result, error) {
		return nil, cause
	}

	simID, res, err := f.orch.RunSimulation(context.Background(), runBrief(), runQuestionnaire(), models.DefaultSimulationConfig(), "")
	require.ErrorIs(t, err, cause)
	assert.NotEmpty(t, simID)
	assert.Nil(t, res)
	require.Len(t, f.simulations.failedWith, 1)
	assert.ErrorIs(t, f.simulations.failedWith[0], cause)
}

func TestRunSimulationResultWriteFailure(t *testing.T) {
	f := newOrchestratorFixture()
	f.simulations.resultsErr = errors.New("connection refused")

	simID, res, err := f.orch.RunSimulation(context.Background(), runBrief(), runQuestionnaire(), models.DefaultSimulationConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store simulation results")
	assert.NotEmpty(t, simID)
	assert.Nil(t, res)
}
