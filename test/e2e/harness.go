// Package e2e provides end-to-end test infrastructure for the persim pipeline.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/synthlab-ai/persim/ent"
	"github.com/synthlab-ai/persim/pkg/analysis"
	"github.com/synthlab-ai/persim/pkg/api"
	"github.com/synthlab-ai/persim/pkg/config"
	"github.com/synthlab-ai/persim/pkg/database"
	"github.com/synthlab-ai/persim/pkg/dataset"
	"github.com/synthlab-ai/persim/pkg/interview"
	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/pipeline"
	"github.com/synthlab-ai/persim/pkg/questionnaire"
	"github.com/synthlab-ai/persim/pkg/services"
	testdb "github.com/synthlab-ai/persim/test/database"
)

// TestApp boots a complete persim instance for e2e testing: a real HTTP
// server, a real PostgreSQL test database, and a MockGemini standing in for
// the model provider.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test wiring
	Gemini *MockGemini

	// Real components
	LLMClient    *llm.Client
	Simulations  *services.SimulationService
	Analyses     *services.AnalysisService
	Runs         *services.RunService
	Orchestrator *pipeline.Orchestrator
	Registry     *pipeline.Registry
	Server       *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	gemini        *MockGemini
	maxConcurrent int
	llmTimeout    time.Duration
	requireAuth   bool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithGemini injects a pre-scripted mock provider.
func WithGemini(m *MockGemini) TestAppOption {
	return func(c *testAppConfig) { c.gemini = m }
}

// WithMaxConcurrent bounds the interview fanout semaphore.
func WithMaxConcurrent(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxConcurrent = n }
}

// WithLLMTimeout sets the per-call gateway timeout. Cancellation tests raise
// it so a blocked call is interrupted by the job context, never the timeout.
func WithLLMTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.llmTimeout = d }
}

// WithAuthRequired turns on the bearer-token middleware for mutating routes.
func WithAuthRequired() TestAppOption {
	return func(c *testAppConfig) { c.requireAuth = true }
}

// NewTestApp creates and starts a full persim test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	// Apply options.
	tc := &testAppConfig{
		maxConcurrent: 8,
		llmTimeout:    30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.gemini == nil {
		tc.gemini = NewMockGemini(t)
	}

	cfg := testConfig(tc)

	// 1. Database — per-test schema, migrated, dropped on cleanup.
	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	// 2. Persistence services.
	simulationService := services.NewSimulationService(entClient)
	analysisService := services.NewAnalysisService(entClient)
	runService := services.NewRunService(entClient)

	// 3. LLM gateway pointed at the mock provider.
	llmClient := llm.NewClient(cfg.LLM)

	// 4. Pipeline stages.
	builder := questionnaire.NewBuilder(llmClient)
	engine := interview.NewEngine(llmClient, interview.NewCache(), cfg.Fanout.MaxConcurrent)
	analysisPipeline := analysis.NewPipeline(llmClient)
	assembler := dataset.NewAssembler(analysisService, simulationService)

	// 5. Orchestrator and job registry.
	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Questionnaires: builder,
		Interviews:     engine,
		Analyses:       analysisPipeline,
		Datasets:       assembler,
		Simulations:    simulationService,
		AnalysisRows:   analysisService,
		Provider:       llmClient.Provider(),
		Model:          llmClient.Model(),
	})
	registry := pipeline.NewRegistry(orchestrator, runService)

	// 6. Metrics exporter.
	exporter, err := metrics.NewExporter()
	require.NoError(t, err)

	// 7. HTTP server on a random port.
	server := api.NewServer(api.Deps{
		Config:         cfg,
		DB:             dbClient,
		LLM:            llmClient,
		Questionnaires: builder,
		Analysis:       analysisPipeline,
		Datasets:       assembler,
		Simulations:    simulationService,
		Analyses:       analysisService,
		Orchestrator:   orchestrator,
		Registry:       registry,
		Metrics:        exporter,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:       cfg,
		DBClient:     dbClient,
		EntClient:    entClient,
		Gemini:       tc.gemini,
		LLMClient:    llmClient,
		Simulations:  simulationService,
		Analyses:     analysisService,
		Runs:         runService,
		Orchestrator: orchestrator,
		Registry:     registry,
		Server:       server,
		BaseURL:      fmt.Sprintf("http://%s", ln.Addr().String()),
		t:            t,
	}

	// Register cleanup in reverse-creation order. The registry drains first so
	// no job goroutine touches the database after its schema is dropped.
	t.Cleanup(func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = registry.Shutdown(drainCtx)
		shutdownCtx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = server.Shutdown(shutdownCtx)
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// testConfig builds the resolved configuration the components get in
// production, with the gateway pointed at the mock provider.
func testConfig(tc *testAppConfig) *config.Config {
	return &config.Config{
		LLM: &config.LLMConfig{
			APIKey:          "test-key",
			Model:           config.DefaultGeminiModel,
			BaseURL:         tc.gemini.URL(),
			Timeout:         tc.llmTimeout,
			MaxOutputTokens: 4096,
		},
		Fanout: &config.FanoutConfig{MaxConcurrent: tc.maxConcurrent},
		Server: &config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ShutdownTimeout: 10 * time.Second,
			LogLevel:        "info",
		},
		Auth:   &config.AuthConfig{RequireAuth: tc.requireAuth},
		Limits: &config.Limits{MaxPersonas: 10},
	}
}
