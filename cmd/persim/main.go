// Persim research server — provides the HTTP API, runs synthetic interview
// simulations, and supervises background pipeline jobs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/synthlab-ai/persim/pkg/analysis"
	"github.com/synthlab-ai/persim/pkg/api"
	"github.com/synthlab-ai/persim/pkg/cleanup"
	"github.com/synthlab-ai/persim/pkg/config"
	"github.com/synthlab-ai/persim/pkg/database"
	"github.com/synthlab-ai/persim/pkg/dataset"
	"github.com/synthlab-ai/persim/pkg/interview"
	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/pipeline"
	"github.com/synthlab-ai/persim/pkg/questionnaire"
	"github.com/synthlab-ai/persim/pkg/services"
	"github.com/synthlab-ai/persim/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Load .env file when present; a deployment without one runs on the
	// ambient environment.
	envPath := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Resolve configuration. Missing LLM credentials are fatal before
	// anything binds or connects.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Server.LogLevel),
	})))

	slog.Info("Starting persim",
		"version", version.Full(),
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"model", cfg.LLM.Model)

	// 2. Connect to PostgreSQL and apply pending migrations.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services over the shared Ent client.
	simulationService := services.NewSimulationService(dbClient.Client)
	analysisService := services.NewAnalysisService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. LLM gateway and the four stage components.
	llmClient := llm.NewClient(cfg.LLM)

	questionnaireBuilder := questionnaire.NewBuilder(llmClient)
	interviewEngine := interview.NewEngine(llmClient, interview.NewCache(), cfg.Fanout.MaxConcurrent)
	analysisPipeline := analysis.NewPipeline(llmClient)
	datasetAssembler := dataset.NewAssembler(analysisService, simulationService)

	// 5. Orchestrator and the background job registry.
	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Questionnaires: questionnaireBuilder,
		Interviews:     interviewEngine,
		Analyses:       analysisPipeline,
		Datasets:       datasetAssembler,
		Simulations:    simulationService,
		AnalysisRows:   analysisService,
		Provider:       llmClient.Provider(),
		Model:          llmClient.Model(),
	})
	registry := pipeline.NewRegistry(orchestrator, runService)

	// Settle run rows orphaned by a previous process and keep sweeping.
	sweeper := cleanup.NewService(cfg.Retention, runService)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 6. Metrics exporter with its private Prometheus registry.
	exporter, err := metrics.NewExporter()
	if err != nil {
		slog.Error("Failed to initialize metrics exporter", "error", err)
		os.Exit(1)
	}

	// 7. HTTP server.
	httpServer := api.NewServer(api.Deps{
		Config:         cfg,
		DB:             dbClient,
		LLM:            llmClient,
		Questionnaires: questionnaireBuilder,
		Analysis:       analysisPipeline,
		Datasets:       datasetAssembler,
		Simulations:    simulationService,
		Analyses:       analysisService,
		Orchestrator:   orchestrator,
		Registry:       registry,
		Metrics:        exporter,
	})

	// 8. Start HTTP server (non-blocking).
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Persim started successfully",
		"max_concurrent_interviews", cfg.Fanout.MaxConcurrent)

	// 9. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop job intake and wait for in-flight pipeline
	// runs, then drain the HTTP server with its own timeout budget.
	jobCtx, jobCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer jobCancel()
	if err := registry.Shutdown(jobCtx); err != nil {
		slog.Warn("Job registry shutdown timeout exceeded, abandoning in-flight runs", "error", err)
	} else {
		slog.Info("Job registry stopped gracefully")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
