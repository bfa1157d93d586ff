// Package api exposes the research pipeline over HTTP: questionnaire
// generation, synchronous simulations, analysis, dataset exports, and the
// async pipeline job surface, plus health and Prometheus endpoints.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/synthlab-ai/persim/pkg/analysis"
	"github.com/synthlab-ai/persim/pkg/config"
	"github.com/synthlab-ai/persim/pkg/database"
	"github.com/synthlab-ai/persim/pkg/dataset"
	"github.com/synthlab-ai/persim/pkg/llm"
	"github.com/synthlab-ai/persim/pkg/metrics"
	"github.com/synthlab-ai/persim/pkg/pipeline"
	"github.com/synthlab-ai/persim/pkg/questionnaire"
	"github.com/synthlab-ai/persim/pkg/services"
)

// Deps bundles everything the HTTP server serves. Nil entries disable the
// endpoints that need them (they answer 503), which keeps handler tests free
// to construct partial servers.
type Deps struct {
	Config *config.Config
	DB     *database.Client
	LLM    *llm.Client

	Questionnaires *questionnaire.Builder
	Analysis       *analysis.Pipeline
	Datasets       *dataset.Assembler

	Simulations *services.SimulationService
	Analyses    *services.AnalysisService

	Orchestrator *pipeline.Orchestrator
	Registry     *pipeline.Registry

	Metrics *metrics.Exporter
}

// Server is the HTTP front door.
type Server struct {
	deps   Deps
	engine *gin.Engine
	http   *http.Server
	logger *slog.Logger
}

// NewServer builds the router and wires all routes.
func NewServer(deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		deps:   deps,
		logger: slog.With("component", "api"),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(s.logger))
	engine.Use(securityHeaders())

	engine.GET("/health", s.healthHandler)
	if deps.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	mutating := requireBearer(deps.Config)

	engine.POST("/questionnaires", mutating, s.createQuestionnaireHandler)

	engine.POST("/simulations", mutating, s.runSimulationHandler)
	engine.GET("/simulations", s.listSimulationsHandler)
	engine.GET("/simulations/:id", s.getSimulationHandler)

	engine.POST("/analysis", mutating, s.runAnalysisHandler)
	engine.GET("/analysis/:id", s.getAnalysisHandler)

	engine.POST("/exports/persona-dataset", mutating, s.exportDatasetHandler)

	engine.POST("/responses/preview", mutating, s.previewResponseHandler)

	p := engine.Group("/pipeline")
	p.POST("/run-async", mutating, s.submitRunHandler)
	p.GET("/jobs/:id", s.getJobHandler)
	p.POST("/jobs/:id/cancel", mutating, s.cancelJobHandler)
	p.GET("/runs", s.listRunsHandler)
	p.GET("/runs/:id", s.getRunHandler)

	s.engine = engine
	s.http = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the HTTP server on addr and blocks until shutdown or failure.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests bind port 0 first
// and read the assigned address back before starting the server.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
