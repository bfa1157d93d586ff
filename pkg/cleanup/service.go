// Package cleanup settles pipeline run rows abandoned by a crashed process.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/synthlab-ai/persim/pkg/config"
	"github.com/synthlab-ai/persim/pkg/services"
)

const sweepTimeout = 30 * time.Second

// Service periodically fails run rows that are still pending or running past
// the orphan age. Such rows were left behind by a process that died before
// persisting an outcome; no goroutine will ever finish them.
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	runs   *services.RunService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, runs *services.RunService) *Service {
	return &Service{
		config: cfg,
		runs:   runs,
	}
}

// Start launches the background sweep loop. The first sweep runs immediately
// so rows orphaned by the previous process settle at startup.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"orphan_run_age", s.config.OrphanRunAge,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	count, err := s.runs.FailOrphanedRuns(sweepCtx, s.config.OrphanRunAge)
	if err != nil {
		slog.Error("Retention: orphaned run sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Warn("Retention: settled orphaned runs", "count", count)
	}
}
