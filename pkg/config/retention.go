package config

import (
	"os"
	"strconv"
	"time"
)

// Retention defaults. OrphanRunAge must exceed the longest legitimate run,
// otherwise the sweeper fails jobs that are still executing in another pod.
const (
	DefaultOrphanRunAge  = time.Hour
	DefaultSweepInterval = 15 * time.Minute
)

// RetentionConfig tunes the background sweeper that settles run rows left
// pending or running by a crashed process.
type RetentionConfig struct {
	// OrphanRunAge is how old a non-terminal run row must be before it is
	// considered abandoned.
	OrphanRunAge time.Duration

	// SweepInterval is the pause between sweeps. The first sweep runs at
	// startup.
	SweepInterval time.Duration
}

func loadRetentionConfig() *RetentionConfig {
	cfg := &RetentionConfig{
		OrphanRunAge:  DefaultOrphanRunAge,
		SweepInterval: DefaultSweepInterval,
	}
	if raw := os.Getenv("ORPHAN_RUN_AGE_MINUTES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.OrphanRunAge = time.Duration(n) * time.Minute
		}
	}
	if raw := os.Getenv("RETENTION_SWEEP_INTERVAL_MINUTES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.SweepInterval = time.Duration(n) * time.Minute
		}
	}
	return cfg
}
