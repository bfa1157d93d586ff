package config

import (
	"os"
	"strconv"
)

// Interview fanout bounds. The semaphore guarding interview LLM calls is
// sized by MaxConcurrent; values outside [1, 32] are clamped, not rejected,
// so a misconfigured deployment degrades instead of refusing to start.
const (
	DefaultMaxConcurrentInterviews = 12
	MinConcurrentInterviews        = 1
	MaxConcurrentInterviews        = 32
)

// FanoutConfig contains interview fanout configuration.
type FanoutConfig struct {
	// MaxConcurrent is the number of interviews allowed to be suspended on
	// LLM I/O simultaneously within one simulation.
	MaxConcurrent int
}

// DefaultFanoutConfig returns the built-in fanout defaults.
func DefaultFanoutConfig() *FanoutConfig {
	return &FanoutConfig{MaxConcurrent: DefaultMaxConcurrentInterviews}
}

func loadFanoutConfig() *FanoutConfig {
	cfg := DefaultFanoutConfig()
	if raw := os.Getenv("MAX_CONCURRENT_INTERVIEWS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.MaxConcurrent = n
		}
	}
	cfg.Clamp()
	return cfg
}

// Clamp forces MaxConcurrent into the supported range.
func (c *FanoutConfig) Clamp() {
	if c.MaxConcurrent < MinConcurrentInterviews {
		c.MaxConcurrent = MinConcurrentInterviews
	}
	if c.MaxConcurrent > MaxConcurrentInterviews {
		c.MaxConcurrent = MaxConcurrentInterviews
	}
}
