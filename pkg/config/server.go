package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port int

	// ShutdownTimeout caps how long graceful shutdown waits for in-flight
	// pipeline jobs before abandoning them.
	ShutdownTimeout time.Duration

	// LogLevel is the slog level name: debug, info, warn, error.
	LogLevel string
}

func loadServerConfig() *ServerConfig {
	port := 8000
	if raw := os.Getenv("PORT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < 65536 {
			port = n
		}
	}
	shutdown := 30 * time.Second
	if raw := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			shutdown = time.Duration(n) * time.Second
		}
	}
	return &ServerConfig{
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		Port:            port,
		ShutdownTimeout: shutdown,
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// AuthConfig toggles the bearer-token middleware. Token verification itself
// is delegated to the fronting proxy; the middleware only requires presence.
type AuthConfig struct {
	RequireAuth bool
}

func loadAuthConfig() *AuthConfig {
	return &AuthConfig{
		RequireAuth: os.Getenv("ENABLE_CLERK_VALIDATION") == "true",
	}
}

// Limits holds request-level caps.
type Limits struct {
	// MaxPersonas is the per-request upper bound on people_per_stakeholder.
	MaxPersonas int
}

func loadLimits() *Limits {
	maxPersonas := 10
	if raw := os.Getenv("MAX_PERSONAS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 10 {
			maxPersonas = n
		}
	}
	return &Limits{MaxPersonas: maxPersonas}
}
