package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds database configuration. When URL is set it takes precedence
// over the discrete host/port fields.
type Config struct {
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN renders the pgx-compatible connection string.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// DatabaseName returns the database name, parsing it out of URL form
// when needed (golang-migrate wants it separately).
func (c Config) DatabaseName() string {
	if c.URL == "" {
		return c.Database
	}
	if u, err := url.Parse(c.URL); err == nil && len(u.Path) > 1 {
		return u.Path[1:]
	}
	return c.Database
}

// LoadConfigFromEnv loads database configuration from environment variables.
// DATABASE_URL wins when present; otherwise the discrete DB_* variables apply.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		URL:             os.Getenv("DATABASE_URL"),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxOpen, err := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	maxIdle, err := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	cfg.Host = getEnvOrDefault("DB_HOST", "localhost")
	cfg.Port = port
	cfg.User = getEnvOrDefault("DB_USER", "persim")
	cfg.Password = os.Getenv("DB_PASSWORD")
	cfg.Database = getEnvOrDefault("DB_NAME", "persim")
	cfg.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
	cfg.MaxOpenConns = maxOpen
	cfg.MaxIdleConns = maxIdle

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
