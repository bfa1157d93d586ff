package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Gemini defaults. The base URL is overridable so tests and proxies can
// point the gateway at a local endpoint.
const (
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	defaultLLMTimeout      = 300 * time.Second
	defaultMaxOutputTokens = 8192
)

// LLMConfig holds resolved LLM gateway configuration.
type LLMConfig struct {
	// APIKey is read from GEMINI_API_KEY, falling back to GOOGLE_API_KEY.
	APIKey string

	// Model name, e.g. "gemini-2.0-flash".
	Model string

	// BaseURL of the generative language API.
	BaseURL string

	// Timeout applies per LLM call.
	Timeout time.Duration

	// MaxOutputTokens caps each generation.
	MaxOutputTokens int
}

func loadLLMConfig() (*LLMConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := defaultLLMTimeout
	if raw := os.Getenv("LLM_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, NewValueError("LLM_TIMEOUT_SECONDS", raw, fmt.Errorf("%w: want a positive integer", ErrInvalidValue))
		}
		timeout = time.Duration(secs) * time.Second
	}

	maxTokens := defaultMaxOutputTokens
	if raw := os.Getenv("LLM_MAX_OUTPUT_TOKENS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, NewValueError("LLM_MAX_OUTPUT_TOKENS", raw, fmt.Errorf("%w: want a positive integer", ErrInvalidValue))
		}
		maxTokens = n
	}

	return &LLMConfig{
		APIKey:          apiKey,
		Model:           getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel),
		BaseURL:         getEnvOrDefault("GEMINI_BASE_URL", DefaultGeminiBaseURL),
		Timeout:         timeout,
		MaxOutputTokens: maxTokens,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
