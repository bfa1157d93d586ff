package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadAPIKeyFallback(t *testing.T) {
	tests := []struct {
		name      string
		geminiKey string
		googleKey string
		wantKey   string
	}{
		{
			name:      "gemini key preferred",
			geminiKey: "gk-123",
			googleKey: "gg-456",
			wantKey:   "gk-123",
		},
		{
			name:      "google key fallback",
			geminiKey: "",
			googleKey: "gg-456",
			wantKey:   "gg-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", tt.geminiKey)
			t.Setenv("GOOGLE_API_KEY", tt.googleKey)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, cfg.LLM.APIKey)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultGeminiModel, cfg.LLM.Model)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, 300*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 8192, cfg.LLM.MaxOutputTokens)
	assert.Equal(t, 12, cfg.Fanout.MaxConcurrent)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.False(t, cfg.Auth.RequireAuth)
	assert.Equal(t, 10, cfg.Limits.MaxPersonas)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-123")
	t.Setenv("LLM_TIMEOUT_SECONDS", "banana")

	_, err := Load()
	require.Error(t, err)

	var vErr *ValueError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "LLM_TIMEOUT_SECONDS", vErr.Variable)
}

func TestFanoutClamp(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "below range", in: 0, want: 1},
		{name: "negative", in: -3, want: 1},
		{name: "in range", in: 12, want: 12},
		{name: "lower bound", in: 1, want: 1},
		{name: "upper bound", in: 32, want: 32},
		{name: "above range", in: 100, want: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &FanoutConfig{MaxConcurrent: tt.in}
			cfg.Clamp()
			assert.Equal(t, tt.want, cfg.MaxConcurrent)
		})
	}
}

func TestLoadFanoutFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-123")
	t.Setenv("MAX_CONCURRENT_INTERVIEWS", "64")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, MaxConcurrentInterviews, cfg.Fanout.MaxConcurrent)
}

func TestLoadAuthToggle(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-123")
	t.Setenv("ENABLE_CLERK_VALIDATION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.RequireAuth)
}
