package config

// Config is the umbrella configuration object resolved from the environment
// at startup and injected into the components that need it.
type Config struct {
	LLM       *LLMConfig
	Fanout    *FanoutConfig
	Server    *ServerConfig
	Auth      *AuthConfig
	Limits    *Limits
	Retention *RetentionConfig
}

// Load resolves the full configuration from environment variables.
// It fails when required settings (LLM credentials) are absent.
func Load() (*Config, error) {
	llm, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		LLM:       llm,
		Fanout:    loadFanoutConfig(),
		Server:    loadServerConfig(),
		Auth:      loadAuthConfig(),
		Limits:    loadLimits(),
		Retention: loadRetentionConfig(),
	}, nil
}
