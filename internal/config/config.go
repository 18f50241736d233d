package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all environment backed configuration for the gateway.
type Config struct {
	// HTTP server
	Port string `env:"PORT" envDefault:"8080"`

	// Tenant store
	DatabaseURL        string        `env:"DATABASE_URL,notEmpty"`
	StoreLookupTimeout time.Duration `env:"STORE_LOOKUP_TIMEOUT" envDefault:"2s"`

	// Provider
	GeminiBaseURL   string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`

	// Chat
	HistoryMaxTurns int `env:"CHAT_HISTORY_MAX_TURNS" envDefault:"50"`

	// Owner-only key validation endpoint. Empty disables the route.
	OwnerAPISecret string `env:"OWNER_API_SECRET"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.HistoryMaxTurns <= 0 {
		return nil, fmt.Errorf("config: CHAT_HISTORY_MAX_TURNS must be positive, got %d", cfg.HistoryMaxTurns)
	}
	return cfg, nil
}
