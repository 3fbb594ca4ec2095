package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel     slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	GameStateTTL time.Duration `env:"GAMESTATE_TTL" envDefault:"1h"`
	HistoryLimit int           `env:"HISTORY_LIMIT" envDefault:"20"`
	PreviewMode  bool          `env:"PREVIEW_MODE" envDefault:"false"` // Show untriggered directive placeholders
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HistoryLimit < 0 {
		return nil, fmt.Errorf("HISTORY_LIMIT must not be negative, got %d", cfg.HistoryLimit)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
