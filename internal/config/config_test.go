package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "REDIS_URL", "GAMESTATE_TTL", "HISTORY_LIMIT", "PREVIEW_MODE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.GameStateTTL)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.False(t, cfg.PreviewMode)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("GAMESTATE_TTL", "90m")
	t.Setenv("HISTORY_LIMIT", "8")
	t.Setenv("PREVIEW_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, 90*time.Minute, cfg.GameStateTTL)
	assert.Equal(t, 8, cfg.HistoryLimit)
	assert.True(t, cfg.PreviewMode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad level", "LOG_LEVEL", "loud"},
		{"bad ttl", "GAMESTATE_TTL", "forever"},
		{"bad history", "HISTORY_LIMIT", "many"},
		{"negative history", "HISTORY_LIMIT", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
