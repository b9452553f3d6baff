package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.Equal(t, 2, cfg.AI.Retries)
	assert.Equal(t, 1500*time.Millisecond, cfg.AI.InitialDelay)
	assert.Equal(t, 60*time.Second, cfg.AI.MaxDelay)
	assert.Equal(t, 30*time.Minute, cfg.AI.BreakerWindow)
	assert.Equal(t, 2*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AI_RETRIES", "4")
	t.Setenv("SYNC_DEBOUNCE", "500ms")
	t.Setenv("AUTH_JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 4, cfg.AI.Retries)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoadRejectsNegativeRetries(t *testing.T) {
	t.Setenv("AI_RETRIES", "-1")
	_, err := Load()
	assert.Error(t, err)
}
