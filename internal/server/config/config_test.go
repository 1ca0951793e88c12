package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "tradeify.db", cfg.DBPath)
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenTTL)
	assert.True(t, cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("TRADEIFY_ADDR", ":9090")
	t.Setenv("TRADEIFY_JWT_SECRET", "env-secret")
	t.Setenv("TRADEIFY_TOKEN_TTL", "1h")
	t.Setenv("TRADEIFY_SEED", "false")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.False(t, cfg.Seed)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TRADEIFY_ADDR", ":9090")
	t.Setenv("TRADEIFY_DB_PATH", "env.db")

	cfg, err := Load([]string{"-a", ":7070", "-d", "flag.db", "-t", "30m"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "flag.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TRADEIFY_TOKEN_TTL", "not-a-duration")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_InvalidSeedEnv(t *testing.T) {
	t.Setenv("TRADEIFY_SEED", "maybe")

	_, err := Load(nil)
	assert.Error(t, err)
}
