package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-chars-long"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3100, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "shop", cfg.Database.Name)
	assert.Equal(t, 5, cfg.Database.TimeoutSeconds)
	assert.Equal(t, 3600, cfg.Auth.TokenLifetimeSeconds)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", testSecret)
	t.Setenv("SHOP_SERVER_PORT", "8080")
	t.Setenv("SHOP_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SHOP_DATABASE_NAME", "shop_test")
	t.Setenv("SHOP_AUTH_TOKEN_LIFETIME_SECONDS", "120")
	t.Setenv("SHOP_SERVER_SHUTDOWN_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "shop_test", cfg.Database.Name)
	assert.Equal(t, 120, cfg.Auth.TokenLifetimeSeconds)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeoutSeconds)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	// No SHOP_AUTH_JWT_SECRET: the secret has no default by design.
	t.Setenv("SHOP_AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", testSecret)
	t.Setenv("SHOP_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid configuration"))
}
