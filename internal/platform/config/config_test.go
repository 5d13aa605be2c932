package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/trust")
	t.Setenv("RECEIPT_PREFIX", "")
	t.Setenv("CURRENCY_CODE", "")
	t.Setenv("ACCOUNT_LOCK_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/trust", cfg.DatabaseURL)
	assert.Equal(t, "TR", cfg.ReceiptPrefix)
	assert.Equal(t, "ZAR", cfg.CurrencyCode)
	assert.Equal(t, defaultAccountLockTTL, cfg.AccountLockTTL)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_EmptyValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultMigrationsPath, cfg.MigrationsPath)
	assert.Equal(t, defaultRateLimit, cfg.RateLimit)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
}

func TestLoadConfig_CORSDefaultWhenUnset(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RECEIPT_PREFIX", " rc ")
	t.Setenv("CURRENCY_CODE", "usd")
	t.Setenv("ACCOUNT_LOCK_TTL", "3s")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "RC", cfg.ReceiptPrefix)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, 3*time.Second, cfg.AccountLockTTL)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidLockTTLFallsBack(t *testing.T) {
	t.Setenv("ACCOUNT_LOCK_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultAccountLockTTL, cfg.AccountLockTTL)
}
