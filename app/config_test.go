package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USER", "shop@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "owner@example.com")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)
	for _, key := range []string{"SMTP_FROM", "SMTP_TIMEOUT", "PORT", "DATABASE_URL", "CATALOG_PATH", "ASSETS_DIR", "LOGO_PATH", "CACHE_DIR", "SESSION_COOKIE_SECURE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "shop@example.com", cfg.SMTPFrom)
	assert.Equal(t, 10*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "cache/images", cfg.CacheDir)
	assert.Equal(t, "images/logo.png", cfg.LogoPath)
	assert.False(t, cfg.SecureCookie)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_FROM", "noreply@example.com")
	t.Setenv("SMTP_TIMEOUT", "3s")
	t.Setenv("PORT", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/mkwm")
	t.Setenv("SESSION_COOKIE_SECURE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "noreply@example.com", cfg.SMTPFrom)
	assert.Equal(t, 3*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/mkwm", cfg.DatabaseURL)
	assert.True(t, cfg.SecureCookie)
}

func TestLoadConfig_ReportsAllMissing(t *testing.T) {
	for _, key := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL"} {
		t.Setenv(key, "")
	}

	_, err := LoadConfig()
	require.Error(t, err)
	for _, key := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_PORT", "smtp")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SMTP_PORT")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("nonsense")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
