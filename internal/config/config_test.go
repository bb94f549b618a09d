package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORTFOLIO_DATABASE_URL", "postgres://localhost:5432/portfolio")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Portfolio API", cfg.AppName)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	require.Equal(t, time.Minute, cfg.ListCacheTTL)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, "Portfolio Contact", cfg.SMTPFromName)
	require.Equal(t, 10*time.Second, cfg.MailTimeout)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORTFOLIO_DATABASE_URL", "postgres://localhost:5432/portfolio")
	t.Setenv("PORTFOLIO_APP_PORT", "9090")
	t.Setenv("PORTFOLIO_CORS_ORIGINS", "https://example.com, https://www.example.com")
	t.Setenv("PORTFOLIO_SMTP_HOST", "smtp.example.com")
	t.Setenv("PORTFOLIO_SMTP_USER", "mailer")
	t.Setenv("PORTFOLIO_SMTP_PASSWORD", "secret")
	t.Setenv("PORTFOLIO_SMTP_FROM_EMAIL", "owner@example.com")
	t.Setenv("PORTFOLIO_MAIL_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AllowedOrigins)
	require.Equal(t, "smtp.example.com", cfg.SMTPHost)
	require.Equal(t, "owner@example.com", cfg.SMTPFromEmail)
	require.Equal(t, 3*time.Second, cfg.MailTimeout)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	require.NoError(t, os.Unsetenv("PORTFOLIO_DATABASE_URL"))

	_, err := Load()
	require.Error(t, err)
}
