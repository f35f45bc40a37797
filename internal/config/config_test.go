package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_PROVIDER", "")
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "", cfg.Session.Provider)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "analytics")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("NOTIFICATIONS_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, ,https://admin.example.com")
	t.Setenv("SESSION_TIMEOUT", "2s")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Session.Timeout)
	assert.Contains(t, cfg.DSN(), "dbname=analytics")
	assert.Contains(t, cfg.URL(), "@db.internal:5432/analytics")
}
