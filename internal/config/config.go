// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		LogLevel   string `json:"log_level"`
	} `json:"database"`
	Session struct {
		// Provider selects the identity provider: "jwt" or "remote".
		Provider   string        `json:"provider"`
		RemoteURL  string        `json:"remote_url"`
		CookieName string        `json:"cookie_name"`
		Timeout    time.Duration `json:"timeout"`
	} `json:"session"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port           string        `json:"port"`
		ReadTimeout    time.Duration `json:"read_timeout"`
		WriteTimeout   time.Duration `json:"write_timeout"`
		AllowedOrigins []string      `json:"allowed_origins"`
	} `json:"server"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Notifications struct {
		Enabled  bool   `json:"enabled"`
		Provider string `json:"provider"`
	} `json:"notifications"`
	Sentry struct {
		DSN         string `json:"dsn"`
		Environment string `json:"environment"`
	} `json:"sentry"`
	BaseURL string `json:"base_url"`
}

const (
	SessionProviderJWT    = "jwt"
	SessionProviderRemote = "remote"
)

func Load() *Config {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "vizboard")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")
	cfg.Database.LogLevel = getEnv("DB_LOG_LEVEL", "warn")

	// Session resolution
	cfg.Session.Provider = getEnv("SESSION_PROVIDER", SessionProviderJWT)
	cfg.Session.RemoteURL = getEnv("SESSION_REMOTE_URL", "http://localhost:3000")
	cfg.Session.CookieName = getEnv("SESSION_COOKIE", "vizboard_session")
	cfg.Session.Timeout = getDuration("SESSION_TIMEOUT", 5*time.Second)

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = getDuration("JWT_EXPIRY", time.Hour*24)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "https://*,http://*"))

	// Email
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.Port = getInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	cfg.Notifications.Enabled = getBool("NOTIFICATIONS_ENABLED", false)
	cfg.Notifications.Provider = getEnv("NOTIFICATIONS_PROVIDER", "sendgrid")

	cfg.Sentry.DSN = getEnv("SENTRY_DSN", "")
	cfg.Sentry.Environment = getEnv("SENTRY_ENVIRONMENT", "development")

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:3000")

	return cfg
}

// DSN returns the key/value connection string understood by both the gorm
// postgres driver and lib/pq.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// URL returns the database location as a postgres:// URL, the form pgxpool expects.
func (c *Config) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
