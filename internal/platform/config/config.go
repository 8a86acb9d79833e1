// Package config loads server settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ccps_backend/internal/platform/db"
)

// EnvKeyJWTSecret is the environment variable holding the token signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

const (
	defaultPort          = "3000"
	defaultJWTExpiration = 2 * time.Hour
	defaultResetTTL      = 30 * time.Minute
	defaultFrontendURL   = "http://localhost:5173"
	defaultLoginLimit    = 10
	defaultLoginWindow   = time.Minute
	defaultJobsCacheTTL  = 5 * time.Minute
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds everything cmd/server needs to wire the application.
type Config struct {
	Port        string
	FrontendURL string

	DB db.Config

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret     string
	JWTIssuer     string
	JWTExpiration time.Duration

	ResetTokenExpiration time.Duration

	LoginRateLimit  int
	LoginRateWindow time.Duration

	JobsCacheTTL time.Duration

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// RedisEnabled reports whether a Redis host was configured.
func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Load reads the configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", defaultPort),
		FrontendURL:   getenv("FRONTEND_URL", defaultFrontendURL),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv(EnvKeyJWTSecret),
		JWTIssuer:     getenv("JWT_ISSUER", "ccps"),
		AdminName:     getenv("ADMIN_NAME", "Placement Admin"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		DB: db.Config{
			Driver:   getenv("DB_DRIVER", db.DriverPostgres),
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "ccps"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
			Path:     getenv("DB_PATH", "./ccps.db"),
			Migrate:  os.Getenv("RUN_MIGRATIONS") == "true",
		},
	}

	var err error
	if cfg.JWTExpiration, err = durationEnv("JWT_EXPIRATION", defaultJWTExpiration); err != nil {
		return Config{}, err
	}
	if cfg.ResetTokenExpiration, err = durationEnv("RESET_TOKEN_EXPIRATION", defaultResetTTL); err != nil {
		return Config{}, err
	}
	if cfg.LoginRateWindow, err = durationEnv("LOGIN_RATE_WINDOW", defaultLoginWindow); err != nil {
		return Config{}, err
	}
	if cfg.JobsCacheTTL, err = durationEnv("JOBS_CACHE_TTL", defaultJobsCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.LoginRateLimit, err = intEnv("LOGIN_RATE_LIMIT", defaultLoginLimit); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	if cfg.DB.Driver != db.DriverPostgres && cfg.DB.Driver != db.DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, v)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}
