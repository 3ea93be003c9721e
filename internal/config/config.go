// Package config loads process configuration once at startup. Values come
// from the environment, with an optional .env file for local development;
// the resulting Config is immutable for the process lifetime.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBPath       string
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
	CookieSecure bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present. It fails when the JWT secret
// is missing or too short, or when a numeric value is out of range.
func Load() (Config, error) {
	// Ignore a missing .env; real environments set variables directly.
	_ = godotenv.Load()

	cfg := Config{
		Addr:         ":" + envString("PORT", "8080"),
		DBPath:       envString("DATABASE_PATH", "inkwell.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     envDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:   10,
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
