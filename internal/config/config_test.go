package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mvaldren/inkwell/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr)
	}
	if cfg.DBPath != "inkwell.db" {
		t.Fatalf("expected inkwell.db, got %s", cfg.DBPath)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "32 characters") {
		t.Fatalf("expected short-secret error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("expected /tmp/other.db, got %s", cfg.DBPath)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("expected bcrypt cost 4, got %d", cfg.BcryptCost)
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies when COOKIE_SECURE=false")
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("BCRYPT_COST", "20")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for out-of-range BCRYPT_COST")
	}
}
