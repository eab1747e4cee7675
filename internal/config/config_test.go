package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		t.Setenv("MARKET_REQUEST_TIMEOUT", "")
		t.Setenv("MARKET_RATE_LIMIT", "")
		t.Setenv("DEFAULT_CURRENCY", "")
		t.Setenv("ENV", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBDriver != "postgres" {
			t.Errorf("expected postgres driver, got %q", cfg.DBDriver)
		}
		if cfg.DefaultCurrency != "INR" {
			t.Errorf("expected INR, got %q", cfg.DefaultCurrency)
		}
		if cfg.MarketRequestTimeout != 10*time.Second {
			t.Errorf("expected 10s timeout, got %v", cfg.MarketRequestTimeout)
		}
		if cfg.MarketRateLimit != 2 {
			t.Errorf("expected rate limit 2, got %d", cfg.MarketRateLimit)
		}
		if cfg.QuoteRefreshSpec != "@every 10m" {
			t.Errorf("unexpected refresh spec %q", cfg.QuoteRefreshSpec)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("DEFAULT_CURRENCY", "usd")
		t.Setenv("QUOTE_CURRENCY", "USD")
		t.Setenv("MARKET_REQUEST_TIMEOUT", "3s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBDriver != "sqlite" || cfg.DefaultCurrency != "USD" || cfg.QuoteCurrency != "usd" {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.MarketRequestTimeout != 3*time.Second {
			t.Errorf("expected 3s, got %v", cfg.MarketRequestTimeout)
		}
	})

	t.Run("invalid_driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})

	t.Run("invalid_timeout", func(t *testing.T) {
		t.Setenv("MARKET_REQUEST_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for bad duration")
		}
	})

	t.Run("production_requires_secret", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("AUTH_JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatal("expected error without secret")
		}
	})
}

func TestPostgresURL(t *testing.T) {
	cfg := Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	if got := cfg.PostgresURL(); got != "postgres://u:p@h:5432/d?sslmode=disable" {
		t.Errorf("unexpected url %q", got)
	}
}
