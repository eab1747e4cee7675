// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is loaded once in main and
// passed down explicitly.
type Config struct {
	Env  string
	Port string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Identity tokens are issued by the hosted auth provider; we only verify.
	AuthJWTSecret string
	AuthJWTIssuer string

	DefaultCurrency string

	// Market quotes
	QuoteRefreshSpec     string
	MarketRequestTimeout time.Duration
	MarketRateLimit      int
	CoinGeckoURL         string
	YahooURL             string
	QuoteCurrency        string

	RefreshAPIKey string
}

// Load reads .env when present, then the environment, applying defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "wealthtrack"),
		DBPassword: getEnv("DB_PASSWORD", "wealthtrack"),
		DBName:     getEnv("DB_NAME", "wealthtrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "wealthtrack.db"),

		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		AuthJWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),

		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "INR")),

		QuoteRefreshSpec: getEnv("QUOTE_REFRESH_SPEC", "@every 10m"),
		CoinGeckoURL:     os.Getenv("COINGECKO_URL"),
		YahooURL:         os.Getenv("YAHOO_URL"),
		QuoteCurrency:    strings.ToLower(getEnv("QUOTE_CURRENCY", "inr")),

		RefreshAPIKey: os.Getenv("QUOTE_REFRESH_API_KEY"),
	}

	timeout, err := time.ParseDuration(getEnv("MARKET_REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid MARKET_REQUEST_TIMEOUT: %w", err)
	}
	cfg.MarketRequestTimeout = timeout

	limit, err := strconv.Atoi(getEnv("MARKET_RATE_LIMIT", "2"))
	if err != nil || limit <= 0 {
		return Config{}, fmt.Errorf("invalid MARKET_RATE_LIMIT %q", os.Getenv("MARKET_RATE_LIMIT"))
	}
	cfg.MarketRateLimit = limit

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AuthJWTSecret == "" && c.IsProduction() {
		return fmt.Errorf("AUTH_JWT_SECRET is required in production")
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// PostgresDSN returns the key/value DSN used by gorm.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the URL form used by golang-migrate.
func (c Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
