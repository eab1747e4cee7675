package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wealthtrack/internal/config"
	"wealthtrack/internal/database"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/market"
	"wealthtrack/internal/server"
)

// @title           WealthTrack API
// @version         1.0
// @description     WealthTrack tracks income, expenses, budgets, savings goals and investments, and projects a portfolio forward.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate("migrations"); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	quotes := newQuoteService(appConfig)

	refresher, err := market.StartRefresher(quotes, appConfig.QuoteRefreshSpec, appConfig.MarketRequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to schedule quote refresh: %w", err)
	}
	defer refresher.Stop()

	// Warm the cache so the first clients see prices.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), appConfig.MarketRequestTimeout)
		defer cancel()
		if _, err := quotes.Refresh(ctx); err != nil {
			log.Warnf("initial quote refresh failed: %v", err)
		}
	}()

	httpServer := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           server.NewRouter(appConfig, dbManager.DB(), quotes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting WealthTrack server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func newQuoteService(cfg config.Config) *market.Service {
	client := &http.Client{Timeout: cfg.MarketRequestTimeout}

	providers := []market.Provider{
		market.NewCoinGeckoProvider(client, cfg.QuoteCurrency,
			market.WithBaseURL(cfg.CoinGeckoURL), market.WithRateLimit(cfg.MarketRateLimit)),
		market.NewYahooProvider(client,
			market.WithBaseURL(cfg.YahooURL), market.WithRateLimit(cfg.MarketRateLimit)),
	}
	return market.NewService(providers, market.NewHub())
}
