// Package market fetches best-effort quotes for the curated instruments a
// user can pick when recording an investment. Quotes are advisory only and
// never reprice stored records.
package market

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"wealthtrack/internal/valuation"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 2
)

// Quote is the latest known price for one curated instrument.
type Quote struct {
	InstrumentID  string    `json:"instrument_id"`
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"change_percent"`
	Currency      string    `json:"currency"`
	Source        string    `json:"source"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// FetchError represents a failed quote fetch for a specific instrument.
type FetchError struct {
	InstrumentID string
	Symbol       string
	Err          error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch quote for %s (%s): %v", e.Symbol, e.InstrumentID, e.Err)
}

// Provider fetches current quotes for a set of instruments.
type Provider interface {
	// Name returns the provider's display name (e.g., "Yahoo Finance", "CoinGecko").
	Name() string

	// Supports returns true if this provider can quote the given investment type.
	Supports(t valuation.InvestmentType) bool

	// FetchQuotes returns as many quotes as possible plus a per-instrument
	// error for each one that failed.
	FetchQuotes(ctx context.Context, instruments []valuation.Instrument) ([]Quote, []FetchError)
}

// source holds the HTTP plumbing shared by the providers.
type source struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// Option configures a provider.
type Option func(*source)

// WithBaseURL points the provider at a different endpoint.
func WithBaseURL(baseURL string) Option {
	return func(s *source) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(requestsPerSecond int) Option {
	return func(s *source) {
		if requestsPerSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

func newSource(httpClient *http.Client, baseURL string, opts []Option) source {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	s := source{
		httpClient: httpClient,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// get waits for the limiter and issues a GET request.
func (s *source) get(ctx context.Context, url string, header map[string]string) (*http.Response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp, nil
}

// batchErrors creates FetchErrors for every instrument in a failed batch.
func batchErrors(instruments []valuation.Instrument, err error) []FetchError {
	errs := make([]FetchError, len(instruments))
	for i, inst := range instruments {
		errs[i] = FetchError{InstrumentID: inst.ID, Symbol: inst.Symbol, Err: err}
	}
	return errs
}
