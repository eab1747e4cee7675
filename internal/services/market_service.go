package services

import (
	"context"
	"errors"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/market"
	"wealthtrack/internal/valuation"
)

// quoteCache is the subset of *market.Service used here.
type quoteCache interface {
	Quote(instrumentID string) (market.Quote, bool)
	Snapshot() market.Snapshot
	Refresh(ctx context.Context) (*market.RefreshResult, error)
}

type marketService struct {
	cache quoteCache
}

// NewMarketService creates a MarketServicer over a quote cache such as
// *market.Service.
func NewMarketService(cache quoteCache) MarketServicer {
	return &marketService{cache: cache}
}

// ListInstruments returns curated instruments of type t (all when empty)
// joined with their cached quotes.
func (s *marketService) ListInstruments(t valuation.InvestmentType) []InstrumentQuote {
	instruments := valuation.Instruments(t)
	out := make([]InstrumentQuote, 0, len(instruments))
	for _, inst := range instruments {
		iq := InstrumentQuote{Instrument: inst}
		if q, ok := s.cache.Quote(inst.ID); ok {
			q := q
			iq.Quote = &q
		}
		out = append(out, iq)
	}
	return out
}

// Snapshot returns the cached quotes.
func (s *marketService) Snapshot() market.Snapshot {
	return s.cache.Snapshot()
}

// Refresh forces a quote refresh.
func (s *marketService) Refresh(ctx context.Context) (*market.RefreshResult, error) {
	result, err := s.cache.Refresh(ctx)
	if err != nil {
		if errors.Is(err, market.ErrNoQuotes) {
			return result, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
		}
		return result, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
