package market

import (
	"context"
	"errors"
	"sync"
	"time"

	"wealthtrack/internal/logger"
	"wealthtrack/internal/valuation"
)

// ErrNoQuotes is returned by Refresh when every fetch failed.
var ErrNoQuotes = errors.New("market: no quotes fetched")

// RefreshResult contains the outcome of one refresh cycle.
type RefreshResult struct {
	Requested int
	Updated   int
	Errors    []FetchError
	Duration  time.Duration
}

// Snapshot is the payload served to clients and pushed over the stream.
type Snapshot struct {
	Quotes    []Quote   `json:"quotes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service keeps the latest quote per curated instrument in memory.
type Service struct {
	providers   []Provider
	instruments []valuation.Instrument
	hub         *Hub

	mu        sync.RWMutex
	quotes    map[string]Quote
	updatedAt time.Time
}

// NewService creates a quote cache over the curated instruments. hub may be nil.
func NewService(providers []Provider, hub *Hub) *Service {
	return &Service{
		providers:   providers,
		instruments: valuation.Instruments(""),
		hub:         hub,
		quotes:      make(map[string]Quote),
	}
}

// Refresh fetches quotes from every provider concurrently and merges the
// successful ones into the cache. Failed instruments keep their previous quote.
func (s *Service) Refresh(ctx context.Context) (*RefreshResult, error) {
	start := time.Now()
	log := logger.Named("market")
	result := &RefreshResult{Requested: len(s.instruments)}

	groups := make(map[int][]valuation.Instrument)
	for _, inst := range s.instruments {
		matched := false
		for i, p := range s.providers {
			if p.Supports(inst.Type) {
				groups[i] = append(groups[i], inst)
				matched = true
				break
			}
		}
		if !matched {
			log.Warnw("no provider supports instrument", "instrument", inst.ID, "type", inst.Type)
		}
	}

	var mu sync.Mutex
	var fetched []Quote
	var wg sync.WaitGroup
	for i, insts := range groups {
		wg.Add(1)
		go func(p Provider, insts []valuation.Instrument) {
			defer wg.Done()
			quotes, errs := p.FetchQuotes(ctx, insts)
			mu.Lock()
			fetched = append(fetched, quotes...)
			result.Errors = append(result.Errors, errs...)
			mu.Unlock()
		}(s.providers[i], insts)
	}
	wg.Wait()

	for _, fe := range result.Errors {
		log.Warnw("quote fetch failed", "instrument", fe.InstrumentID, "error", fe.Err)
	}

	result.Updated = len(fetched)
	result.Duration = time.Since(start)
	if len(fetched) == 0 {
		if len(result.Errors) > 0 {
			return result, ErrNoQuotes
		}
		return result, nil
	}

	s.mu.Lock()
	for _, q := range fetched {
		s.quotes[q.InstrumentID] = q
	}
	s.updatedAt = time.Now().UTC()
	s.mu.Unlock()

	log.Infow("quotes refreshed", "updated", result.Updated, "failed", len(result.Errors), "duration", result.Duration)

	if s.hub != nil {
		s.hub.Broadcast(s.Snapshot())
	}
	return result, nil
}

// Quote returns the cached quote for an instrument id.
func (s *Service) Quote(instrumentID string) (Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[instrumentID]
	return q, ok
}

// Snapshot returns the cached quotes in curated-list order.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Snapshot{Quotes: make([]Quote, 0, len(s.quotes)), UpdatedAt: s.updatedAt}
	for _, inst := range s.instruments {
		if q, ok := s.quotes[inst.ID]; ok {
			out.Quotes = append(out.Quotes, q)
		}
	}
	return out
}

// Hub returns the stream hub, or nil when streaming is disabled.
func (s *Service) Hub() *Hub {
	return s.hub
}
