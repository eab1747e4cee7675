package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/market"
	"wealthtrack/internal/services"
	"wealthtrack/internal/valuation"
)

// --- mock market service ---

type mockMarketService struct {
	listFn     func(t valuation.InvestmentType) []services.InstrumentQuote
	snapshotFn func() market.Snapshot
	refreshFn  func(ctx context.Context) (*market.RefreshResult, error)
}

func (m *mockMarketService) ListInstruments(t valuation.InvestmentType) []services.InstrumentQuote {
	if m.listFn != nil {
		return m.listFn(t)
	}
	return nil
}

func (m *mockMarketService) Snapshot() market.Snapshot {
	if m.snapshotFn != nil {
		return m.snapshotFn()
	}
	return market.Snapshot{Quotes: []market.Quote{}}
}

func (m *mockMarketService) Refresh(ctx context.Context) (*market.RefreshResult, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return &market.RefreshResult{}, nil
}

var _ services.MarketServicer = (*mockMarketService)(nil)

func setupMarketRouter(handler *MarketHandler) *gin.Engine {
	r := gin.New()
	r.GET("/market/instruments", handler.GetInstruments)
	r.GET("/market/quotes", handler.GetSnapshot)
	r.GET("/market/stream", handler.Stream)
	r.POST("/internal/market/refresh", handler.RefreshQuotes)
	return r
}

func TestGetInstruments(t *testing.T) {
	t.Run("filters by type", func(t *testing.T) {
		var got valuation.InvestmentType
		mock := &mockMarketService{
			listFn: func(t valuation.InvestmentType) []services.InstrumentQuote {
				got = t
				return []services.InstrumentQuote{{Instrument: valuation.Instrument{ID: "bitcoin", Type: valuation.TypeCrypto}}}
			},
		}
		r := setupMarketRouter(NewMarketHandler(mock, nil))
		rec := doRequest(r, http.MethodGet, "/market/instruments?type=crypto", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, valuation.TypeCrypto, got)

		list, ok := parseJSON(t, rec)["instruments"].([]interface{})
		require.True(t, ok)
		assert.Len(t, list, 1)
	})

	t.Run("empty type lists everything", func(t *testing.T) {
		got := valuation.InvestmentType("unset")
		mock := &mockMarketService{
			listFn: func(t valuation.InvestmentType) []services.InstrumentQuote {
				got = t
				return nil
			},
		}
		r := setupMarketRouter(NewMarketHandler(mock, nil))
		rec := doRequest(r, http.MethodGet, "/market/instruments", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, valuation.InvestmentType(""), got)
	})

	t.Run("returns 400 for unknown type", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, nil))
		rec := doRequest(r, http.MethodGet, "/market/instruments?type=beanie_babies", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshQuotes(t *testing.T) {
	t.Run("reports counts", func(t *testing.T) {
		mock := &mockMarketService{
			refreshFn: func(context.Context) (*market.RefreshResult, error) {
				return &market.RefreshResult{
					Requested: 14,
					Updated:   13,
					Errors:    []market.FetchError{{InstrumentID: "META"}},
					Duration:  1500 * time.Millisecond,
				}, nil
			},
		}
		r := setupMarketRouter(NewMarketHandler(mock, nil))
		rec := doRequest(r, http.MethodPost, "/internal/market/refresh", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := parseJSON(t, rec)
		assert.Equal(t, float64(14), body["requested"])
		assert.Equal(t, float64(13), body["updated"])
		assert.Equal(t, float64(1), body["failed"])
		assert.Equal(t, float64(1500), body["duration_ms"])
	})

	t.Run("returns 503 when every provider fails", func(t *testing.T) {
		mock := &mockMarketService{
			refreshFn: func(context.Context) (*market.RefreshResult, error) {
				return nil, apperrors.ErrQuotesUnavailable
			},
		}
		r := setupMarketRouter(NewMarketHandler(mock, nil))
		rec := doRequest(r, http.MethodPost, "/internal/market/refresh", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "QUOTES_UNAVAILABLE")
	})
}

func TestStream(t *testing.T) {
	t.Run("returns 503 without hub", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, nil))
		rec := doRequest(r, http.MethodGet, "/market/stream", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("sends snapshot on connect", func(t *testing.T) {
		hub := market.NewHub()
		mock := &mockMarketService{
			snapshotFn: func() market.Snapshot {
				return market.Snapshot{Quotes: []market.Quote{
					{InstrumentID: "bitcoin", Symbol: "BTC", Price: 65000},
				}}
			},
		}
		srv := httptest.NewServer(setupMarketRouter(NewMarketHandler(mock, hub)))
		defer srv.Close()

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/market/stream"
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var snap market.Snapshot
		require.NoError(t, conn.ReadJSON(&snap))
		require.Len(t, snap.Quotes, 1)
		assert.Equal(t, 65000.0, snap.Quotes[0].Price)
		assert.Equal(t, 1, hub.Len())
	})
}
