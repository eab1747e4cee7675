package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/market"
	"wealthtrack/internal/services"
	"wealthtrack/internal/valuation"
)

// MarketHandler serves curated instruments and their cached quotes.
type MarketHandler struct {
	marketService services.MarketServicer
	hub           *market.Hub
	upgrader      websocket.Upgrader
}

// NewMarketHandler creates a new MarketHandler. hub may be nil, in which case
// the stream endpoint is unavailable.
func NewMarketHandler(marketService services.MarketServicer, hub *market.Hub) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
		hub:           hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// InstrumentsQuery filters the curated list by investment type.
type InstrumentsQuery struct {
	Type string `form:"type" binding:"omitempty,investment_type"`
}

// RefreshResponse reports the outcome of a forced refresh.
type RefreshResponse struct {
	Requested  int   `json:"requested"`
	Updated    int   `json:"updated"`
	Failed     int   `json:"failed"`
	DurationMs int64 `json:"duration_ms"`
}

// GetInstruments lists curated instruments with their latest quotes.
// @Summary     Get curated instruments
// @Description Curated coins and tickers with their override return rate and latest cached quote
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Filter by investment type (crypto, stocks)"
// @Success     200 {object} map[string][]services.InstrumentQuote "Instruments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /market/instruments [get]
func (h *MarketHandler) GetInstruments(c *gin.Context) {
	var q InstrumentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var t valuation.InvestmentType
	if q.Type != "" {
		t = valuation.ParseInvestmentType(q.Type)
	}
	c.JSON(http.StatusOK, gin.H{"instruments": h.marketService.ListInstruments(t)})
}

// GetSnapshot returns every cached quote.
// @Summary     Get quote snapshot
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} market.Snapshot "Snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /market/quotes [get]
func (h *MarketHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketService.Snapshot())
}

// RefreshQuotes forces a quote refresh.
// @Summary     Refresh quotes
// @Description Machine endpoint to refresh cached market quotes; requires X-API-Key
// @Tags        internal
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} RefreshResponse "Refresh result"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Quotes unavailable"
// @Router      /internal/market/refresh [post]
func (h *MarketHandler) RefreshQuotes(c *gin.Context) {
	result, err := h.marketService.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, RefreshResponse{
		Requested:  result.Requested,
		Updated:    result.Updated,
		Failed:     len(result.Errors),
		DurationMs: result.Duration.Milliseconds(),
	})
}

// Stream upgrades to a websocket and pushes quote snapshots. The current
// snapshot is sent on connect and again after each successful refresh.
// @Summary     Stream quotes
// @Tags        market
// @Success     101 "Switching protocols"
// @Failure     503 {object} ErrorResponse "Streaming disabled"
// @Router      /market/stream [get]
func (h *MarketHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrQuotesUnavailable, "Quote streaming is disabled"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Named("market").Debugw("websocket upgrade failed", "error", err)
		return
	}
	h.hub.Add(conn, h.marketService.Snapshot())

	// Reads only detect the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.hub.Remove(conn)
			return
		}
	}
}
