package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wealthtrack/internal/valuation"
)

const (
	yahooBaseURL  = "https://query1.finance.yahoo.com/v7/finance/quote"
	yahooBatchMax = 50
	yahooUA       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []yahooQuoteResult `json:"result"`
		Error  *json.RawMessage   `json:"error"`
	} `json:"quoteResponse"`
}

type yahooQuoteResult struct {
	Symbol                     string  `json:"symbol"`
	Currency                   string  `json:"currency"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
}

// YahooProvider quotes equities from Yahoo Finance.
type YahooProvider struct {
	source
}

// NewYahooProvider creates a new Yahoo Finance provider.
func NewYahooProvider(httpClient *http.Client, opts ...Option) *YahooProvider {
	return &YahooProvider{source: newSource(httpClient, yahooBaseURL, opts)}
}

// Name returns the provider's display name.
func (p *YahooProvider) Name() string { return "Yahoo Finance" }

// Supports returns true for stocks.
func (p *YahooProvider) Supports(t valuation.InvestmentType) bool {
	return t == valuation.TypeStocks
}

// FetchQuotes fetches quotes in batches of up to 50 symbols.
func (p *YahooProvider) FetchQuotes(ctx context.Context, instruments []valuation.Instrument) ([]Quote, []FetchError) {
	var quotes []Quote
	var fetchErrors []FetchError
	now := time.Now().UTC()

	for i := 0; i < len(instruments); i += yahooBatchMax {
		end := min(i+yahooBatchMax, len(instruments))
		q, errs := p.fetchBatch(ctx, instruments[i:end], now)
		quotes = append(quotes, q...)
		fetchErrors = append(fetchErrors, errs...)
	}
	return quotes, fetchErrors
}

func (p *YahooProvider) fetchBatch(ctx context.Context, batch []valuation.Instrument, now time.Time) ([]Quote, []FetchError) {
	symbols := make([]string, len(batch))
	for i, inst := range batch {
		symbols[i] = strings.ToUpper(inst.Symbol)
	}
	endpoint := p.baseURL + "?symbols=" + url.QueryEscape(strings.Join(symbols, ","))

	resp, err := p.get(ctx, endpoint, map[string]string{"User-Agent": yahooUA})
	if err != nil {
		return nil, batchErrors(batch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var quoteResp yahooQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quoteResp); err != nil {
		return nil, batchErrors(batch, fmt.Errorf("decoding response: %w", err))
	}

	bySymbol := make(map[string]yahooQuoteResult, len(quoteResp.QuoteResponse.Result))
	for _, r := range quoteResp.QuoteResponse.Result {
		bySymbol[strings.ToUpper(r.Symbol)] = r
	}

	var quotes []Quote
	var fetchErrors []FetchError
	for i, inst := range batch {
		r, found := bySymbol[symbols[i]]
		switch {
		case !found:
			fetchErrors = append(fetchErrors, FetchError{
				InstrumentID: inst.ID,
				Symbol:       inst.Symbol,
				Err:          fmt.Errorf("symbol %s not found in response", symbols[i]),
			})
		case r.RegularMarketPrice <= 0:
			fetchErrors = append(fetchErrors, FetchError{
				InstrumentID: inst.ID,
				Symbol:       inst.Symbol,
				Err:          fmt.Errorf("zero price for %s", symbols[i]),
			})
		default:
			quotes = append(quotes, Quote{
				InstrumentID:  inst.ID,
				Symbol:        inst.Symbol,
				Price:         r.RegularMarketPrice,
				ChangePercent: r.RegularMarketChangePercent,
				Currency:      strings.ToUpper(r.Currency),
				Source:        p.Name(),
				FetchedAt:     now,
			})
		}
	}
	return quotes, fetchErrors
}
