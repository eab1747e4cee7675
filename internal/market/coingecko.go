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

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3/simple/price"

// CoinGeckoProvider quotes cryptocurrencies from CoinGecko's simple price API.
type CoinGeckoProvider struct {
	source
	vsCurrency string
}

// NewCoinGeckoProvider creates a CoinGecko provider quoting in vsCurrency (e.g. "inr").
func NewCoinGeckoProvider(httpClient *http.Client, vsCurrency string, opts ...Option) *CoinGeckoProvider {
	vs := strings.ToLower(strings.TrimSpace(vsCurrency))
	if vs == "" {
		vs = "inr"
	}
	return &CoinGeckoProvider{
		source:     newSource(httpClient, coinGeckoBaseURL, opts),
		vsCurrency: vs,
	}
}

// Name returns the provider's display name.
func (p *CoinGeckoProvider) Name() string { return "CoinGecko" }

// Supports returns true for crypto only.
func (p *CoinGeckoProvider) Supports(t valuation.InvestmentType) bool {
	return t == valuation.TypeCrypto
}

// FetchQuotes fetches every coin in one request keyed by CoinGecko id.
func (p *CoinGeckoProvider) FetchQuotes(ctx context.Context, instruments []valuation.Instrument) ([]Quote, []FetchError) {
	if len(instruments) == 0 {
		return nil, nil
	}

	ids := make([]string, len(instruments))
	for i, inst := range instruments {
		ids[i] = inst.ID
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", p.vsCurrency)
	q.Set("include_24hr_change", "true")

	resp, err := p.get(ctx, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, batchErrors(instruments, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// {"bitcoin":{"inr":5234567.1,"inr_24h_change":-1.2}}
	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, batchErrors(instruments, fmt.Errorf("decoding response: %w", err))
	}

	now := time.Now().UTC()
	var quotes []Quote
	var fetchErrors []FetchError
	for _, inst := range instruments {
		entry, ok := payload[inst.ID]
		price := entry[p.vsCurrency]
		if !ok || price <= 0 {
			fetchErrors = append(fetchErrors, FetchError{
				InstrumentID: inst.ID,
				Symbol:       inst.Symbol,
				Err:          fmt.Errorf("no %s price for %s in response", p.vsCurrency, inst.ID),
			})
			continue
		}
		quotes = append(quotes, Quote{
			InstrumentID:  inst.ID,
			Symbol:        inst.Symbol,
			Price:         price,
			ChangePercent: entry[p.vsCurrency+"_24h_change"],
			Currency:      strings.ToUpper(p.vsCurrency),
			Source:        p.Name(),
			FetchedAt:     now,
		})
	}
	return quotes, fetchErrors
}
