package valuation

import "strings"

// Instrument is a named asset from the curated pick lists. Its assumed return
// supersedes the generic rate of its type.
type Instrument struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Symbol              string         `json:"symbol"`
	Type                InvestmentType `json:"type"`
	AnnualReturnPercent float64        `json:"annual_return_percent"`
}

// Label is the default record name for the instrument, e.g. "Bitcoin (BTC)".
func (i Instrument) Label() string {
	return i.Name + " (" + i.Symbol + ")"
}

var curatedInstruments = []Instrument{
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Type: TypeCrypto, AnnualReturnPercent: 25},
	{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", Type: TypeCrypto, AnnualReturnPercent: 20},
	{ID: "solana", Name: "Solana", Symbol: "SOL", Type: TypeCrypto, AnnualReturnPercent: 30},
	{ID: "ripple", Name: "XRP", Symbol: "XRP", Type: TypeCrypto, AnnualReturnPercent: 15},
	{ID: "binancecoin", Name: "BNB", Symbol: "BNB", Type: TypeCrypto, AnnualReturnPercent: 18},
	{ID: "cardano", Name: "Cardano", Symbol: "ADA", Type: TypeCrypto, AnnualReturnPercent: 22},
	{ID: "dogecoin", Name: "Dogecoin", Symbol: "DOGE", Type: TypeCrypto, AnnualReturnPercent: 40},
	{ID: "polkadot", Name: "Polkadot", Symbol: "DOT", Type: TypeCrypto, AnnualReturnPercent: 28},
	{ID: "AAPL", Name: "Apple", Symbol: "AAPL", Type: TypeStocks, AnnualReturnPercent: 28},
	{ID: "MSFT", Name: "Microsoft", Symbol: "MSFT", Type: TypeStocks, AnnualReturnPercent: 27},
	{ID: "GOOGL", Name: "Alphabet", Symbol: "GOOGL", Type: TypeStocks, AnnualReturnPercent: 20},
	{ID: "AMZN", Name: "Amazon", Symbol: "AMZN", Type: TypeStocks, AnnualReturnPercent: 25},
	{ID: "NVDA", Name: "Nvidia", Symbol: "NVDA", Type: TypeStocks, AnnualReturnPercent: 60},
	{ID: "META", Name: "Meta", Symbol: "META", Type: TypeStocks, AnnualReturnPercent: 23},
}

// Instruments returns the curated instruments of type t, or all of them when t is empty.
func Instruments(t InvestmentType) []Instrument {
	out := make([]Instrument, 0, len(curatedInstruments))
	for _, inst := range curatedInstruments {
		if t == "" || inst.Type == t {
			out = append(out, inst)
		}
	}
	return out
}

// LookupInstrument finds a curated instrument by ID or symbol, ignoring case.
func LookupInstrument(key string) (Instrument, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Instrument{}, false
	}
	for _, inst := range curatedInstruments {
		if strings.EqualFold(inst.ID, key) || strings.EqualFold(inst.Symbol, key) {
			return inst, true
		}
	}
	return Instrument{}, false
}
