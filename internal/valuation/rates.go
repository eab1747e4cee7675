package valuation

// annualRates is the single source of truth for assumed nominal annual
// returns, in percent. Fraction and display views are derived from it.
var annualRates = map[InvestmentType]float64{
	TypeFixedDeposit:    6.5,
	TypeProvidentFund:   7.5,
	TypeMutualFund:      12,
	TypeStocks:          15,
	TypePensionScheme:   8.5,
	TypeGovernmentBonds: 6.5,
	TypeGold:            10,
	TypeCrypto:          25,
	TypeOther:           8,
}

// RateEntry describes one row of the rate table.
type RateEntry struct {
	Type     InvestmentType `json:"type"`
	Percent  float64        `json:"percent"`
	Fraction float64        `json:"fraction"`
	Risk     RiskLevel      `json:"risk_level"`
}

// AnnualReturnRate returns the assumed annual return for t as a percentage.
func AnnualReturnRate(t InvestmentType) float64 {
	if r, ok := annualRates[t]; ok {
		return r
	}
	return annualRates[TypeOther]
}

// AnnualReturnFraction returns the same rate as AnnualReturnRate as a fraction.
func AnnualReturnFraction(t InvestmentType) float64 {
	return AnnualReturnRate(t) / 100
}

// ResolveReturnRate returns the percent rate for t, preferring the curated
// instrument's rate when instrumentID names an instrument of that type.
func ResolveReturnRate(t InvestmentType, instrumentID string) float64 {
	if inst, ok := LookupInstrument(instrumentID); ok && inst.Type == t {
		return inst.AnnualReturnPercent
	}
	return AnnualReturnRate(t)
}

// RateTable returns every type with its percent, fraction and default risk.
func RateTable() []RateEntry {
	entries := make([]RateEntry, 0, len(allTypes))
	for _, t := range allTypes {
		entries = append(entries, RateEntry{
			Type:     t,
			Percent:  AnnualReturnRate(t),
			Fraction: AnnualReturnFraction(t),
			Risk:     ClassifyRisk(t).Level,
		})
	}
	return entries
}
