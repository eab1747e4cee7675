package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Projection horizons, in years.
const (
	HorizonShort  = 1
	HorizonMedium = 5
	HorizonLong   = 10
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Projection is the standard set of forward values for one holding.
type Projection struct {
	Year1  float64 `json:"year_1"`
	Year5  float64 `json:"year_5"`
	Year10 float64 `json:"year_10"`
}

// Project compounds presentValue at annualRatePercent for years whole years
// and rounds to the nearest whole currency unit, halves toward +Inf.
// Negative values and negative rates are compounded like any other.
func Project(presentValue, annualRatePercent float64, years int) (float64, error) {
	if years < 0 {
		return 0, fmt.Errorf("%w: years must not be negative, got %d", ErrInvalidInput, years)
	}
	return compound(decimal.NewFromFloat(presentValue), annualRatePercent, years), nil
}

// ProjectAll returns the 1, 5 and 10 year projections for presentValue.
func ProjectAll(presentValue, annualRatePercent float64) Projection {
	pv := decimal.NewFromFloat(presentValue)
	return Projection{
		Year1:  compound(pv, annualRatePercent, HorizonShort),
		Year5:  compound(pv, annualRatePercent, HorizonMedium),
		Year10: compound(pv, annualRatePercent, HorizonLong),
	}
}

func compound(pv decimal.Decimal, annualRatePercent float64, years int) float64 {
	if years == 0 {
		return roundHalfUp(pv)
	}
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(annualRatePercent).Div(hundred))
	fv := pv.Mul(growth.Pow(decimal.NewFromInt(int64(years))))
	return roundHalfUp(fv)
}

// roundHalfUp rounds to a whole unit with ties going toward +Inf, so -2.5
// becomes -2 and 2.5 becomes 3.
func roundHalfUp(d decimal.Decimal) float64 {
	return d.Add(half).Floor().InexactFloat64()
}
