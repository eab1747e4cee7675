// Package currency turns plain numeric amounts into display strings. Stored
// values stay currency-agnostic; formatting happens only at the edges.
package currency

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCode is used when a caller does not name a currency.
const DefaultCode = money.INR

// Normalize upper-cases code and substitutes fallback for an empty value.
func Normalize(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = strings.ToUpper(fallback)
	}
	if code == "" {
		code = DefaultCode
	}
	return code
}

// Supported reports whether code is a known ISO 4217 currency.
func Supported(code string) bool {
	return code != "" && money.GetCurrency(strings.ToUpper(code)) != nil
}

// New converts amount into a money value in minor units of code.
func New(amount float64, code string) (*money.Money, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return nil, fmt.Errorf("currency: unsupported code %q", code)
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := decimal.NewFromFloat(amount).Mul(factor).Round(0)
	return money.New(minor.IntPart(), cur.Code), nil
}

// Format renders amount in code, e.g. 1234.5 INR -> "₹1,234.50".
func Format(amount float64, code string) (string, error) {
	m, err := New(amount, code)
	if err != nil {
		return "", err
	}
	return m.Display(), nil
}
