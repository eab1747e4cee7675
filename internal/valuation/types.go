// Package valuation classifies investments, assigns assumed annual returns,
// projects values forward and aggregates a user's holdings into a portfolio
// summary. Every function in this package is pure: callers pass in the full
// record collection and receive plain values back.
package valuation

import (
	"errors"
	"strings"
)

// ErrInvalidInput is returned for requests the engine cannot evaluate,
// such as a negative projection horizon or a non-positive principal.
var ErrInvalidInput = errors.New("valuation: invalid input")

// InvestmentType is the closed category of an asset.
type InvestmentType string

const (
	TypeFixedDeposit    InvestmentType = "fixed_deposit"
	TypeProvidentFund   InvestmentType = "provident_fund"
	TypeMutualFund      InvestmentType = "mutual_fund"
	TypeStocks          InvestmentType = "stocks"
	TypePensionScheme   InvestmentType = "pension_scheme"
	TypeGovernmentBonds InvestmentType = "government_bonds"
	TypeGold            InvestmentType = "gold"
	TypeCrypto          InvestmentType = "crypto"
	TypeOther           InvestmentType = "other"
)

// allTypes lists the enumeration in display order.
var allTypes = []InvestmentType{
	TypeFixedDeposit,
	TypeProvidentFund,
	TypeMutualFund,
	TypeStocks,
	TypePensionScheme,
	TypeGovernmentBonds,
	TypeGold,
	TypeCrypto,
	TypeOther,
}

// legacyAliases maps the short codes used by older exports.
var legacyAliases = map[string]InvestmentType{
	"fd":     TypeFixedDeposit,
	"ppf":    TypeProvidentFund,
	"nps":    TypePensionScheme,
	"bonds":  TypeGovernmentBonds,
	"others": TypeOther,
}

// Types returns every investment type in display order.
func Types() []InvestmentType {
	out := make([]InvestmentType, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t is a member of the enumeration.
func (t InvestmentType) Valid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseInvestmentType normalizes s into an InvestmentType. Legacy short codes
// are translated; anything unrecognized becomes TypeOther.
func ParseInvestmentType(s string) InvestmentType {
	key := strings.ToLower(strings.TrimSpace(s))
	if t := InvestmentType(key); t.Valid() {
		return t
	}
	if t, ok := legacyAliases[key]; ok {
		return t
	}
	return TypeOther
}

// IsKnownInvestmentType reports whether s names a type or a legacy short code,
// ignoring case and surrounding space.
func IsKnownInvestmentType(s string) bool {
	key := strings.ToLower(strings.TrimSpace(s))
	if InvestmentType(key).Valid() {
		return true
	}
	_, ok := legacyAliases[key]
	return ok
}

// RiskLevel is the coarse risk tier of a holding.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether r is one of low, medium or high.
func (r RiskLevel) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// Holding is the engine's view of one stored investment record.
type Holding struct {
	ID             string
	Name           string
	Type           InvestmentType
	AmountInvested float64
	CurrentValue   float64
	RiskLevel      RiskLevel
}

// ValidatePrincipal rejects amounts that cannot open a new holding.
func ValidatePrincipal(amount float64) error {
	if !(amount > 0) {
		return errInvalid("amount invested must be positive")
	}
	return nil
}

func errInvalid(msg string) error {
	return &inputError{msg: msg}
}

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return "valuation: " + e.msg }

func (e *inputError) Unwrap() error { return ErrInvalidInput }
