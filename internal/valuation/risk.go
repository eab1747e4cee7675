package valuation

// RiskAssessment is the classifier output for an investment type.
type RiskAssessment struct {
	Level        RiskLevel `json:"level"`
	Rationale    string    `json:"rationale"`
	ReferenceURL string    `json:"reference_url"`
}

var riskTable = map[InvestmentType]RiskAssessment{
	TypeFixedDeposit: {
		Level:        RiskLow,
		Rationale:    "Capital protection with fixed returns.",
		ReferenceURL: "https://www.bankbazaar.com/fixed-deposit.html",
	},
	TypeProvidentFund: {
		Level:        RiskLow,
		Rationale:    "Government-backed, tax-free returns.",
		ReferenceURL: "https://www.nsiindia.gov.in/",
	},
	TypeGovernmentBonds: {
		Level:        RiskLow,
		Rationale:    "Fixed income, generally lower risk.",
		ReferenceURL: "https://www.investopedia.com/terms/g/government-bond.asp",
	},
	TypeMutualFund: {
		Level:        RiskMedium,
		Rationale:    "Subject to market risks, read scheme documents.",
		ReferenceURL: "https://www.amfiindia.com/",
	},
	TypePensionScheme: {
		Level:        RiskMedium,
		Rationale:    "Market-linked retirement savings.",
		ReferenceURL: "https://www.pfrda.org.in/",
	},
	TypeGold: {
		Level:        RiskMedium,
		Rationale:    "Hedge against inflation, moderate volatility.",
		ReferenceURL: "https://www.gold.org/",
	},
	TypeStocks: {
		Level:        RiskHigh,
		Rationale:    "High volatility, ownership in companies.",
		ReferenceURL: "https://www.nseindia.com/",
	},
	TypeCrypto: {
		Level:        RiskHigh,
		Rationale:    "Unregulated, highly volatile asset class.",
		ReferenceURL: "https://www.investopedia.com/terms/c/cryptocurrency.asp",
	},
	TypeOther: {
		Level:        RiskMedium,
		Rationale:    "Risk varies based on specific asset choice.",
		ReferenceURL: "https://www.investopedia.com/",
	},
}

// ClassifyRisk returns the risk tier for t. Unknown types get the "other" entry.
func ClassifyRisk(t InvestmentType) RiskAssessment {
	if a, ok := riskTable[t]; ok {
		return a
	}
	return riskTable[TypeOther]
}

// ResolveRisk classifies t, forcing high risk when instrumentID names a
// curated instrument of that type.
func ResolveRisk(t InvestmentType, instrumentID string) RiskAssessment {
	a := ClassifyRisk(t)
	inst, ok := LookupInstrument(instrumentID)
	if !ok || inst.Type != t {
		return a
	}
	a.Level = RiskHigh
	a.Rationale = inst.Name + " is a single volatile instrument."
	return a
}
