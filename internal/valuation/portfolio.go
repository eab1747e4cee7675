package valuation

import "github.com/shopspring/decimal"

// Portfolio risk labels.
const (
	RiskLabelLow    = "Low"
	RiskLabelMedium = "Medium"
	RiskLabelHigh   = "High"
	RiskLabelNone   = "N/A"
)

// AllocationSlice is one record's share of the portfolio.
type AllocationSlice struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Summary is the derived view over a user's full set of holdings. It is
// recomputed on every request and never stored.
type Summary struct {
	TotalInvested      float64                    `json:"total_invested"`
	TotalCurrentValue  float64                    `json:"total_current_value"`
	TotalGains         float64                    `json:"total_gains"`
	GainPercent        float64                    `json:"gain_percent"`
	AllocationByRecord []AllocationSlice          `json:"allocation_by_record"`
	AllocationByType   map[InvestmentType]float64 `json:"allocation_by_type"`
	AverageRiskScore   float64                    `json:"average_risk_score"`
	AverageRiskLabel   string                     `json:"average_risk_label"`
	Holdings           int                        `json:"holdings"`
}

func riskScore(r RiskLevel) int64 {
	switch r {
	case RiskLow:
		return 1
	case RiskHigh:
		return 3
	default:
		return 2
	}
}

// RiskLabel buckets a mean risk score. The thresholds are intentionally
// asymmetric: above 2.3 is High, above 1.6 is Medium.
func RiskLabel(mean float64, holdings int) string {
	switch {
	case holdings == 0:
		return RiskLabelNone
	case mean > 2.3:
		return RiskLabelHigh
	case mean > 1.6:
		return RiskLabelMedium
	default:
		return RiskLabelLow
	}
}

// Summarize folds holdings into a Summary. An empty input yields zero totals
// and the N/A risk label.
func Summarize(holdings []Holding) Summary {
	s := Summary{
		AllocationByRecord: make([]AllocationSlice, 0, len(holdings)),
		AllocationByType:   make(map[InvestmentType]float64),
		AverageRiskLabel:   RiskLabelNone,
		Holdings:           len(holdings),
	}
	if len(holdings) == 0 {
		return s
	}

	invested := decimal.Zero
	current := decimal.Zero
	byType := make(map[InvestmentType]decimal.Decimal)
	var scoreSum int64

	for _, h := range holdings {
		value := decimal.NewFromFloat(h.CurrentValue)
		invested = invested.Add(decimal.NewFromFloat(h.AmountInvested))
		current = current.Add(value)

		t := h.Type
		if !t.Valid() {
			t = TypeOther
		}
		byType[t] = byType[t].Add(value)

		s.AllocationByRecord = append(s.AllocationByRecord, AllocationSlice{
			ID:    h.ID,
			Name:  h.Name,
			Value: h.CurrentValue,
		})
		scoreSum += riskScore(h.RiskLevel)
	}

	gains := current.Sub(invested)
	s.TotalInvested = invested.InexactFloat64()
	s.TotalCurrentValue = current.InexactFloat64()
	s.TotalGains = gains.InexactFloat64()
	if invested.IsPositive() {
		s.GainPercent = gains.Div(invested).Mul(hundred).InexactFloat64()
	}
	for t, v := range byType {
		s.AllocationByType[t] = v.InexactFloat64()
	}

	mean := float64(scoreSum) / float64(len(holdings))
	s.AverageRiskScore = mean
	s.AverageRiskLabel = RiskLabel(mean, len(holdings))
	return s
}
