package models

import (
	"time"

	"wealthtrack/internal/uuid"
	"wealthtrack/internal/valuation"

	"gorm.io/gorm"
)

// Investment is one user-held asset. Records are immutable after creation
// and hard deleted, so there is no Base embed and no soft delete.
type Investment struct {
	ID                        string                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                    string                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                      string                   `gorm:"not null" json:"name"`
	Type                      valuation.InvestmentType `gorm:"type:varchar(32);not null" json:"type"`
	AmountInvested            float64                  `gorm:"type:numeric(18,2);not null" json:"amount_invested"`
	CurrentValue              float64                  `gorm:"type:numeric(18,2);not null" json:"current_value"`
	RiskLevel                 valuation.RiskLevel      `gorm:"type:varchar(16);not null" json:"risk_level"`
	ExpectedReturnRatePercent float64                  `gorm:"type:numeric(6,2);not null" json:"expected_return_rate_percent"`
	InstrumentID              string                   `gorm:"type:varchar(32)" json:"instrument_id,omitempty"`
	CreatedAt                 time.Time                `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New()
	}
	return nil
}

// Holding returns the engine view of the record.
func (i Investment) Holding() valuation.Holding {
	return valuation.Holding{
		ID:             i.ID,
		Name:           i.Name,
		Type:           i.Type,
		AmountInvested: i.AmountInvested,
		CurrentValue:   i.CurrentValue,
		RiskLevel:      i.RiskLevel,
	}
}

// Holdings converts records for valuation.Summarize.
func Holdings(records []Investment) []valuation.Holding {
	out := make([]valuation.Holding, len(records))
	for i, r := range records {
		out[i] = r.Holding()
	}
	return out
}
