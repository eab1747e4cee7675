package models

import (
	"time"

	"wealthtrack/internal/uuid"

	"gorm.io/gorm"
)

// MonthlyLimit caps a user's overall spending for one calendar month. Rows are
// upserted on (user_id, month) and hard-deleted.
type MonthlyLimit struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_limit_user_month" json:"user_id"`
	Month     string    `gorm:"type:char(7);not null;uniqueIndex:idx_monthly_limit_user_month" json:"month"` // YYYY-MM
	Limit     float64   `gorm:"column:limit_amount;type:numeric(18,2);not null" json:"limit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (m *MonthlyLimit) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New()
	}
	return nil
}
