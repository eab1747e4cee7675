package models

import (
	"time"

	"wealthtrack/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the common columns of mutable, soft-deletable tables.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every model managed by AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Investment{},
		&Transaction{},
		&Budget{},
		&SavingsGoal{},
		&MonthlyLimit{},
		&AuditLog{},
	}
}
