package models

// Account holds a user's stored balance. Each user has exactly one; it is
// created on first use and moved by every transaction write.
type Account struct {
	Base
	UserID   string  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Balance  float64 `gorm:"type:numeric(18,2);not null;default:0" json:"balance"`
	Currency string  `gorm:"type:char(3);not null;default:'INR'" json:"currency"`
}
