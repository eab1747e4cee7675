package models

// Budget caps spending in one category for one calendar month.
type Budget struct {
	Base
	UserID   string  `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category_month" json:"user_id"`
	Category string  `gorm:"not null;uniqueIndex:idx_budget_user_category_month" json:"category"`
	Limit    float64 `gorm:"column:limit_amount;type:numeric(18,2);not null" json:"limit"`
	Month    string  `gorm:"type:char(7);not null;uniqueIndex:idx_budget_user_category_month" json:"month"` // YYYY-MM
}
