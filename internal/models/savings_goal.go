package models

import (
	"time"

	"gorm.io/gorm"
)

// SavingsGoal tracks progress towards a target amount.
type SavingsGoal struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	GoalName      string     `gorm:"not null" json:"goal_name"`
	TargetAmount  float64    `gorm:"type:numeric(18,2);not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"type:numeric(18,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	Description   string     `json:"description"`
	Progress      float64    `gorm:"-" json:"progress_percent"` // Populated after load and save
}

// ProgressPercent returns current/target as a percentage, 0 when target is 0.
func (g SavingsGoal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// AfterFind fills Progress for loaded rows.
func (g *SavingsGoal) AfterFind(tx *gorm.DB) error {
	g.Progress = g.ProgressPercent()
	return nil
}

// AfterSave fills Progress for created and updated rows.
func (g *SavingsGoal) AfterSave(tx *gorm.DB) error {
	g.Progress = g.ProgressPercent()
	return nil
}
