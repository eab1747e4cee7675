package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
)

// monthlyLimitService handles the overall monthly spending limit.
type monthlyLimitService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMonthlyLimitService creates a new MonthlyLimitServicer.
func NewMonthlyLimitService(db *gorm.DB) MonthlyLimitServicer {
	return &monthlyLimitService{db: db, now: time.Now}
}

// SetMonthlyLimit upserts the limit for month, or for the current UTC month
// when month is empty.
func (s *monthlyLimitService) SetMonthlyLimit(userID, month string, limit float64) (*models.MonthlyLimit, error) {
	if limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}
	if month == "" {
		month = s.now().UTC().Format(budgetMonthLayout)
	}
	if _, err := parseBudgetMonth(month); err != nil {
		return nil, err
	}

	row := &models.MonthlyLimit{UserID: userID, Month: month, Limit: limit}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Reload: on conflict the stored row keeps its original ID.
	return s.GetMonthlyLimit(userID, month)
}

// GetMonthlyLimit returns the limit stored for month.
func (s *monthlyLimitService) GetMonthlyLimit(userID, month string) (*models.MonthlyLimit, error) {
	var row models.MonthlyLimit
	if err := s.db.Where("user_id = ? AND month = ?", userID, month).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMonthlyLimitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// GetUserMonthlyLimits lists every limit of the user, newest month first.
func (s *monthlyLimitService) GetUserMonthlyLimits(userID string) ([]models.MonthlyLimit, error) {
	var rows []models.MonthlyLimit
	if err := s.db.Where("user_id = ?", userID).Order("month DESC").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// GetMonthlyLimitProgress compares the month's total expenses with its limit.
func (s *monthlyLimitService) GetMonthlyLimitProgress(userID, month string) (*MonthlyLimitProgress, error) {
	start, err := parseBudgetMonth(month)
	if err != nil {
		return nil, err
	}
	row, err := s.GetMonthlyLimit(userID, month)
	if err != nil {
		return nil, err
	}

	var amounts []float64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?",
			userID, models.TransactionTypeExpense, start, start.AddDate(0, 1, 0)).
		Pluck("amount", &amounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent := decimal.Zero
	for _, a := range amounts {
		spent = spent.Add(decimal.NewFromFloat(a))
	}
	limit := decimal.NewFromFloat(row.Limit)

	progress := &MonthlyLimitProgress{
		Month:     row.Month,
		Limit:     row.Limit,
		Spent:     spent.InexactFloat64(),
		Remaining: limit.Sub(spent).InexactFloat64(),
	}
	if limit.IsPositive() {
		progress.Percentage = spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return progress, nil
}
