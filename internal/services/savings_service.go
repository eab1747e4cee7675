package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
)

type savingsService struct {
	db *gorm.DB
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB) SavingsServicer {
	return &savingsService{db: db}
}

// CreateSavingsGoal creates a goal with an optional opening balance.
func (s *savingsService) CreateSavingsGoal(userID, goalName string, target, current float64, targetDate *time.Time, description string) (*models.SavingsGoal, error) {
	goalName = strings.TrimSpace(goalName)
	if goalName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal_name is required")
	}
	if !(target > 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_amount must be greater than zero")
	}
	if current < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current_amount must not be negative")
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		GoalName:      goalName,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
		Description:   description,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetUserSavingsGoals returns a page of the user's goals, newest first.
func (s *savingsService) GetUserSavingsGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error) {
	page.Defaults()

	base := s.db.Model(&models.SavingsGoal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingsGoal
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page, totalItems)
	return &result, nil
}

// GetAllSavingsGoals returns every goal of the user.
func (s *savingsService) GetAllSavingsGoals(userID string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetSavingsGoalByID returns a goal if it belongs to the user.
func (s *savingsService) GetSavingsGoalByID(userID, goalID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingsGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// Contribute adds amount to the goal's current balance.
func (s *savingsService) Contribute(userID, goalID string, amount float64) (*models.SavingsGoal, error) {
	if !(amount > 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	goal, err := s.GetSavingsGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	// Increment in SQL so concurrent contributions are not lost.
	if err := s.db.Model(goal).UpdateColumn("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetSavingsGoalByID(userID, goalID)
}

// DeleteSavingsGoal soft-deletes a goal.
func (s *savingsService) DeleteSavingsGoal(userID, goalID string) error {
	goal, err := s.GetSavingsGoalByID(userID, goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
