package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
)

// budgetMonthLayout is the stored month format.
const budgetMonthLayout = "2006-01"

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// parseBudgetMonth returns the first instant of month in UTC.
func parseBudgetMonth(month string) (time.Time, error) {
	start, err := time.Parse(budgetMonthLayout, month)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be formatted as YYYY-MM")
	}
	return start, nil
}

// CreateBudget creates a monthly limit for a category. A user may hold one
// budget per category and month.
func (s *budgetService) CreateBudget(userID, category string, limit float64, month string) (*models.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}
	if _, err := parseBudgetMonth(month); err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Limit:    limit,
		Month:    month,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets, optionally for one month.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest, month string) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if month != "" {
		base = base.Where("month = ?", month)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Order("month DESC, category ASC").Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page, totalItems)
	return &result, nil
}

// GetAllBudgets returns every budget of the user.
func (s *budgetService) GetAllBudgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("month DESC, category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudgetLimit changes a budget's monthly limit.
func (s *budgetService) UpdateBudgetLimit(userID, budgetID string, limit float64) (*models.Budget, error) {
	if limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(budget).Update("limit_amount", limit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	budget.Limit = limit
	return budget, nil
}

// DeleteBudget permanently removes a budget so the same category and month
// can be budgeted again.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}
	if err := s.db.Unscoped().Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetProgress sums the month's expenses in the budget's category.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	start, err := parseBudgetMonth(budget.Month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	end := start.AddDate(0, 1, 0)

	var amounts []float64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND category = ? AND date >= ? AND date < ?",
			userID, models.TransactionTypeExpense, budget.Category, start, end).
		Pluck("amount", &amounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spent := decimal.Zero
	for _, a := range amounts {
		spent = spent.Add(decimal.NewFromFloat(a))
	}
	limit := decimal.NewFromFloat(budget.Limit)

	progress := &BudgetProgress{
		BudgetID:  budget.ID,
		Category:  budget.Category,
		Month:     budget.Month,
		Limit:     budget.Limit,
		Spent:     spent.InexactFloat64(),
		Remaining: limit.Sub(spent).InexactFloat64(),
	}
	if limit.IsPositive() {
		progress.Percentage = spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return progress, nil
}
