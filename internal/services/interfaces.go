package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wealthtrack/internal/market"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/valuation"
)

// InvestmentInput is a candidate investment as submitted by a user. Type is
// raw input; unknown values fall back to "other".
type InvestmentInput struct {
	Name           string
	Type           string
	AmountInvested float64
	InstrumentID   string
}

// InvestmentPreview is what a record would look like if created now.
type InvestmentPreview struct {
	Name                      string                   `json:"name"`
	Type                      valuation.InvestmentType `json:"type"`
	AmountInvested            float64                  `json:"amount_invested"`
	Risk                      valuation.RiskAssessment `json:"risk"`
	ExpectedReturnRatePercent float64                  `json:"expected_return_rate_percent"`
	Instrument                *valuation.Instrument    `json:"instrument,omitempty"`
	Projections               valuation.Projection     `json:"projections"`
}

// InvestmentProjections holds the forward values of a stored record.
type InvestmentProjections struct {
	InvestmentID string               `json:"investment_id"`
	PresentValue float64              `json:"present_value"`
	RatePercent  float64              `json:"rate_percent"`
	Projections  valuation.Projection `json:"projections"`
}

// PortfolioSummary is the valuation summary plus display strings in the
// requested currency.
type PortfolioSummary struct {
	valuation.Summary
	Currency string            `json:"currency"`
	Display  map[string]string `json:"display"`
}

// AllocationGrouping selects how the allocation chart slices the portfolio.
type AllocationGrouping string

const (
	AllocationByType   AllocationGrouping = "type"
	AllocationByRecord AllocationGrouping = "record"
)

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	PreviewInvestment(input InvestmentInput) (*InvestmentPreview, error)
	CreateInvestment(userID string, input InvestmentInput) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetAllInvestments(userID string) ([]models.Investment, error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	GetInvestmentProjections(userID, investmentID string) (*InvestmentProjections, error)
	DeleteInvestment(userID, investmentID string) error
	GetPortfolioSummary(userID, currencyCode string) (*PortfolioSummary, error)
	RenderAllocationChart(userID string, by AllocationGrouping) ([]byte, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Category string
	FromDate *time.Time
	ToDate   *time.Time
}

// TransactionSummary totals a user's transactions.
type TransactionSummary struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Balance           float64            `json:"balance"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, category string, amount float64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAllTransactions(userID string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetTransactionSummary(userID string, filter TransactionFilter) (*TransactionSummary, error)
}

// DataResetResult counts the rows removed by DeleteAllData.
type DataResetResult struct {
	Transactions  int64 `json:"transactions"`
	Budgets       int64 `json:"budgets"`
	Investments   int64 `json:"investments"`
	SavingsGoals  int64 `json:"savings_goals"`
	MonthlyLimits int64 `json:"monthly_limits"`
}

// AccountServicer defines the contract for the stored balance.
type AccountServicer interface {
	GetAccount(userID string) (*models.Account, error)
	SetBalance(userID string, balance float64) (*models.Account, error)
	UpdateAccountBalance(tx *gorm.DB, userID string, txType models.TransactionType, amount float64) error
	DeleteAllData(userID string) (*DataResetResult, error)
}

// MonthlyLimitProgress contains total spending vs the overall monthly limit.
type MonthlyLimitProgress struct {
	Month      string  `json:"month"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// MonthlyLimitServicer defines the contract for the overall monthly spending limit.
type MonthlyLimitServicer interface {
	SetMonthlyLimit(userID, month string, limit float64) (*models.MonthlyLimit, error)
	GetMonthlyLimit(userID, month string) (*models.MonthlyLimit, error)
	GetUserMonthlyLimits(userID string) ([]models.MonthlyLimit, error)
	GetMonthlyLimitProgress(userID, month string) (*MonthlyLimitProgress, error)
}

// BudgetProgress contains spending vs limit for a budget's month.
type BudgetProgress struct {
	BudgetID   string  `json:"budget_id"`
	Category   string  `json:"category"`
	Month      string  `json:"month"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, category string, limit float64, month string) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, month string) (*pagination.PageResponse[models.Budget], error)
	GetAllBudgets(userID string) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudgetLimit(userID, budgetID string, limit float64) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
}

// SavingsServicer defines the contract for savings goal business logic.
type SavingsServicer interface {
	CreateSavingsGoal(userID, goalName string, target, current float64, targetDate *time.Time, description string) (*models.SavingsGoal, error)
	GetUserSavingsGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error)
	GetAllSavingsGoals(userID string) ([]models.SavingsGoal, error)
	GetSavingsGoalByID(userID, goalID string) (*models.SavingsGoal, error)
	Contribute(userID, goalID string, amount float64) (*models.SavingsGoal, error)
	DeleteSavingsGoal(userID, goalID string) error
}

// InstrumentQuote is a curated instrument with its latest cached quote.
type InstrumentQuote struct {
	valuation.Instrument
	Quote *market.Quote `json:"quote,omitempty"`
}

// MarketServicer defines the contract for the quote cache.
type MarketServicer interface {
	ListInstruments(t valuation.InvestmentType) []InstrumentQuote
	Snapshot() market.Snapshot
	Refresh(ctx context.Context) (*market.RefreshResult, error)
}

// Report is the full data export for one user.
type Report struct {
	GeneratedAt        time.Time            `json:"generated_at"`
	Currency           string               `json:"currency"`
	Transactions       []models.Transaction `json:"transactions"`
	TransactionSummary *TransactionSummary  `json:"transaction_summary"`
	Budgets            []models.Budget      `json:"budgets"`
	SavingsGoals       []models.SavingsGoal `json:"savings_goals"`
	Investments        []models.Investment  `json:"investments"`
	Portfolio          *PortfolioSummary    `json:"portfolio"`
	Display            map[string]string    `json:"display"`
}

// ReportServicer builds data exports.
type ReportServicer interface {
	BuildReport(userID, currencyCode string) (*Report, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
