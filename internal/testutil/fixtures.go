package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"wealthtrack/internal/models"
	"wealthtrack/internal/uuid"
	"wealthtrack/internal/valuation"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a fresh owner id. Users live in the hosted auth provider,
// so there is no row to create.
func NewUserID() string {
	return uuid.New()
}

// CreateTestInvestment stores an investment whose current value equals its principal.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, typ valuation.InvestmentType, amount float64) *models.Investment {
	t.Helper()
	return CreateTestInvestmentWithValue(t, db, userID, typ, amount, amount)
}

// CreateTestInvestmentWithValue stores an investment with an explicit current value.
func CreateTestInvestmentWithValue(t *testing.T, db *gorm.DB, userID string, typ valuation.InvestmentType, amount, current float64) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:                    userID,
		Name:                      fmt.Sprintf("Investment %d", nextID()),
		Type:                      typ,
		AmountInvested:            amount,
		CurrentValue:              current,
		RiskLevel:                 valuation.ClassifyRisk(typ).Level,
		ExpectedReturnRatePercent: valuation.AnnualReturnRate(typ),
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}

// CreateTestTransaction stores a transaction dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, category string, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, txType, category, amount, time.Now().UTC())
}

// CreateTestTransactionOn stores a transaction on the given date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget stores a budget for category in month (YYYY-MM).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category, month string, limit float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Limit:    limit,
		Month:    month,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestSavingsGoal stores a goal with the given target and progress.
func CreateTestSavingsGoal(t *testing.T, db *gorm.DB, userID string, target, current float64) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		UserID:        userID,
		GoalName:      fmt.Sprintf("Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test savings goal: %v", err)
	}
	return goal
}
