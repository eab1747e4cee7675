package testutil_test

import (
	"testing"

	"wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/testutil"
	"wealthtrack/internal/valuation"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"investments", "transactions", "budgets", "savings_goals", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, a)
	b := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, b)

	testutil.CreateTestInvestment(t, a, testutil.NewUserID(), valuation.TypeGold, 100)

	var count int64
	b.Model(&models.Investment{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated databases, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userID := testutil.NewUserID()

	inv := testutil.CreateTestInvestment(t, db, userID, valuation.TypeFixedDeposit, 100000)
	if inv.ID == "" {
		t.Fatal("investment should have an ID")
	}
	if inv.RiskLevel != valuation.RiskLow || inv.CurrentValue != 100000 {
		t.Errorf("unexpected investment fixture: %+v", inv)
	}

	tx := testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, "food", 250)
	if tx.Amount != 250 || tx.Category != "food" {
		t.Errorf("unexpected transaction fixture: %+v", tx)
	}

	budget := testutil.CreateTestBudget(t, db, userID, "food", "2024-03", 5000)
	if budget.Limit != 5000 {
		t.Errorf("expected limit 5000, got %.2f", budget.Limit)
	}

	goal := testutil.CreateTestSavingsGoal(t, db, userID, 1000, 250)
	if goal.ProgressPercent() != 25 {
		t.Errorf("expected 25%% progress, got %.2f", goal.ProgressPercent())
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrInvestmentNotFound, "custom message")
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertAmount(t *testing.T) {
	testutil.AssertAmount(t, "sum", 0.1+0.2, 0.3)
}
