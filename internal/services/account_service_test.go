package services

import (
	"math"
	"testing"

	"wealthtrack/internal/models"
	"wealthtrack/internal/testutil"
)

func TestGetAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db, "USD")
	userID := testutil.NewUserID()

	first, err := svc.GetAccount(userID)
	testutil.AssertNoError(t, err)
	if first.Balance != 0 || first.Currency != "USD" {
		t.Errorf("expected a fresh USD account at 0, got %+v", first)
	}

	second, err := svc.GetAccount(userID)
	testutil.AssertNoError(t, err)
	if second.ID != first.ID {
		t.Errorf("expected the same account on second read, got %s and %s", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("expected one account row, got %d", count)
	}
}

func TestSetBalance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db, "INR")
	userID := testutil.NewUserID()

	t.Run("overwrites", func(t *testing.T) {
		account, err := svc.SetBalance(userID, 2500.75)
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "balance", account.Balance, 2500.75)

		account, err = svc.SetBalance(userID, -40)
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "balance", account.Balance, -40)

		stored, err := svc.GetAccount(userID)
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "stored balance", stored.Balance, -40)
	})

	t.Run("rejects_non_finite", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := svc.SetBalance(userID, v)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})
}

func TestUpdateAccountBalance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db, "INR")
	userID := testutil.NewUserID()

	testutil.AssertNoError(t, svc.UpdateAccountBalance(db, userID, models.TransactionTypeIncome, 300))
	testutil.AssertNoError(t, svc.UpdateAccountBalance(db, userID, models.TransactionTypeExpense, 120))

	account, err := svc.GetAccount(userID)
	testutil.AssertNoError(t, err)
	testutil.AssertAmount(t, "balance", account.Balance, 180)

	err = svc.UpdateAccountBalance(db, userID, "transfer", 5)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestDeleteAllData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db, "INR")
	userID := testutil.NewUserID()
	otherID := testutil.NewUserID()

	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, "food", 10)
	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, "salary", 100)
	testutil.CreateTestBudget(t, db, userID, "food", "2024-03", 100)
	testutil.CreateTestInvestment(t, db, userID, "stocks", 5000)
	testutil.CreateTestSavingsGoal(t, db, userID, 1000, 10)
	testutil.CreateTestTransaction(t, db, otherID, models.TransactionTypeExpense, "food", 10)
	softDeleted := testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, "old", 5)
	testutil.AssertNoError(t, db.Delete(softDeleted).Error)
	_, err := NewMonthlyLimitService(db).SetMonthlyLimit(userID, "2024-03", 900)
	testutil.AssertNoError(t, err)
	_, err = svc.SetBalance(userID, 777)
	testutil.AssertNoError(t, err)
	NewAuditService(db).Log(userID, "UPDATE_BALANCE", "account", userID, "", nil)

	result, err := svc.DeleteAllData(userID)
	testutil.AssertNoError(t, err)

	want := DataResetResult{Transactions: 2, Budgets: 1, Investments: 1, SavingsGoals: 1, MonthlyLimits: 1}
	if *result != want {
		t.Errorf("expected %+v, got %+v", want, *result)
	}

	account, err := svc.GetAccount(userID)
	testutil.AssertNoError(t, err)
	if account.Balance != 0 {
		t.Errorf("expected balance reset to 0, got %v", account.Balance)
	}

	// Rows are gone for good, soft-deleted ones included.
	var remaining int64
	db.Unscoped().Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("expected no transactions left, got %d", remaining)
	}

	db.Model(&models.Transaction{}).Where("user_id = ?", otherID).Count(&remaining)
	if remaining != 1 {
		t.Errorf("expected other user's data untouched, got %d rows", remaining)
	}

	var audits int64
	db.Model(&models.AuditLog{}).Where("user_id = ?", userID).Count(&audits)
	if audits != 1 {
		t.Errorf("expected audit trail kept, got %d rows", audits)
	}
}
