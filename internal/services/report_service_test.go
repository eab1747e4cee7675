package services

import (
	"testing"

	"wealthtrack/internal/models"
	"wealthtrack/internal/testutil"
	"wealthtrack/internal/valuation"
)

func TestBuildReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	investments := NewInvestmentService(db, "INR")
	svc := NewReportService(NewTransactionService(db, NewAccountService(db, "INR")), NewBudgetService(db), NewSavingsService(db), investments)
	userID := testutil.NewUserID()

	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeIncome, "salary", 1234.5)
	testutil.CreateTestTransaction(t, db, userID, models.TransactionTypeExpense, "food", 234.5)
	testutil.CreateTestBudget(t, db, userID, "food", "2024-03", 500)
	testutil.CreateTestSavingsGoal(t, db, userID, 1000, 100)
	testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 1000)
	testutil.CreateTestInvestment(t, db, testutil.NewUserID(), valuation.TypeGold, 999)

	t.Run("collects_everything", func(t *testing.T) {
		report, err := svc.BuildReport(userID, "usd")
		testutil.AssertNoError(t, err)

		if report.Currency != "USD" {
			t.Errorf("expected USD, got %s", report.Currency)
		}
		if len(report.Transactions) != 2 || len(report.Budgets) != 1 || len(report.SavingsGoals) != 1 || len(report.Investments) != 1 {
			t.Errorf("unexpected counts: %d tx, %d budgets, %d goals, %d investments",
				len(report.Transactions), len(report.Budgets), len(report.SavingsGoals), len(report.Investments))
		}
		if report.TransactionSummary.Balance != 1000 {
			t.Errorf("expected balance 1000, got %v", report.TransactionSummary.Balance)
		}
		if report.Display["total_income"] != "$1,234.50" {
			t.Errorf("unexpected income display %q", report.Display["total_income"])
		}
		if report.Display["total_invested"] != "$1,000.00" {
			t.Errorf("unexpected invested display %q", report.Display["total_invested"])
		}
		if report.GeneratedAt.IsZero() {
			t.Error("expected generated_at")
		}
	})

	t.Run("invalid_currency", func(t *testing.T) {
		_, err := svc.BuildReport(userID, "ZZZ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
