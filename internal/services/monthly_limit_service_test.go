package services

import (
	"testing"
	"time"

	"wealthtrack/internal/models"
	"wealthtrack/internal/testutil"
)

func TestSetMonthlyLimit(t *testing.T) {
	t.Run("upserts_per_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthlyLimitService(db)
		userID := testutil.NewUserID()

		first, err := svc.SetMonthlyLimit(userID, "2024-03", 5000)
		testutil.AssertNoError(t, err)
		second, err := svc.SetMonthlyLimit(userID, "2024-03", 6500)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected the same row to be updated, got %s and %s", first.ID, second.ID)
		}
		if second.Limit != 6500 {
			t.Errorf("expected limit 6500, got %v", second.Limit)
		}

		var count int64
		db.Model(&models.MonthlyLimit{}).Where("user_id = ?", userID).Count(&count)
		if count != 1 {
			t.Errorf("expected one row, got %d", count)
		}

		// Other users and other months get their own rows.
		_, err = svc.SetMonthlyLimit(testutil.NewUserID(), "2024-03", 100)
		testutil.AssertNoError(t, err)
		_, err = svc.SetMonthlyLimit(userID, "2024-04", 100)
		testutil.AssertNoError(t, err)
	})

	t.Run("defaults_to_current_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &monthlyLimitService{db: db, now: func() time.Time {
			return time.Date(2024, 7, 31, 23, 30, 0, 0, time.UTC)
		}}

		row, err := svc.SetMonthlyLimit(testutil.NewUserID(), "", 1200)
		testutil.AssertNoError(t, err)
		if row.Month != "2024-07" {
			t.Errorf("expected month 2024-07, got %q", row.Month)
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthlyLimitService(db)

		_, err := svc.SetMonthlyLimit(testutil.NewUserID(), "2024-03", -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.SetMonthlyLimit(testutil.NewUserID(), "2024-13", 10)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserMonthlyLimits(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMonthlyLimitService(db)
	userID := testutil.NewUserID()

	for _, month := range []string{"2024-02", "2024-05", "2023-12"} {
		_, err := svc.SetMonthlyLimit(userID, month, 100)
		testutil.AssertNoError(t, err)
	}

	rows, err := svc.GetUserMonthlyLimits(userID)
	testutil.AssertNoError(t, err)
	if len(rows) != 3 {
		t.Fatalf("expected 3 limits, got %d", len(rows))
	}
	if rows[0].Month != "2024-05" || rows[2].Month != "2023-12" {
		t.Errorf("expected newest month first, got %s..%s", rows[0].Month, rows[2].Month)
	}

	_, err = svc.GetMonthlyLimit(userID, "2022-01")
	testutil.AssertAppError(t, err, "MONTHLY_LIMIT_NOT_FOUND")
}

func TestGetMonthlyLimitProgress(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMonthlyLimitService(db)
	userID := testutil.NewUserID()
	in := func(day int) time.Time { return time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC) }

	testutil.CreateTestTransactionOn(t, db, userID, models.TransactionTypeExpense, "food", 250, in(2))
	testutil.CreateTestTransactionOn(t, db, userID, models.TransactionTypeExpense, "rent", 500, in(31))
	testutil.CreateTestTransactionOn(t, db, userID, models.TransactionTypeIncome, "salary", 9000, in(1))
	testutil.CreateTestTransactionOn(t, db, userID, models.TransactionTypeExpense, "food", 70, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.SetMonthlyLimit(userID, "2024-03", 1000)
	testutil.AssertNoError(t, err)

	progress, err := svc.GetMonthlyLimitProgress(userID, "2024-03")
	testutil.AssertNoError(t, err)
	testutil.AssertAmount(t, "spent", progress.Spent, 750)
	testutil.AssertAmount(t, "remaining", progress.Remaining, 250)
	testutil.AssertAmount(t, "percentage", progress.Percentage, 75)

	t.Run("zero_limit", func(t *testing.T) {
		_, err := svc.SetMonthlyLimit(userID, "2024-04", 0)
		testutil.AssertNoError(t, err)
		p, err := svc.GetMonthlyLimitProgress(userID, "2024-04")
		testutil.AssertNoError(t, err)
		if p.Percentage != 0 || p.Spent != 70 {
			t.Errorf("expected spent 70 at 0%%, got %+v", p)
		}
	})

	t.Run("not_set", func(t *testing.T) {
		_, err := svc.GetMonthlyLimitProgress(userID, "2024-05")
		testutil.AssertAppError(t, err, "MONTHLY_LIMIT_NOT_FOUND")
	})
}
