package services

import (
	"bytes"
	"math"
	"testing"

	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/testutil"
	"wealthtrack/internal/valuation"
)

func TestPreviewInvestment(t *testing.T) {
	svc := NewInvestmentService(nil, "INR")

	t.Run("fixed_deposit", func(t *testing.T) {
		p, err := svc.PreviewInvestment(InvestmentInput{Name: "SBI FD", Type: "fixed_deposit", AmountInvested: 100000})
		testutil.AssertNoError(t, err)
		if p.Risk.Level != valuation.RiskLow {
			t.Errorf("expected low risk, got %s", p.Risk.Level)
		}
		if p.ExpectedReturnRatePercent != 6.5 {
			t.Errorf("expected 6.5%%, got %v", p.ExpectedReturnRatePercent)
		}
		if p.Projections.Year1 != 106500 {
			t.Errorf("expected year 1 = 106500, got %v", p.Projections.Year1)
		}
	})

	t.Run("instrument_fills_name_and_type", func(t *testing.T) {
		p, err := svc.PreviewInvestment(InvestmentInput{AmountInvested: 80000, InstrumentID: "BTC"})
		testutil.AssertNoError(t, err)
		if p.Name != "Bitcoin (BTC)" {
			t.Errorf("expected instrument label, got %q", p.Name)
		}
		if p.Type != valuation.TypeCrypto || p.Risk.Level != valuation.RiskHigh {
			t.Errorf("unexpected classification: %s/%s", p.Type, p.Risk.Level)
		}
		if p.Instrument == nil || p.Instrument.ID != "bitcoin" {
			t.Fatalf("expected bitcoin instrument, got %+v", p.Instrument)
		}
		want := math.Round(80000 * math.Pow(1.25, 10))
		if p.Projections.Year10 != want {
			t.Errorf("expected year 10 = %v, got %v", want, p.Projections.Year10)
		}
	})

	t.Run("mismatched_instrument_dropped", func(t *testing.T) {
		p, err := svc.PreviewInvestment(InvestmentInput{Name: "Gold coins", Type: "gold", AmountInvested: 1000, InstrumentID: "AAPL"})
		testutil.AssertNoError(t, err)
		if p.Instrument != nil {
			t.Errorf("expected no instrument, got %+v", p.Instrument)
		}
		if p.ExpectedReturnRatePercent != 10 {
			t.Errorf("expected gold rate, got %v", p.ExpectedReturnRatePercent)
		}
	})

	t.Run("unknown_type_is_other", func(t *testing.T) {
		p, err := svc.PreviewInvestment(InvestmentInput{Name: "Painting", Type: "art", AmountInvested: 500})
		testutil.AssertNoError(t, err)
		if p.Type != valuation.TypeOther || p.Risk.Level != valuation.RiskMedium {
			t.Errorf("unexpected classification: %s/%s", p.Type, p.Risk.Level)
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		for _, amount := range []float64{0, -10, math.NaN()} {
			_, err := svc.PreviewInvestment(InvestmentInput{Name: "x", Type: "gold", AmountInvested: amount})
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := svc.PreviewInvestment(InvestmentInput{Name: "   ", Type: "gold", AmountInvested: 10})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestCreateInvestment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()

		inv, err := svc.CreateInvestment(userID, InvestmentInput{Name: " Index fund ", Type: "mutual_fund", AmountInvested: 50000})
		testutil.AssertNoError(t, err)

		if inv.ID == "" {
			t.Fatal("expected an ID")
		}
		if inv.Name != "Index fund" {
			t.Errorf("expected trimmed name, got %q", inv.Name)
		}
		if inv.CurrentValue != inv.AmountInvested {
			t.Errorf("expected current value to equal principal, got %v", inv.CurrentValue)
		}
		if inv.RiskLevel != valuation.RiskMedium || inv.ExpectedReturnRatePercent != 12 {
			t.Errorf("unexpected classification: %s/%v", inv.RiskLevel, inv.ExpectedReturnRatePercent)
		}

		var stored models.Investment
		if err := db.First(&stored, "id = ?", inv.ID).Error; err != nil {
			t.Fatalf("expected stored row: %v", err)
		}
		if stored.UserID != userID {
			t.Errorf("expected owner %s, got %s", userID, stored.UserID)
		}
	})

	t.Run("stores_canonical_instrument", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")

		inv, err := svc.CreateInvestment(testutil.NewUserID(), InvestmentInput{Type: "crypto", AmountInvested: 1000, InstrumentID: "eth"})
		testutil.AssertNoError(t, err)
		if inv.InstrumentID != "ethereum" {
			t.Errorf("expected ethereum, got %q", inv.InstrumentID)
		}
		if inv.ExpectedReturnRatePercent != 20 {
			t.Errorf("expected instrument rate 20, got %v", inv.ExpectedReturnRatePercent)
		}
	})

	t.Run("invalid_amount_not_stored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")

		_, err := svc.CreateInvestment(testutil.NewUserID(), InvestmentInput{Name: "x", Type: "gold", AmountInvested: 0})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		var count int64
		db.Model(&models.Investment{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no rows, got %d", count)
		}
	})
}

func TestGetUserInvestments(t *testing.T) {
	t.Run("returns_user_investments_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()

		testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 100)
		testutil.CreateTestInvestment(t, db, userID, valuation.TypeStocks, 200)
		testutil.CreateTestInvestment(t, db, testutil.NewUserID(), valuation.TypeGold, 300)

		result, err := svc.GetUserInvestments(userID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 || len(result.Data) != 2 {
			t.Errorf("expected 2 investments, got %d/%d", result.TotalItems, len(result.Data))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()

		for i := 0; i < 5; i++ {
			testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, float64(100+i))
		}

		result, err := svc.GetUserInvestments(userID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 || result.TotalPages != 3 || result.Page != 2 {
			t.Errorf("unexpected page: %d items, %d pages, page %d", len(result.Data), result.TotalPages, result.Page)
		}
	})
}

func TestGetInvestmentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()
		inv := testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 100)

		got, err := svc.GetInvestmentByID(userID, inv.ID)
		testutil.AssertNoError(t, err)
		if got.ID != inv.ID {
			t.Errorf("expected %s, got %s", inv.ID, got.ID)
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		inv := testutil.CreateTestInvestment(t, db, testutil.NewUserID(), valuation.TypeGold, 100)

		_, err := svc.GetInvestmentByID(testutil.NewUserID(), inv.ID)
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestGetInvestmentProjections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestmentService(db, "INR")
	userID := testutil.NewUserID()
	inv := testutil.CreateTestInvestmentWithValue(t, db, userID, valuation.TypeFixedDeposit, 100000, 120000)

	p, err := svc.GetInvestmentProjections(userID, inv.ID)
	testutil.AssertNoError(t, err)
	if p.PresentValue != 120000 || p.RatePercent != 6.5 {
		t.Errorf("unexpected inputs: %+v", p)
	}
	if p.Projections.Year1 != 127800 {
		t.Errorf("expected 127800, got %v", p.Projections.Year1)
	}
}

func TestDeleteInvestment(t *testing.T) {
	t.Run("hard_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()
		inv := testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 100)

		testutil.AssertNoError(t, svc.DeleteInvestment(userID, inv.ID))

		var count int64
		db.Model(&models.Investment{}).Where("id = ?", inv.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected row removed, found %d", count)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")

		err := svc.DeleteInvestment(testutil.NewUserID(), testutil.NewUserID())
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestGetPortfolioSummary(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")

		s, err := svc.GetPortfolioSummary(testutil.NewUserID(), "")
		testutil.AssertNoError(t, err)
		if s.Holdings != 0 || s.AverageRiskLabel != valuation.RiskLabelNone {
			t.Errorf("unexpected empty summary: %+v", s.Summary)
		}
		if s.Currency != "INR" {
			t.Errorf("expected default currency INR, got %s", s.Currency)
		}
	})

	t.Run("mixed_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()

		testutil.CreateTestInvestmentWithValue(t, db, userID, valuation.TypeStocks, 50000, 40000)
		testutil.CreateTestInvestmentWithValue(t, db, userID, valuation.TypeFixedDeposit, 50000, 52000)

		s, err := svc.GetPortfolioSummary(userID, "usd")
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "total_gains", s.TotalGains, -8000)
		testutil.AssertAmount(t, "gain_percent", s.GainPercent, -8)
		if s.AverageRiskLabel != valuation.RiskLabelMedium {
			t.Errorf("expected Medium, got %s", s.AverageRiskLabel)
		}
		if s.Currency != "USD" {
			t.Errorf("expected USD, got %s", s.Currency)
		}
		if s.Display["total_gains"] != "-$8,000.00" {
			t.Errorf("unexpected display value %q", s.Display["total_gains"])
		}
	})

	t.Run("unsupported_currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")

		_, err := svc.GetPortfolioSummary(testutil.NewUserID(), "XXZ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestRenderAllocationChart(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	t.Run("by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()
		testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 100)
		testutil.CreateTestInvestment(t, db, userID, valuation.TypeStocks, 300)

		png, err := svc.RenderAllocationChart(userID, AllocationByType)
		testutil.AssertNoError(t, err)
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("expected PNG output")
		}
	})

	t.Run("by_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()
		testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 100)

		png, err := svc.RenderAllocationChart(userID, AllocationByRecord)
		testutil.AssertNoError(t, err)
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("expected PNG output")
		}
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")

		_, err := svc.RenderAllocationChart(testutil.NewUserID(), AllocationByType)
		testutil.AssertAppError(t, err, "CHART_UNAVAILABLE")
	})

	t.Run("invalid_grouping", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db, "INR")
		userID := testutil.NewUserID()
		testutil.CreateTestInvestment(t, db, userID, valuation.TypeGold, 100)

		_, err := svc.RenderAllocationChart(userID, "sector")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
