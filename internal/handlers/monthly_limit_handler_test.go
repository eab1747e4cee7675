package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/services"
)

// --- mock monthly limit service ---

type mockMonthlyLimitService struct {
	setFn      func(userID, month string, limit float64) (*models.MonthlyLimit, error)
	listFn     func(userID string) ([]models.MonthlyLimit, error)
	progressFn func(userID, month string) (*services.MonthlyLimitProgress, error)
}

func (m *mockMonthlyLimitService) SetMonthlyLimit(userID, month string, limit float64) (*models.MonthlyLimit, error) {
	if m.setFn != nil {
		return m.setFn(userID, month, limit)
	}
	if month == "" {
		month = "2024-05"
	}
	return &models.MonthlyLimit{ID: testID, UserID: userID, Month: month, Limit: limit}, nil
}

func (m *mockMonthlyLimitService) GetMonthlyLimit(userID, month string) (*models.MonthlyLimit, error) {
	return &models.MonthlyLimit{UserID: userID, Month: month}, nil
}

func (m *mockMonthlyLimitService) GetUserMonthlyLimits(userID string) ([]models.MonthlyLimit, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return []models.MonthlyLimit{}, nil
}

func (m *mockMonthlyLimitService) GetMonthlyLimitProgress(userID, month string) (*services.MonthlyLimitProgress, error) {
	if m.progressFn != nil {
		return m.progressFn(userID, month)
	}
	return &services.MonthlyLimitProgress{Month: month}, nil
}

var _ services.MonthlyLimitServicer = (*mockMonthlyLimitService)(nil)

func setupMonthlyLimitRouter(handler *MonthlyLimitHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.PUT("/monthly-limits", handler.SetMonthlyLimit)
	auth.GET("/monthly-limits", handler.GetMonthlyLimits)
	auth.GET("/monthly-limits/:month", handler.GetMonthlyLimitProgress)
	return r
}

func TestSetMonthlyLimit(t *testing.T) {
	t.Run("passes month through and audits", func(t *testing.T) {
		var gotMonth string
		mock := &mockMonthlyLimitService{
			setFn: func(userID, month string, limit float64) (*models.MonthlyLimit, error) {
				gotMonth = month
				return &models.MonthlyLimit{ID: testID, UserID: userID, Month: month, Limit: limit}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupMonthlyLimitRouter(NewMonthlyLimitHandler(mock, audit))
		rec := doRequest(r, http.MethodPut, "/monthly-limits", `{"limit":20000,"month":"2024-03"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth != "2024-03" {
			t.Errorf("expected month 2024-03, got %q", gotMonth)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "SET_MONTHLY_LIMIT" {
			t.Errorf("expected SET_MONTHLY_LIMIT audit entry, got %+v", audit.entries)
		}
	})

	t.Run("month is optional", func(t *testing.T) {
		r := setupMonthlyLimitRouter(NewMonthlyLimitHandler(&mockMonthlyLimitService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPut, "/monthly-limits", `{"limit":0}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		limit := parseJSON(t, rec)["monthly_limit"].(map[string]interface{})
		if limit["month"] != "2024-05" {
			t.Errorf("expected defaulted month, got %v", limit["month"])
		}
	})

	t.Run("returns 400 for invalid input", func(t *testing.T) {
		r := setupMonthlyLimitRouter(NewMonthlyLimitHandler(&mockMonthlyLimitService{}, &mockAuditService{}))
		for _, body := range []string{`{}`, `{"limit":-5}`, `{"limit":10,"month":"May"}`} {
			rec := doRequest(r, http.MethodPut, "/monthly-limits", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, rec.Code)
			}
		}
	})
}

func TestGetMonthlyLimits(t *testing.T) {
	mock := &mockMonthlyLimitService{
		listFn: func(string) ([]models.MonthlyLimit, error) {
			return []models.MonthlyLimit{{Month: "2024-05"}, {Month: "2024-04"}}, nil
		},
	}
	r := setupMonthlyLimitRouter(NewMonthlyLimitHandler(mock, &mockAuditService{}))
	rec := doRequest(r, http.MethodGet, "/monthly-limits", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	limits := parseJSON(t, rec)["monthly_limits"].([]interface{})
	if len(limits) != 2 {
		t.Errorf("expected 2 limits, got %d", len(limits))
	}
}

func TestGetMonthlyLimitProgress(t *testing.T) {
	t.Run("returns progress", func(t *testing.T) {
		mock := &mockMonthlyLimitService{
			progressFn: func(_, month string) (*services.MonthlyLimitProgress, error) {
				return &services.MonthlyLimitProgress{Month: month, Limit: 1000, Spent: 750, Remaining: 250, Percentage: 75}, nil
			},
		}
		r := setupMonthlyLimitRouter(NewMonthlyLimitHandler(mock, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/monthly-limits/2024-03", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		progress := parseJSON(t, rec)["progress"].(map[string]interface{})
		if progress["percentage"] != 75.0 || progress["month"] != "2024-03" {
			t.Errorf("unexpected progress %v", progress)
		}
	})

	t.Run("returns 404 when unset", func(t *testing.T) {
		mock := &mockMonthlyLimitService{
			progressFn: func(string, string) (*services.MonthlyLimitProgress, error) {
				return nil, apperrors.ErrMonthlyLimitNotFound
			},
		}
		r := setupMonthlyLimitRouter(NewMonthlyLimitHandler(mock, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/monthly-limits/2024-03", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MONTHLY_LIMIT_NOT_FOUND")
	})
}
