package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/services"
)

// --- mock account service ---

type mockAccountService struct {
	getFn        func(userID string) (*models.Account, error)
	setBalanceFn func(userID string, balance float64) (*models.Account, error)
	resetFn      func(userID string) (*services.DataResetResult, error)
}

func (m *mockAccountService) GetAccount(userID string) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(userID)
	}
	a := &models.Account{UserID: userID, Currency: "INR"}
	a.ID = testID
	return a, nil
}

func (m *mockAccountService) SetBalance(userID string, balance float64) (*models.Account, error) {
	if m.setBalanceFn != nil {
		return m.setBalanceFn(userID, balance)
	}
	a := &models.Account{UserID: userID, Balance: balance, Currency: "INR"}
	a.ID = testID
	return a, nil
}

func (m *mockAccountService) UpdateAccountBalance(*gorm.DB, string, models.TransactionType, float64) error {
	return nil
}

func (m *mockAccountService) DeleteAllData(userID string) (*services.DataResetResult, error) {
	if m.resetFn != nil {
		return m.resetFn(userID)
	}
	return &services.DataResetResult{}, nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/account", handler.GetAccount)
	auth.PUT("/account/balance", handler.SetBalance)
	auth.DELETE("/account/data", handler.DeleteAllData)
	return r
}

func TestGetAccount(t *testing.T) {
	r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))
	rec := doRequest(r, http.MethodGet, "/account", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	account, ok := parseJSON(t, rec)["account"].(map[string]interface{})
	if !ok || account["user_id"] != testUserID {
		t.Errorf("expected account for %s, got %v", testUserID, account)
	}
}

func TestSetBalance(t *testing.T) {
	t.Run("returns 200 and audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, audit))
		rec := doRequest(r, http.MethodPut, "/account/balance", `{"balance":-125.5}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		account := parseJSON(t, rec)["account"].(map[string]interface{})
		if account["balance"] != -125.5 {
			t.Errorf("expected balance -125.5, got %v", account["balance"])
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "UPDATE_BALANCE" {
			t.Errorf("expected UPDATE_BALANCE audit entry, got %+v", audit.entries)
		}
	})

	t.Run("accepts zero", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPut, "/account/balance", `{"balance":0}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 without balance", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, audit))
		for _, body := range []string{`{}`, `{"balance":"lots"}`, `not json`} {
			rec := doRequest(r, http.MethodPut, "/account/balance", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, rec.Code)
			}
		}
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entries, got %+v", audit.entries)
		}
	})
}

func TestDeleteAllData(t *testing.T) {
	t.Run("returns counts and audits", func(t *testing.T) {
		mock := &mockAccountService{
			resetFn: func(string) (*services.DataResetResult, error) {
				return &services.DataResetResult{Transactions: 4, Budgets: 2, MonthlyLimits: 1}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(mock, audit))
		rec := doRequest(r, http.MethodDelete, "/account/data", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		deleted := parseJSON(t, rec)["deleted"].(map[string]interface{})
		if deleted["transactions"] != 4.0 || deleted["monthly_limits"] != 1.0 {
			t.Errorf("unexpected counts %v", deleted)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_ALL_DATA" {
			t.Errorf("expected DELETE_ALL_DATA audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 500 on failure", func(t *testing.T) {
		mock := &mockAccountService{
			resetFn: func(string) (*services.DataResetResult, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(mock, audit))
		rec := doRequest(r, http.MethodDelete, "/account/data", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entries, got %+v", audit.entries)
		}
	})
}
