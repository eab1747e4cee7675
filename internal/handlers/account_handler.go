package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/services"
)

// AccountHandler handles the stored balance and data reset.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// SetBalanceRequest represents the request payload for setting the balance.
type SetBalanceRequest struct {
	Balance *float64 `json:"balance" binding:"required"`
}

// GetAccount handles reading the stored balance.
// @Summary     Get account
// @Description Get the authenticated user's stored balance, opening the account on first use
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Account "Account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccount(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// SetBalance handles overwriting the stored balance.
// @Summary     Set balance
// @Description Overwrite the stored balance; later transactions move it from here
// @Tags        account
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBalanceRequest true "New balance"
// @Success     200 {object} models.Account "Account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /account/balance [put]
func (h *AccountHandler) SetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.SetBalance(userID, *req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BALANCE", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"balance": account.Balance})

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAllData handles wiping the user's records.
// @Summary     Delete all data
// @Description Remove every transaction, budget, investment, savings goal and monthly limit and reset the balance to 0
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DataResetResult "Deleted counts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /account/data [delete]
func (h *AccountHandler) DeleteAllData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.accountService.DeleteAllData(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ALL_DATA", "account", userID, c.ClientIP(),
		map[string]interface{}{
			"transactions":   result.Transactions,
			"budgets":        result.Budgets,
			"investments":    result.Investments,
			"savings_goals":  result.SavingsGoals,
			"monthly_limits": result.MonthlyLimits,
		})

	c.JSON(http.StatusOK, gin.H{"deleted": result})
}
