package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/services"
)

// MonthlyLimitHandler handles the overall monthly spending limit.
type MonthlyLimitHandler struct {
	limitService services.MonthlyLimitServicer
	auditService services.AuditServicer
}

// NewMonthlyLimitHandler creates a new MonthlyLimitHandler.
func NewMonthlyLimitHandler(limitService services.MonthlyLimitServicer, auditService services.AuditServicer) *MonthlyLimitHandler {
	return &MonthlyLimitHandler{limitService: limitService, auditService: auditService}
}

// SetMonthlyLimitRequest represents the request payload for setting a monthly limit.
// Month defaults to the current month.
type SetMonthlyLimitRequest struct {
	Limit *float64 `json:"limit" binding:"required,gte=0"`
	Month string   `json:"month" binding:"omitempty,budget_month"`
}

// SetMonthlyLimit handles upserting the limit for a month.
// @Summary     Set monthly limit
// @Description Create or replace the overall spending limit for a month
// @Tags        monthly-limits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetMonthlyLimitRequest true "Limit details"
// @Success     200 {object} models.MonthlyLimit "Monthly limit"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monthly-limits [put]
func (h *MonthlyLimitHandler) SetMonthlyLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetMonthlyLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	limit, err := h.limitService.SetMonthlyLimit(userID, req.Month, *req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_MONTHLY_LIMIT", "monthly_limit", limit.ID, c.ClientIP(),
		map[string]interface{}{"month": limit.Month, "limit": limit.Limit})

	c.JSON(http.StatusOK, gin.H{"monthly_limit": limit})
}

// GetMonthlyLimits handles listing the user's monthly limits.
// @Summary     List monthly limits
// @Description List every monthly spending limit, newest month first
// @Tags        monthly-limits
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.MonthlyLimit "Monthly limits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monthly-limits [get]
func (h *MonthlyLimitHandler) GetMonthlyLimits(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limits, err := h.limitService.GetUserMonthlyLimits(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_limits": limits})
}

// GetMonthlyLimitProgress handles spending vs limit for one month.
// @Summary     Monthly limit progress
// @Description Compare a month's total expenses with its limit
// @Tags        monthly-limits
// @Produce     json
// @Security    BearerAuth
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} services.MonthlyLimitProgress "Progress"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No limit set"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monthly-limits/{month} [get]
func (h *MonthlyLimitHandler) GetMonthlyLimitProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.limitService.GetMonthlyLimitProgress(userID, c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
