package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/services"
	"wealthtrack/internal/valuation"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// InvestmentRequest represents the payload for creating or previewing an
// investment. Unknown types are accepted and classified as "other".
type InvestmentRequest struct {
	Name           string  `json:"name" binding:"max=100"`
	Type           string  `json:"type" binding:"max=32"`
	AmountInvested float64 `json:"amount_invested" binding:"required,gt=0"`
	InstrumentID   string  `json:"instrument_id" binding:"max=32"`
}

func (r InvestmentRequest) input() services.InvestmentInput {
	return services.InvestmentInput{
		Name:           r.Name,
		Type:           r.Type,
		AmountInvested: r.AmountInvested,
		InstrumentID:   r.InstrumentID,
	}
}

// CreateInvestmentResponse is the created record with its projections.
type CreateInvestmentResponse struct {
	Investment  *models.Investment   `json:"investment"`
	Projections valuation.Projection `json:"projections"`
}

// SummaryQuery selects the display currency for summaries and reports.
type SummaryQuery struct {
	Currency string `form:"currency" binding:"omitempty,iso4217"`
}

// CreateInvestment handles the creation of a new investment.
// @Summary     Create an investment
// @Description Classify risk, resolve the expected return rate and store a new investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InvestmentRequest true "Investment details"
// @Success     201 {object} CreateInvestmentResponse "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.CreateInvestment(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"type": investment.Type, "amount_invested": investment.AmountInvested, "instrument_id": investment.InstrumentID})

	c.JSON(http.StatusCreated, CreateInvestmentResponse{
		Investment:  investment,
		Projections: valuation.ProjectAll(investment.CurrentValue, investment.ExpectedReturnRatePercent),
	})
}

// PreviewInvestment classifies a candidate without storing it.
// @Summary     Preview an investment
// @Description Return risk, expected return rate and projections for a candidate investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InvestmentRequest true "Candidate investment"
// @Success     200 {object} services.InvestmentPreview "Preview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investments/preview [post]
func (h *InvestmentHandler) PreviewInvestment(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	preview, err := h.investmentService.PreviewInvestment(req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

// GetInvestments lists the user's investments.
// @Summary     Get investments
// @Description Get a paginated list of investments, newest first
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.GetUserInvestments(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetInvestment returns one investment.
// @Summary     Get investment by ID
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// GetInvestmentProjections returns 1, 5 and 10 year projections.
// @Summary     Get investment projections
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} services.InvestmentProjections "Projections"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id}/projections [get]
func (h *InvestmentHandler) GetInvestmentProjections(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	projections, err := h.investmentService.GetInvestmentProjections(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, projections)
}

// DeleteInvestment permanently removes an investment.
// @Summary     Delete investment
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} map[string]string "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INVESTMENT", "investment", investmentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}

// GetPortfolioSummary aggregates the user's investments.
// @Summary     Get portfolio summary
// @Description Totals, gain percentage, allocation and average risk
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       currency query string false "ISO 4217 display currency (default INR)"
// @Success     200 {object} services.PortfolioSummary "Portfolio summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/summary [get]
func (h *InvestmentHandler) GetPortfolioSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	summary, err := h.investmentService.GetPortfolioSummary(userID, q.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetAllocationChart renders the allocation pie chart.
// @Summary     Get allocation chart
// @Tags        investments
// @Produce     png
// @Security    BearerAuth
// @Param       by query string false "Group by type or record" Enums(type, record)
// @Success     200 {file} binary "PNG image"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Nothing to chart"
// @Router      /investments/allocation.png [get]
func (h *InvestmentHandler) GetAllocationChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.investmentService.RenderAllocationChart(userID, services.AllocationGrouping(c.DefaultQuery("by", string(services.AllocationByType))))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// GetRateTable returns the canonical return-rate table.
// @Summary     Get return rates
// @Tags        investments
// @Produce     json
// @Success     200 {object} map[string][]valuation.RateEntry "Rate table"
// @Router      /investments/rates [get]
func (h *InvestmentHandler) GetRateTable(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rates": valuation.RateTable()})
}

// GetRiskAssessment classifies an investment type. Unknown types get the
// "other" assessment.
// @Summary     Classify risk
// @Tags        investments
// @Produce     json
// @Param       type path string true "Investment type"
// @Success     200 {object} valuation.RiskAssessment "Risk assessment"
// @Router      /investments/risk/{type} [get]
func (h *InvestmentHandler) GetRiskAssessment(c *gin.Context) {
	t := valuation.ParseInvestmentType(c.Param("type"))
	c.JSON(http.StatusOK, gin.H{
		"type":                         t,
		"risk":                         valuation.ClassifyRisk(t),
		"expected_return_rate_percent": valuation.AnnualReturnRate(t),
	})
}
