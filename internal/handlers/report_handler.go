package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/services"
)

// ReportHandler serves data exports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportReport returns the full report as a JSON attachment.
// @Summary     Export report
// @Description Transactions, budgets, savings goals, investments and summaries as a downloadable JSON file
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       currency query string false "ISO 4217 display currency (default INR)"
// @Success     200 {object} services.Report "Report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
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

	report, err := h.reportService.BuildReport(userID, q.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("wealthtrack-report-%s.json", report.GeneratedAt.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, report)
}
