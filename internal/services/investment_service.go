package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"wealthtrack/internal/charts"
	"wealthtrack/internal/currency"
	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/valuation"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db              *gorm.DB
	defaultCurrency string
}

// NewInvestmentService creates a new InvestmentServicer. defaultCurrency is
// used when a caller does not ask for a specific display currency.
func NewInvestmentService(db *gorm.DB, defaultCurrency string) InvestmentServicer {
	return &investmentService{
		db:              db,
		defaultCurrency: currency.Normalize(defaultCurrency, currency.DefaultCode),
	}
}

// resolved is a candidate investment after classification.
type resolved struct {
	name       string
	typ        valuation.InvestmentType
	amount     float64
	risk       valuation.RiskAssessment
	rate       float64
	instrument *valuation.Instrument
}

// resolve applies the classification rules shared by preview and create.
func resolve(input InvestmentInput) (*resolved, error) {
	if err := valuation.ValidatePrincipal(input.AmountInvested); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount invested must be greater than zero")
	}

	var instrument *valuation.Instrument
	if inst, ok := valuation.LookupInstrument(input.InstrumentID); ok {
		instrument = &inst
	}

	typ := valuation.ParseInvestmentType(input.Type)
	if strings.TrimSpace(input.Type) == "" && instrument != nil {
		typ = instrument.Type
	}
	// An instrument of another type does not apply to this record.
	if instrument != nil && instrument.Type != typ {
		instrument = nil
	}

	name := strings.TrimSpace(input.Name)
	if name == "" && instrument != nil {
		name = instrument.Label()
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}

	instrumentID := ""
	if instrument != nil {
		instrumentID = instrument.ID
	}

	return &resolved{
		name:       name,
		typ:        typ,
		amount:     input.AmountInvested,
		risk:       valuation.ResolveRisk(typ, instrumentID),
		rate:       valuation.ResolveReturnRate(typ, instrumentID),
		instrument: instrument,
	}, nil
}

// PreviewInvestment classifies a candidate without persisting it.
func (s *investmentService) PreviewInvestment(input InvestmentInput) (*InvestmentPreview, error) {
	r, err := resolve(input)
	if err != nil {
		return nil, err
	}
	return &InvestmentPreview{
		Name:                      r.name,
		Type:                      r.typ,
		AmountInvested:            r.amount,
		Risk:                      r.risk,
		ExpectedReturnRatePercent: r.rate,
		Instrument:                r.instrument,
		Projections:               valuation.ProjectAll(r.amount, r.rate),
	}, nil
}

// CreateInvestment classifies and stores a new investment. The current value
// starts at the principal.
func (s *investmentService) CreateInvestment(userID string, input InvestmentInput) (*models.Investment, error) {
	r, err := resolve(input)
	if err != nil {
		return nil, err
	}

	investment := &models.Investment{
		UserID:                    userID,
		Name:                      r.name,
		Type:                      r.typ,
		AmountInvested:            r.amount,
		CurrentValue:              r.amount,
		RiskLevel:                 r.risk.Level,
		ExpectedReturnRatePercent: r.rate,
	}
	if r.instrument != nil {
		investment.InstrumentID = r.instrument.ID
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

// GetUserInvestments returns a page of the user's investments, newest first.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := base.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page, totalItems)
	return &result, nil
}

// GetAllInvestments returns every investment of the user, oldest first.
func (s *investmentService) GetAllInvestments(userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// GetInvestmentByID returns an investment if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}

// GetInvestmentProjections compounds the stored current value at the rate
// captured when the record was created.
func (s *investmentService) GetInvestmentProjections(userID, investmentID string) (*InvestmentProjections, error) {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}
	return &InvestmentProjections{
		InvestmentID: investment.ID,
		PresentValue: investment.CurrentValue,
		RatePercent:  investment.ExpectedReturnRatePercent,
		Projections:  valuation.ProjectAll(investment.CurrentValue, investment.ExpectedReturnRatePercent),
	}, nil
}

// DeleteInvestment permanently removes an investment.
func (s *investmentService) DeleteInvestment(userID, investmentID string) error {
	result := s.db.Where("id = ? AND user_id = ?", investmentID, userID).Delete(&models.Investment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}
	return nil
}

// GetPortfolioSummary aggregates all of the user's investments.
func (s *investmentService) GetPortfolioSummary(userID, currencyCode string) (*PortfolioSummary, error) {
	investments, err := s.GetAllInvestments(userID)
	if err != nil {
		return nil, err
	}

	code := currency.Normalize(currencyCode, s.defaultCurrency)
	if !currency.Supported(code) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported currency "+code)
	}

	summary := valuation.Summarize(models.Holdings(investments))
	display, err := formatAmounts(code, map[string]float64{
		"total_invested":      summary.TotalInvested,
		"total_current_value": summary.TotalCurrentValue,
		"total_gains":         summary.TotalGains,
	})
	if err != nil {
		return nil, err
	}

	return &PortfolioSummary{
		Summary:  summary,
		Currency: code,
		Display:  display,
	}, nil
}

// RenderAllocationChart draws the portfolio allocation as a PNG pie chart.
func (s *investmentService) RenderAllocationChart(userID string, by AllocationGrouping) ([]byte, error) {
	investments, err := s.GetAllInvestments(userID)
	if err != nil {
		return nil, err
	}
	summary := valuation.Summarize(models.Holdings(investments))

	var (
		title  string
		slices []charts.Slice
	)
	switch by {
	case AllocationByRecord:
		title = "Allocation by investment"
		for _, a := range summary.AllocationByRecord {
			slices = append(slices, charts.Slice{Label: a.Name, Value: a.Value})
		}
	case AllocationByType, "":
		title = "Allocation by type"
		for _, t := range valuation.Types() {
			if v, ok := summary.AllocationByType[t]; ok {
				slices = append(slices, charts.Slice{Label: string(t), Value: v})
			}
		}
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "by must be one of: type, record")
	}

	png, err := charts.RenderAllocationPie(title, slices)
	if err != nil {
		if errors.Is(err, charts.ErrNoData) {
			return nil, apperrors.ErrChartUnavailable
		}
		logger.Get().Errorw("failed to render allocation chart", "error", err, "user_id", userID)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return png, nil
}

// formatAmounts renders each amount in code for display.
func formatAmounts(code string, amounts map[string]float64) (map[string]string, error) {
	out := make(map[string]string, len(amounts))
	for key, amount := range amounts {
		s, err := currency.Format(amount, code)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}
		out[key] = s
	}
	return out, nil
}
