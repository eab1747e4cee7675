package services

import "time"

type reportService struct {
	transactions TransactionServicer
	budgets      BudgetServicer
	savings      SavingsServicer
	investments  InvestmentServicer
}

// NewReportService creates a ReportServicer over the domain services.
func NewReportService(
	transactions TransactionServicer,
	budgets BudgetServicer,
	savings SavingsServicer,
	investments InvestmentServicer,
) ReportServicer {
	return &reportService{
		transactions: transactions,
		budgets:      budgets,
		savings:      savings,
		investments:  investments,
	}
}

// BuildReport gathers everything the user owns into a single export.
func (s *reportService) BuildReport(userID, currencyCode string) (*Report, error) {
	portfolio, err := s.investments.GetPortfolioSummary(userID, currencyCode)
	if err != nil {
		return nil, err
	}
	code := portfolio.Currency

	transactions, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	txSummary, err := s.transactions.GetTransactionSummary(userID, TransactionFilter{})
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets.GetAllBudgets(userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.savings.GetAllSavingsGoals(userID)
	if err != nil {
		return nil, err
	}
	investments, err := s.investments.GetAllInvestments(userID)
	if err != nil {
		return nil, err
	}

	display := make(map[string]string, len(portfolio.Display)+3)
	for k, v := range portfolio.Display {
		display[k] = v
	}
	totals, err := formatAmounts(code, map[string]float64{
		"total_income":  txSummary.TotalIncome,
		"total_expense": txSummary.TotalExpense,
		"balance":       txSummary.Balance,
	})
	if err != nil {
		return nil, err
	}
	for k, v := range totals {
		display[k] = v
	}

	return &Report{
		GeneratedAt:        time.Now().UTC(),
		Currency:           code,
		Transactions:       transactions,
		TransactionSummary: txSummary,
		Budgets:            budgets,
		SavingsGoals:       goals,
		Investments:        investments,
		Portfolio:          portfolio,
		Display:            display,
	}, nil
}
