// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthtrack/internal/currency"
	"wealthtrack/internal/models"
	"wealthtrack/internal/valuation"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("investment_type", validateInvestmentType)
		_ = v.RegisterValidation("budget_month", validateBudgetMonth)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return currency.Supported(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return true
	}
	return false
}

// validateInvestmentType accepts canonical types and the legacy short codes.
func validateInvestmentType(fl validator.FieldLevel) bool {
	return valuation.IsKnownInvestmentType(fl.Field().String())
}

func validateBudgetMonth(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}
