package services

import (
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
)

// accountService keeps the stored balance of each user.
type accountService struct {
	db       *gorm.DB
	currency string
}

// NewAccountService creates a new AccountServicer. New accounts are opened in
// defaultCurrency.
func NewAccountService(db *gorm.DB, defaultCurrency string) AccountServicer {
	return &accountService{db: db, currency: defaultCurrency}
}

// GetAccount returns the user's account, opening it with a zero balance on
// first use.
func (s *accountService) GetAccount(userID string) (*models.Account, error) {
	return s.ensureAccount(s.db, userID)
}

// ensureAccount inserts the account row if it is missing and loads it. The
// insert ignores a conflict on user_id so concurrent first reads are safe.
func (s *accountService) ensureAccount(tx *gorm.DB, userID string) (*models.Account, error) {
	opened := &models.Account{UserID: userID, Currency: s.currency}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(opened).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var account models.Account
	if err := tx.Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// SetBalance overwrites the stored balance.
func (s *accountService) SetBalance(userID string, balance float64) (*models.Account, error) {
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance must be a finite number")
	}
	account, err := s.GetAccount(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(account).Update("balance", balance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	account.Balance = balance
	return account, nil
}

// UpdateAccountBalance moves the user's balance by a transaction of the given
// type. It runs on tx so the caller can commit it together with the
// transaction row.
func (s *accountService) UpdateAccountBalance(tx *gorm.DB, userID string, txType models.TransactionType, amount float64) error {
	account, err := s.ensureAccount(tx, userID)
	if err != nil {
		return err
	}

	delta := amount
	switch txType {
	case models.TransactionTypeIncome:
	case models.TransactionTypeExpense:
		delta = -amount
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	if err := tx.Model(account).Update("balance", gorm.Expr("balance + ?", delta)).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteAllData wipes every record the user owns except the account itself and
// the audit trail, and resets the balance to zero.
func (s *accountService) DeleteAllData(userID string) (*DataResetResult, error) {
	result := &DataResetResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		targets := []struct {
			model interface{}
			count *int64
		}{
			{&models.Transaction{}, &result.Transactions},
			{&models.Budget{}, &result.Budgets},
			{&models.Investment{}, &result.Investments},
			{&models.SavingsGoal{}, &result.SavingsGoals},
			{&models.MonthlyLimit{}, &result.MonthlyLimits},
		}
		// Counts cover live rows; already soft-deleted rows are purged too.
		for _, target := range targets {
			if err := tx.Model(target.model).Where("user_id = ?", userID).Count(target.count).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(target.model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		account, err := s.ensureAccount(tx, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(account).Update("balance", 0).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
