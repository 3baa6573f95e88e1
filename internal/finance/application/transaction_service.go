package application

import (
	"log"
	"strings"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
	financeErrors "github.com/riskimanta/expense-tracker/internal/finance/errors"
)

type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (s *TransactionService) GetAllTransactions() ([]domain.Transaction, error) {
	return s.repo.FindAll()
}

func (s *TransactionService) GetTransactionByID(transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.NewNotFoundError("Transaction not found")
	}
	return transaction, nil
}

func (s *TransactionService) GetTransactionsByUser(userID int) ([]domain.Transaction, error) {
	return s.repo.FindByUser(userID)
}

func (s *TransactionService) GetTransactionsByType(transactionType string) ([]domain.Transaction, error) {
	return s.repo.FindByType(transactionType)
}

func (s *TransactionService) GetTransactionsByCategory(categoryID int) ([]domain.Transaction, error) {
	return s.repo.FindByCategory(categoryID)
}

func (s *TransactionService) GetTransactionsByUserAndType(userID int, transactionType string) ([]domain.Transaction, error) {
	return s.repo.FindByUserAndType(userID, transactionType)
}

func (s *TransactionService) GetTransactionsByUserAndDateRange(userID int, startDate, endDate string) ([]domain.Transaction, error) {
	return s.repo.FindByUserAndDateRange(userID, startDate, endDate)
}

// CreateTransaction validates and normalizes the transaction, then writes it
// through the primary path. If the primary path fails for any reason the
// fallback path is attempted with the same normalized values; only when both
// fail does the create surface an error, carrying both causes.
func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	transaction.Normalize()

	if err := s.repo.Save(transaction); err != nil {
		log.Printf("Primary transaction insert failed, trying fallback: %v", err)
		if fallbackErr := s.repo.SaveReturningID(transaction); fallbackErr != nil {
			return financeErrors.NewInsertError(err, fallbackErr)
		}
	}
	return nil
}

// UpdateTransaction applies a partial patch. Supplied values are only taken
// when valid: a non-positive amount or blank type/description is ignored,
// while a malformed date is rejected outright.
func (s *TransactionService) UpdateTransaction(transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.NewNotFoundError("Transaction not found")
	}

	if patch.Amount != nil && *patch.Amount > 0 {
		transaction.Amount = *patch.Amount
	}
	if patch.Type != nil && strings.TrimSpace(*patch.Type) != "" {
		transaction.Type = strings.ToUpper(strings.TrimSpace(*patch.Type))
	}
	if patch.CategoryID != nil {
		transaction.CategoryID = *patch.CategoryID
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) != "" {
		transaction.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.TransactionDate != nil && strings.TrimSpace(*patch.TransactionDate) != "" {
		if !domain.IsValidTransactionDate(*patch.TransactionDate) {
			return nil, financeErrors.NewValidationError("Transaction date must be in YYYY-MM-DD format")
		}
		transaction.TransactionDate = *patch.TransactionDate
	}

	if err := s.repo.Update(*transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(transactionID int) error {
	deleted, err := s.repo.Delete(transactionID)
	if err != nil {
		return err
	}
	if !deleted {
		return financeErrors.NewNotFoundError("Transaction not found")
	}
	return nil
}
