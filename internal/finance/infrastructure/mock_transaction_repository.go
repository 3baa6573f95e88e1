package infrastructure

import (
	"errors"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

// MockTransactionRepository keeps transactions in memory for service tests.
// FailPrimary makes Save fail so the fallback path can be exercised;
// FailFallback makes SaveReturningID fail too.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	NextID       int
	FailPrimary  bool
	FailFallback bool
	SaveCalls    int
}

func (m *MockTransactionRepository) assignID(transaction *domain.Transaction) {
	if m.NextID == 0 {
		m.NextID = 1
	}
	transaction.ID = m.NextID
	m.NextID++
	m.Transactions = append(m.Transactions, *transaction)
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	m.SaveCalls++
	if m.FailPrimary {
		return errors.New("primary insert failed")
	}
	m.assignID(transaction)
	return nil
}

func (m *MockTransactionRepository) SaveReturningID(transaction *domain.Transaction) error {
	m.SaveCalls++
	if m.FailFallback {
		return errors.New("fallback insert failed")
	}
	m.assignID(transaction)
	return nil
}

func (m *MockTransactionRepository) FindAll() ([]domain.Transaction, error) {
	return m.Transactions, nil
}

func (m *MockTransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByUser(userID int) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

func (m *MockTransactionRepository) FindByType(transactionType string) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.Type == transactionType {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

func (m *MockTransactionRepository) FindByCategory(categoryID int) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.CategoryID == categoryID {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

func (m *MockTransactionRepository) FindByUserAndType(userID int, transactionType string) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Type == transactionType {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

func (m *MockTransactionRepository) FindByUserAndDateRange(userID int, startDate, endDate string) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.TransactionDate >= startDate && transaction.TransactionDate <= endDate {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return errors.New("transaction not found")
}

func (m *MockTransactionRepository) Delete(transactionID int) (bool, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
