package interfaces

import (
	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

// MockTransactionService returns canned data, or Err when set.
type MockTransactionService struct {
	Transactions []domain.Transaction
	Transaction  *domain.Transaction
	Err          error

	LastPatch     domain.TransactionPatch
	RangeRequests [][2]string
	TypeRequests  []string
}

func (m *MockTransactionService) GetAllTransactions() ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransactionByID(transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transaction, nil
}

func (m *MockTransactionService) GetTransactionsByUser(userID int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransactionsByType(transactionType string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.TypeRequests = append(m.TypeRequests, transactionType)
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransactionsByCategory(categoryID int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransactionsByUserAndType(userID int, transactionType string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.TypeRequests = append(m.TypeRequests, transactionType)
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransactionsByUserAndDateRange(userID int, startDate, endDate string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.RangeRequests = append(m.RangeRequests, [2]string{startDate, endDate})
	return m.Transactions, nil
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = 1
	return nil
}

func (m *MockTransactionService) UpdateTransaction(transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastPatch = patch
	return m.Transaction, nil
}

func (m *MockTransactionService) DeleteTransaction(transactionID int) error {
	return m.Err
}
