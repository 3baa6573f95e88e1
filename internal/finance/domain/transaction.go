package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/riskimanta/expense-tracker/internal/finance/errors"
)

var transactionDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Transaction struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	Type            string    `json:"type"` // stored upper-case trimmed
	Amount          float64   `json:"amount"`
	CategoryID      int       `json:"category_id"`
	Description     string    `json:"description"`
	TransactionDate string    `json:"transaction_date"` // YYYY-MM-DD
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransactionPatch carries a partial update: nil fields preserve the stored value.
type TransactionPatch struct {
	Amount          *float64 `json:"amount"`
	Type            *string  `json:"type"`
	CategoryID      *int     `json:"category_id"`
	Description     *string  `json:"description"`
	TransactionDate *string  `json:"transaction_date"`
}

// Validate checks the required fields in the order clients see the errors:
// amount, type, category, user, description, date.
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return errors.NewValidationError("Transaction amount must be positive")
	}
	if strings.TrimSpace(t.Type) == "" {
		return errors.NewValidationError("Transaction type is required")
	}
	if t.CategoryID == 0 {
		return errors.NewValidationError("Category ID is required")
	}
	if t.UserID == 0 {
		return errors.NewValidationError("User ID is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.NewValidationError("Description is required")
	}
	if strings.TrimSpace(t.TransactionDate) == "" {
		return errors.NewValidationError("Transaction date is required")
	}
	if !IsValidTransactionDate(t.TransactionDate) {
		return errors.NewValidationError("Transaction date must be in YYYY-MM-DD format")
	}
	return nil
}

// Normalize puts type and description into their stored form.
func (t *Transaction) Normalize() {
	t.Type = strings.ToUpper(strings.TrimSpace(t.Type))
	t.Description = strings.TrimSpace(t.Description)
}

func IsValidTransactionDate(date string) bool {
	return transactionDatePattern.MatchString(date)
}

type TransactionRepository interface {
	FindAll() ([]Transaction, error)
	FindByID(transactionID int) (*Transaction, error)
	FindByUser(userID int) ([]Transaction, error)
	FindByType(transactionType string) ([]Transaction, error)
	FindByCategory(categoryID int) ([]Transaction, error)
	FindByUserAndType(userID int, transactionType string) ([]Transaction, error)
	FindByUserAndDateRange(userID int, startDate, endDate string) ([]Transaction, error)
	// Save is the primary write path: insert plus last-inserted-id lookup in
	// one store transaction. SaveReturningID is the fallback path.
	Save(transaction *Transaction) error
	SaveReturningID(transaction *Transaction) error
	Update(transaction Transaction) error
	Delete(transactionID int) (bool, error)
}
