package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = "id, user_id, type, amount, category_id, description, transaction_date, created_at, updated_at"

func scanTransaction(row interface{ Scan(...interface{}) error }, t *domain.Transaction) error {
	return row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.CategoryID,
		&t.Description, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := scanTransaction(rows, &transaction); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindAll() ([]domain.Transaction, error) {
	return r.queryTransactions("SELECT " + transactionColumns + " FROM transactions ORDER BY id")
}

func (r *TransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := scanTransaction(r.db.QueryRow("SELECT "+transactionColumns+" FROM transactions WHERE id = $1", transactionID), &transaction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByUser(userID int) ([]domain.Transaction, error) {
	return r.queryTransactions("SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 ORDER BY id", userID)
}

func (r *TransactionRepository) FindByType(transactionType string) ([]domain.Transaction, error) {
	return r.queryTransactions("SELECT "+transactionColumns+" FROM transactions WHERE type = $1 ORDER BY id", transactionType)
}

func (r *TransactionRepository) FindByCategory(categoryID int) ([]domain.Transaction, error) {
	return r.queryTransactions("SELECT "+transactionColumns+" FROM transactions WHERE category_id = $1 ORDER BY id", categoryID)
}

func (r *TransactionRepository) FindByUserAndType(userID int, transactionType string) ([]domain.Transaction, error) {
	return r.queryTransactions("SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 AND type = $2 ORDER BY id", userID, transactionType)
}

func (r *TransactionRepository) FindByUserAndDateRange(userID int, startDate, endDate string) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 AND transaction_date BETWEEN $2 AND $3 ORDER BY transaction_date",
		userID, startDate, endDate,
	)
}

// Save is the primary write path: a plain insert followed by a last-inserted-id
// lookup, both inside one store transaction so a failed id lookup cannot leave
// an orphaned row behind.
func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO transactions (user_id, type, amount, category_id, description, transaction_date)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		transaction.UserID, transaction.Type, transaction.Amount,
		transaction.CategoryID, transaction.Description, transaction.TransactionDate,
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.QueryRow("SELECT lastval()").Scan(&transaction.ID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// SaveReturningID is the fallback write path, used when Save fails.
func (r *TransactionRepository) SaveReturningID(transaction *domain.Transaction) error {
	return r.db.QueryRow(
		`INSERT INTO transactions (user_id, type, amount, category_id, description, transaction_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`,
		transaction.UserID, transaction.Type, transaction.Amount,
		transaction.CategoryID, transaction.Description, transaction.TransactionDate,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`UPDATE transactions SET amount = $1, type = $2, category_id = $3, description = $4, transaction_date = $5, updated_at = NOW() WHERE id = $6`,
		transaction.Amount, transaction.Type, transaction.CategoryID,
		transaction.Description, transaction.TransactionDate, transaction.ID,
	)
	return err
}

func (r *TransactionRepository) Delete(transactionID int) (bool, error) {
	result, err := r.db.Exec("DELETE FROM transactions WHERE id = $1", transactionID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
