package infrastructure

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

func sampleTransaction() *domain.Transaction {
	return &domain.Transaction{
		UserID:          1,
		Type:            "EXPENSE",
		Amount:          25.5,
		CategoryID:      2,
		Description:     "Lunch",
		TransactionDate: "2024-03-01",
	}
}

func TestTransactionSave_PrimaryPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	transaction := sampleTransaction()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(1, "EXPENSE", 25.5, 2, "Lunch", "2024-03-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT lastval\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"lastval"}).AddRow(7))
	mock.ExpectCommit()

	err = repo.Save(transaction)

	assert.NoError(t, err)
	assert.Equal(t, 7, transaction.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionSave_RollsBackWhenIDLookupFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT lastval\(\)`).
		WillReturnError(errors.New("lastval is not yet defined in this session"))
	mock.ExpectRollback()

	err = repo.Save(sampleTransaction())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionSave_RollsBackWhenInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err = repo.Save(sampleTransaction())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionSaveReturningID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	transaction := sampleTransaction()

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(1, "EXPENSE", 25.5, 2, "Lunch", "2024-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.SaveReturningID(transaction)

	assert.NoError(t, err)
	assert.Equal(t, 11, transaction.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionFindByID_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "type", "amount", "category_id",
			"description", "transaction_date", "created_at", "updated_at",
		}))

	transaction, err := repo.FindByID(99)

	assert.NoError(t, err)
	assert.Nil(t, transaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	mock.ExpectExec("DELETE FROM transactions WHERE id").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM transactions WHERE id").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(5)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(99)
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionFindByUserAndDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "amount", "category_id",
		"description", "transaction_date", "created_at", "updated_at",
	}).AddRow(1, 1, "EXPENSE", 25.5, 2, "Lunch", "2024-01-15", now, now)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE user_id = (.+) AND transaction_date BETWEEN").
		WithArgs(1, "2024-01-01", "2024-01-31").
		WillReturnRows(rows)

	transactions, err := repo.FindByUserAndDateRange(1, "2024-01-01", "2024-01-31")

	assert.NoError(t, err)
	assert.Equal(t, 1, len(transactions))
	assert.Equal(t, "2024-01-15", transactions[0].TransactionDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
