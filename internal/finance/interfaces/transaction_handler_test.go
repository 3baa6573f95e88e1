package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
	financeErrors "github.com/riskimanta/expense-tracker/internal/finance/errors"
)

func TestCreateTransaction_Valid(t *testing.T) {
	body := `{"user_id":1,"type":"EXPENSE","amount":25.5,"category_id":2,"description":"Lunch","transaction_date":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Data domain.Transaction `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Data.ID)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	body := `{"user_id":1,"type":"EXPENSE","amount":-5,"category_id":2,"description":"Lunch","transaction_date":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		Err: financeErrors.NewValidationError("Transaction amount must be positive"),
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Transaction amount must be positive", response["message"])
}

func TestCreateTransaction_BothInsertsFail(t *testing.T) {
	body := `{"user_id":1,"type":"EXPENSE","amount":25.5,"category_id":2,"description":"Lunch","transaction_date":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		Err: financeErrors.NewInsertError(
			errors.New("primary insert failed"),
			errors.New("fallback insert failed"),
		),
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "primary insert failed")
	assert.Contains(t, response["message"], "fallback insert failed")
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetTransaction_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		Err: financeErrors.NewNotFoundError("Transaction not found"),
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetTransactionsByUser_DateRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions/user/1?start_date=2024-01-01&end_date=2024-01-31", nil)
	req.SetPathValue("userId", "1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetTransactionsByUser(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1, len(mockService.RangeRequests))
	assert.Equal(t, [2]string{"2024-01-01", "2024-01-31"}, mockService.RangeRequests[0])
}

func TestGetTransactionsByUser_MalformedDateRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions/user/1?start_date=2024-01-01&end_date=31-01-2024", nil)
	req.SetPathValue("userId", "1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetTransactionsByUser(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, 0, len(mockService.RangeRequests))
}

func TestGetTransactionsByUser_TypeFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions/user/1?type=INCOME", nil)
	req.SetPathValue("userId", "1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetTransactionsByUser(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"INCOME"}, mockService.TypeRequests)
}

func TestGetTransactionsByUser_InvalidUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions/user/abc", nil)
	req.SetPathValue("userId", "abc")
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.GetTransactionsByUser(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateTransaction_ForwardsPartialPatch(t *testing.T) {
	body := `{"amount":42.0}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/5", strings.NewReader(body))
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		Transaction: &domain.Transaction{ID: 5, Amount: 42.0},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotNil(t, mockService.LastPatch.Amount)
	assert.Equal(t, 42.0, *mockService.LastPatch.Amount)
	assert.Nil(t, mockService.LastPatch.Type)
	assert.Nil(t, mockService.LastPatch.Description)
}

func TestUpdateTransaction_InvalidDate(t *testing.T) {
	body := `{"transaction_date":"03/01/2024"}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/5", strings.NewReader(body))
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		Err: financeErrors.NewValidationError("Transaction date must be in YYYY-MM-DD format"),
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/transactions/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		Err: financeErrors.NewNotFoundError("Transaction not found"),
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteTransaction_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/transactions/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}
