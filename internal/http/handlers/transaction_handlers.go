package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// GetTransactionsHandler godoc
// @Summary List payment transactions
// @Tags transactions
// @Produce json
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/transactions [get]
func GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	dates, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	transactions, err := transactionRepo.GetAll(dates)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}
