package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
	repo "github.com/rogerio-castellano/grocery-pos/internal/repo"
)

// CreateSaleHandler godoc
// @Summary Create a sale
// @Description Records a sale with its line items, decrements stock, writes the payment transaction and updates the customer's purchase total, all atomically
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleCreatedResponse
// @Failure 400 {array} ValidationError
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse
// @Router /api/sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateSale(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	sale := models.Sale{
		CustomerID:     req.CustomerID,
		Subtotal:       req.Subtotal,
		DiscountAmount: req.DiscountAmount,
		TaxAmount:      req.TaxAmount,
		TotalAmount:    req.TotalAmount,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
	}

	items := make([]models.SaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.SaleItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.TotalPrice,
		}
	}

	created, err := saleRepo.Create(sale, items)
	if err != nil {
		if errors.Is(err, repo.ErrInsufficientStock) {
			errorJSON(w, http.StatusConflict, err.Error())
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, SaleCreatedResponse{
		Message:       "Sale completed successfully",
		SaleID:        created.ID,
		InvoiceNumber: created.InvoiceNumber,
	})
}

// GetSalesHandler godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} models.Sale
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	dates, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	sales, err := saleRepo.GetAll(dates)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

// GetSaleByIDHandler godoc
// @Summary Get a sale with its items
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.SaleDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/sales/{id} [get]
func GetSaleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid sale ID")
		return
	}

	sale, err := saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			errorJSON(w, http.StatusNotFound, "Sale not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

func dateRangeFromQuery(w http.ResponseWriter, r *http.Request) (repo.DateRange, bool) {
	start, err := parseDateParam(r, "start_date")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return repo.DateRange{}, false
	}
	end, err := parseDateParam(r, "end_date")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return repo.DateRange{}, false
	}
	return repo.DateRange{Start: start, End: end}, true
}
