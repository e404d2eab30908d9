package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
	repo "github.com/rogerio-castellano/grocery-pos/internal/repo"
)

const customerHistoryLimit = 20

// GetCustomersHandler godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Param search query string false "Substring match on name or phone"
// @Success 200 {array} models.Customer
// @Failure 500 {object} ErrorResponse
// @Router /api/customers [get]
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll(r.URL.Query().Get("search"))
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// CreateCustomerHandler godoc
// @Summary Add a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body CustomerRequest true "Customer to add"
// @Success 201 {object} CustomerCreatedResponse
// @Failure 400 {array} ValidationError
// @Failure 500 {object} ErrorResponse
// @Router /api/customers [post]
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateCustomer(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := customerRepo.Create(models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, CustomerCreatedResponse{
		Message:    "Customer added successfully",
		CustomerID: created.ID,
	})
}

// UpdateCustomerHandler godoc
// @Summary Update a customer's contact details
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body CustomerRequest true "Updated customer"
// @Success 200 {object} MessageResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/customers/{id} [put]
func UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateCustomer(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	_, err = customerRepo.Update(models.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			errorJSON(w, http.StatusNotFound, "customer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Customer updated successfully"})
}

// DeleteCustomerHandler godoc
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/customers/{id} [delete]
func DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	if err := customerRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			errorJSON(w, http.StatusNotFound, "customer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Customer deleted successfully"})
}

// GetCustomerHistoryHandler godoc
// @Summary Get a customer's recent purchases
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} models.Sale
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/customers/{id}/history [get]
func GetCustomerHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	history, err := saleRepo.GetByCustomer(id, customerHistoryLimit)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if history == nil {
		history = []models.Sale{}
	}
	writeJSON(w, http.StatusOK, history)
}
