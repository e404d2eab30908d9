package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
	repo "github.com/rogerio-castellano/grocery-pos/internal/repo"
)

const defaultLowStockThreshold = 10

// GetProductsHandler godoc
// @Summary List products
// @Description Lists products joined with category names, optionally filtered by search text and category
// @Tags products
// @Produce json
// @Param search query string false "Substring match on name or barcode"
// @Param category_id query int false "Exact category filter"
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.ProductFilter{Search: r.URL.Query().Get("search")}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		filter.CategoryID = &id
	}

	products, err := productRepo.GetAll(filter)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProductHandler godoc
// @Summary Add a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductCreatedResponse
// @Failure 400 {array} ValidationError
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := productRepo.Create(productFromRequest(req, 0))
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, ProductCreatedResponse{
		Message:   "Product added successfully",
		ProductID: created.ID,
	})
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} MessageResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := productRepo.Update(productFromRequest(req, id)); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product updated successfully"})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// SearchProductsHandler godoc
// @Summary Search in-stock products for billing
// @Tags products
// @Produce json
// @Param q query string false "Substring match on name or barcode"
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.SearchInStock(r.URL.Query().Get("q"), 20)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func productFromRequest(req ProductRequest, id int) models.Product {
	threshold := defaultLowStockThreshold
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	var expiry *time.Time
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		// Validated upstream.
		if t, err := time.Parse(dateLayout, *req.ExpiryDate); err == nil {
			expiry = &t
		}
	}

	return models.Product{
		ID:                id,
		Name:              req.Name,
		CategoryID:        req.CategoryID,
		Barcode:           req.Barcode,
		Price:             req.Price,
		CostPrice:         req.CostPrice,
		Quantity:          req.Quantity,
		LowStockThreshold: threshold,
		ExpiryDate:        expiry,
		Description:       req.Description,
	}
}
