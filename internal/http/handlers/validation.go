package handlers

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "product_name", Description: "Product name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "price", Description: "Price must be greater than zero"})
	}
	if p.CostPrice < 0 {
		errs = append(errs, ValidationError{Field: "cost_price", Description: "Cost price cannot be negative"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "Quantity cannot be negative"})
	}
	if p.LowStockThreshold != nil && *p.LowStockThreshold < 0 {
		errs = append(errs, ValidationError{Field: "low_stock_threshold", Description: "Threshold cannot be negative"})
	}
	if p.ExpiryDate != nil && *p.ExpiryDate != "" {
		if _, err := time.Parse(dateLayout, *p.ExpiryDate); err != nil {
			errs = append(errs, ValidationError{Field: "expiry_date", Description: "Expiry date must be YYYY-MM-DD"})
		}
	}
	return errs
}

func validateCustomer(c CustomerRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "customer_name", Description: "Customer name is required"})
	}
	return errs
}

func validateSale(s SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(s.PaymentMethod) == "" {
		errs = append(errs, ValidationError{Field: "payment_method", Description: "Payment method is required"})
	}
	if s.TotalAmount <= 0 {
		errs = append(errs, ValidationError{Field: "total_amount", Description: "Total amount must be greater than zero"})
	}
	if len(s.Items) == 0 {
		errs = append(errs, ValidationError{Field: "items", Description: "At least one item is required"})
	}
	for _, item := range s.Items {
		if item.ProductID <= 0 {
			errs = append(errs, ValidationError{Field: "items", Description: "Each item needs a valid product_id"})
			break
		}
		if item.Quantity <= 0 {
			errs = append(errs, ValidationError{Field: "items", Description: "Each item quantity must be greater than zero"})
			break
		}
	}
	return errs
}
