package repo

import "errors"

// ErrProductNotFound is returned when a product row does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrCustomerNotFound is returned when a customer row does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrSaleNotFound is returned when a sale row does not exist.
var ErrSaleNotFound = errors.New("sale not found")

// ErrInsufficientStock is returned when a sale would drive a product's
// quantity negative, or references a product that does not exist. The whole
// sale is rolled back in either case.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidReportType is returned for report types other than daily,
// monthly and yearly.
var ErrInvalidReportType = errors.New("invalid report type")
