package repo

import (
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// ProductFilter narrows the product listing. Zero values mean no
// constraint.
type ProductFilter struct {
	Search     string
	CategoryID *int
}

// DateRange bounds a query by calendar date, inclusive on both ends. Nil
// means unbounded.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	GetAll(filter ProductFilter) ([]models.Product, error)
	SearchInStock(query string, limit int) ([]models.Product, error)
}

// CategoryRepository lists the read-only category set.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
}

// CustomerRepository defines the interface for customer data operations.
// TotalPurchases is never written through here; only sale creation moves it.
type CustomerRepository interface {
	Create(customer models.Customer) (models.Customer, error)
	Update(customer models.Customer) (models.Customer, error)
	Delete(id int) error
	GetAll(search string) ([]models.Customer, error)
}

// SaleRepository owns the sale ledger. Create runs the whole billing
// workflow atomically: sale row, line items, stock decrements, transaction
// row and the customer purchase total.
type SaleRepository interface {
	Create(sale models.Sale, items []models.SaleItem) (models.Sale, error)
	GetAll(dates DateRange) ([]models.Sale, error)
	GetByID(id int) (models.SaleDetail, error)
	GetByCustomer(customerID, limit int) ([]models.Sale, error)
}

// TransactionRepository lists payment records joined with their sale's
// invoice number and customer name.
type TransactionRepository interface {
	GetAll(dates DateRange) ([]models.Transaction, error)
}

// ReportRepository serves the fixed read-only aggregates.
type ReportRepository interface {
	DashboardStats() (models.DashboardStats, error)
	SalesReport(reportType string) ([]models.SalesReportRow, error)
	ChartData() (models.ChartData, error)
}
