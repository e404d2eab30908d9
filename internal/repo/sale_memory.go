package repo

import (
	"fmt"
	"sort"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
// It holds the transaction ledger too, so the in-memory transaction
// repository reads from it.
type InMemorySaleRepository struct {
	products  *InMemoryProductRepository
	customers *InMemoryCustomerRepository
	invoices  *InvoiceSequence

	sales        []models.Sale
	items        []models.SaleItem
	transactions []models.Transaction
	nextSaleID   int
	nextItemID   int
	nextTxID     int
}

func NewInMemorySaleRepository(products *InMemoryProductRepository, customers *InMemoryCustomerRepository) *InMemorySaleRepository {
	return &InMemorySaleRepository{
		products:   products,
		customers:  customers,
		invoices:   NewInvoiceSequence(),
		nextSaleID: 1,
		nextItemID: 1,
		nextTxID:   1,
	}
}

// Create mirrors the Postgres workflow. All stock checks run before any
// state changes so a failing item leaves nothing behind, matching the SQL
// transaction's rollback.
func (r *InMemorySaleRepository) Create(sale models.Sale, items []models.SaleItem) (models.Sale, error) {
	for _, item := range items {
		p, err := r.products.GetByID(item.ProductID)
		if err != nil || p.Quantity < item.Quantity {
			return models.Sale{}, fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
	}
	if sale.CustomerID != nil {
		if _, err := r.customers.GetByID(*sale.CustomerID); err != nil {
			return models.Sale{}, err
		}
	}

	sale.ID = r.nextSaleID
	r.nextSaleID++
	sale.InvoiceNumber = r.invoices.Next()
	sale.Status = "Completed"
	sale.SaleDate = time.Now().UTC()
	r.sales = append(r.sales, sale)

	for _, item := range items {
		item.ID = r.nextItemID
		r.nextItemID++
		item.SaleID = sale.ID
		r.items = append(r.items, item)
		_ = r.products.adjustQuantity(item.ProductID, -item.Quantity)
	}

	r.transactions = append(r.transactions, models.Transaction{
		ID:              r.nextTxID,
		SaleID:          sale.ID,
		Amount:          sale.TotalAmount,
		PaymentMethod:   sale.PaymentMethod,
		Status:          "Completed",
		TransactionDate: sale.SaleDate,
	})
	r.nextTxID++

	if sale.CustomerID != nil {
		_ = r.customers.addPurchase(*sale.CustomerID, sale.TotalAmount)
	}

	return sale, nil
}

func (r *InMemorySaleRepository) GetAll(dates DateRange) ([]models.Sale, error) {
	matched := []models.Sale{}
	for _, s := range r.sales {
		if !inDateRange(s.SaleDate, dates) {
			continue
		}
		matched = append(matched, r.withCustomerName(s))
	}
	sortSalesNewestFirst(matched)
	return matched, nil
}

func (r *InMemorySaleRepository) GetByID(id int) (models.SaleDetail, error) {
	for _, s := range r.sales {
		if s.ID != id {
			continue
		}
		d := models.SaleDetail{Sale: r.withCustomerName(s), Items: []models.SaleItem{}}
		if s.CustomerID != nil {
			if c, err := r.customers.GetByID(*s.CustomerID); err == nil {
				d.Phone = c.Phone
				d.Address = c.Address
			}
		}
		for _, item := range r.items {
			if item.SaleID == id {
				if p, err := r.products.GetByID(item.ProductID); err == nil {
					item.ProductName = p.Name
				}
				d.Items = append(d.Items, item)
			}
		}
		return d, nil
	}
	return models.SaleDetail{}, ErrSaleNotFound
}

func (r *InMemorySaleRepository) GetByCustomer(customerID, limit int) ([]models.Sale, error) {
	matched := []models.Sale{}
	for _, s := range r.sales {
		if s.CustomerID != nil && *s.CustomerID == customerID {
			matched = append(matched, r.withCustomerName(s))
		}
	}
	sortSalesNewestFirst(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Items returns the line items recorded for a sale; test helper.
func (r *InMemorySaleRepository) Items(saleID int) []models.SaleItem {
	items := []models.SaleItem{}
	for _, item := range r.items {
		if item.SaleID == saleID {
			items = append(items, item)
		}
	}
	return items
}

// Transactions returns all recorded payment rows; the in-memory
// transaction repository and tests read them.
func (r *InMemorySaleRepository) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// Sales returns the raw ledger; test helper.
func (r *InMemorySaleRepository) Sales() []models.Sale {
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = nil
	r.items = nil
	r.transactions = nil
	r.nextSaleID = 1
	r.nextItemID = 1
	r.nextTxID = 1
}

func (r *InMemorySaleRepository) withCustomerName(s models.Sale) models.Sale {
	if s.CustomerID != nil {
		if c, err := r.customers.GetByID(*s.CustomerID); err == nil {
			name := c.Name
			s.CustomerName = &name
		}
	}
	return s
}

func inDateRange(ts time.Time, dates DateRange) bool {
	day := ts.Truncate(24 * time.Hour)
	if dates.Start != nil && day.Before(dates.Start.Truncate(24*time.Hour)) {
		return false
	}
	if dates.End != nil && day.After(dates.End.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

func sortSalesNewestFirst(sales []models.Sale) {
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].SaleDate.Equal(sales[j].SaleDate) {
			return sales[i].ID > sales[j].ID
		}
		return sales[i].SaleDate.After(sales[j].SaleDate)
	})
}
