package repo

import (
	"sort"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// InMemoryTransactionRepository reads the ledger recorded by an
// InMemorySaleRepository.
type InMemoryTransactionRepository struct {
	sales *InMemorySaleRepository
}

func NewInMemoryTransactionRepository(sales *InMemorySaleRepository) *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{sales: sales}
}

func (r *InMemoryTransactionRepository) GetAll(dates DateRange) ([]models.Transaction, error) {
	matched := []models.Transaction{}
	for _, t := range r.sales.Transactions() {
		if !inDateRange(t.TransactionDate, dates) {
			continue
		}
		for _, s := range r.sales.Sales() {
			if s.ID == t.SaleID {
				invoice := s.InvoiceNumber
				t.InvoiceNumber = &invoice
				if s.CustomerID != nil {
					if c, err := r.sales.customers.GetByID(*s.CustomerID); err == nil {
						name := c.Name
						t.CustomerName = &name
					}
				}
				break
			}
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].TransactionDate.Equal(matched[j].TransactionDate) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].TransactionDate.After(matched[j].TransactionDate)
	})
	return matched, nil
}
