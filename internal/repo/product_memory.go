package repo

import (
	"sort"
	"strings"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by handler tests.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{nextID: 1}
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	p.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) Update(p models.Product) (models.Product, error) {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = time.Now().UTC()
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	matched := []models.Product{}
	for _, p := range r.products {
		if filter.Search != "" && !matchesSearch(filter.Search, p.Name, strPtrValue(p.Barcode)) {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		matched = append(matched, p)
	}
	sortProductsByName(matched)
	return matched, nil
}

func (r *InMemoryProductRepository) SearchInStock(query string, limit int) ([]models.Product, error) {
	matched := []models.Product{}
	for _, p := range r.products {
		if p.Quantity <= 0 {
			continue
		}
		if !matchesSearch(query, p.Name, strPtrValue(p.Barcode)) {
			continue
		}
		matched = append(matched, p)
	}
	sortProductsByName(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// GetByID is not part of ProductRepository; the in-memory sale workflow and
// tests use it directly.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// adjustQuantity applies a relative stock change with the same non-negative
// guard the SQL decrement enforces.
func (r *InMemoryProductRepository) adjustQuantity(id, delta int) error {
	for i, p := range r.products {
		if p.ID == id {
			if p.Quantity+delta < 0 {
				return ErrInsufficientStock
			}
			r.products[i].Quantity += delta
			r.products[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = nil
	r.nextID = 1
}

func matchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func sortProductsByName(products []models.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
}

func strPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
