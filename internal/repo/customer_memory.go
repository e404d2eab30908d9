package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// InMemoryCustomerRepository is an in-memory implementation of
// CustomerRepository.
type InMemoryCustomerRepository struct {
	customers []models.Customer
	nextID    int
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{nextID: 1}
}

func (r *InMemoryCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	c.ID = r.nextID
	r.nextID++
	c.TotalPurchases = 0
	c.CreatedAt = time.Now().UTC()
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *InMemoryCustomerRepository) Update(c models.Customer) (models.Customer, error) {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			c.TotalPurchases = existing.TotalPurchases
			c.CreatedAt = existing.CreatedAt
			r.customers[i] = c
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Delete(id int) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) GetAll(search string) ([]models.Customer, error) {
	matched := []models.Customer{}
	for _, c := range r.customers {
		if search != "" && !matchesSearch(search, c.Name, strPtrValue(c.Phone)) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, nil
}

// GetByID is used by the in-memory sale workflow and tests.
func (r *InMemoryCustomerRepository) GetByID(id int) (models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

// addPurchase applies the sale workflow's relative increment.
func (r *InMemoryCustomerRepository) addPurchase(id int, amount float64) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers[i].TotalPurchases += amount
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Clear() {
	r.customers = nil
	r.nextID = 1
}
