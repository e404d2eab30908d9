package repo

import (
	"sort"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{nextID: 1}
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Add seeds a category; there is no API endpoint that creates them.
func (r *InMemoryCategoryRepository) Add(name string) models.Category {
	c := models.Category{ID: r.nextID, Name: name}
	r.nextID++
	r.categories = append(r.categories, c)
	return c
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = nil
	r.nextID = 1
}
