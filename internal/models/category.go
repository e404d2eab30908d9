package models

// Category is a read-only product grouping.
type Category struct {
	ID   int    `json:"category_id"`
	Name string `json:"category_name"`
}
