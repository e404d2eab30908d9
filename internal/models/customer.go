package models

import "time"

// Customer holds contact details plus a denormalized lifetime purchase
// total, incremented by each sale.
type Customer struct {
	ID             int       `json:"customer_id"`
	Name           string    `json:"customer_name"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	Address        *string   `json:"address"`
	TotalPurchases float64   `json:"total_purchases"`
	CreatedAt      time.Time `json:"created_at"`
}
