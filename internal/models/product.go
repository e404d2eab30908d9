package models

import "time"

// Product represents one catalog entry. Quantity is mutated only by sale
// creation and manual edits.
type Product struct {
	ID                int        `json:"product_id"`
	Name              string     `json:"product_name"`
	CategoryID        *int       `json:"category_id"`
	CategoryName      *string    `json:"category_name,omitempty"`
	Barcode           *string    `json:"barcode"`
	Price             float64    `json:"price"`
	CostPrice         float64    `json:"cost_price"`
	Quantity          int        `json:"quantity"`
	LowStockThreshold int        `json:"low_stock_threshold"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	Description       *string    `json:"description"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// LowStock reports whether the product is at or below its alert threshold.
func (p Product) LowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
