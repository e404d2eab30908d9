package models

import "time"

// Sale is an append-only ledger entry. There are no update or delete
// operations once a sale is committed.
type Sale struct {
	ID             int       `json:"sale_id"`
	CustomerID     *int      `json:"customer_id"`
	CustomerName   *string   `json:"customer_name,omitempty"`
	Subtotal       float64   `json:"subtotal"`
	DiscountAmount float64   `json:"discount_amount"`
	TaxAmount      float64   `json:"tax_amount"`
	TotalAmount    float64   `json:"total_amount"`
	PaymentMethod  string    `json:"payment_method"`
	InvoiceNumber  string    `json:"invoice_number"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status"`
	SaleDate       time.Time `json:"sale_date"`
}

// SaleItem is one product line within a sale, created only as part of sale
// creation.
type SaleItem struct {
	ID          int     `json:"sale_item_id"`
	SaleID      int     `json:"sale_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// SaleDetail is a sale joined with its line items and the customer's
// contact fields, as returned by the single-sale lookup.
type SaleDetail struct {
	Sale
	Phone   *string    `json:"phone"`
	Address *string    `json:"address"`
	Items   []SaleItem `json:"items"`
}
