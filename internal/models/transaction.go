package models

import "time"

// Transaction is the one-to-one payment companion record of a sale.
type Transaction struct {
	ID              int       `json:"transaction_id"`
	SaleID          int       `json:"sale_id"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transaction_date"`
	InvoiceNumber   *string   `json:"invoice_number,omitempty"`
	CustomerName    *string   `json:"customer_name,omitempty"`
}
