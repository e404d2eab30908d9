package handlers

type ProductRequest struct {
	Name              string   `json:"product_name"`
	CategoryID        *int     `json:"category_id"`
	Barcode           *string  `json:"barcode"`
	Price             float64  `json:"price"`
	CostPrice         float64  `json:"cost_price"`
	Quantity          int      `json:"quantity"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
	ExpiryDate        *string  `json:"expiry_date"` // YYYY-MM-DD
	Description       *string  `json:"description"`
}

type CustomerRequest struct {
	Name    string  `json:"customer_name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

type SaleItemRequest struct {
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"total_price"`
}

type SaleRequest struct {
	CustomerID     *int              `json:"customer_id"`
	Subtotal       float64           `json:"subtotal"`
	DiscountAmount float64           `json:"discount_amount"`
	TaxAmount      float64           `json:"tax_amount"`
	TotalAmount    float64           `json:"total_amount"`
	PaymentMethod  string            `json:"payment_method"`
	Notes          *string           `json:"notes"`
	Items          []SaleItemRequest `json:"items"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProductCreatedResponse struct {
	Message   string `json:"message"`
	ProductID int    `json:"product_id"`
}

type CustomerCreatedResponse struct {
	Message    string `json:"message"`
	CustomerID int    `json:"customer_id"`
}

type SaleCreatedResponse struct {
	Message       string `json:"message"`
	SaleID        int    `json:"sale_id"`
	InvoiceNumber string `json:"invoice_number"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
