package handlers_test

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/http/handlers"
	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

var invoicePattern = regexp.MustCompile(`^INV-\d{14}$`)

func TestCreateSale(t *testing.T) {
	resetRepos()
	product := seedProduct(t, "Milk 1L", 50, 10)
	customer := seedCustomer(t, "Asha Rao")

	req := handlers.SaleRequest{
		CustomerID:    &customer.ID,
		Subtotal:      100,
		TaxAmount:     5,
		TotalAmount:   105,
		PaymentMethod: "cash",
		Items: []handlers.SaleItemRequest{
			{ProductID: product.ID, Quantity: 2, Price: 50, TotalPrice: 100},
		},
	}

	rr := doRequest(t, http.MethodPost, "/api/sales", req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp handlers.SaleCreatedResponse
	decodeResponse(t, rr, &resp)
	if resp.Message != "Sale completed successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.SaleID == 0 {
		t.Error("expected a sale_id in the response")
	}
	if !invoicePattern.MatchString(resp.InvoiceNumber) {
		t.Errorf("invoice number %q does not match INV-<timestamp>", resp.InvoiceNumber)
	}

	// One sale, one transaction, one line item, stock decremented,
	// customer total incremented.
	if got := len(saleRepo.Sales()); got != 1 {
		t.Fatalf("expected 1 sale, got %d", got)
	}
	if got := len(saleRepo.Transactions()); got != 1 {
		t.Fatalf("expected 1 transaction, got %d", got)
	}
	tx := saleRepo.Transactions()[0]
	if tx.SaleID != resp.SaleID || tx.Amount != 105 || tx.Status != "Completed" {
		t.Errorf("unexpected transaction record: %+v", tx)
	}
	items := saleRepo.Items(resp.SaleID)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("unexpected sale items: %+v", items)
	}
	updated, err := productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("product lookup failed: %v", err)
	}
	if updated.Quantity != 8 {
		t.Errorf("expected stock 8 after sale, got %d", updated.Quantity)
	}
	buyer, err := customerRepo.GetByID(customer.ID)
	if err != nil {
		t.Fatalf("customer lookup failed: %v", err)
	}
	if buyer.TotalPurchases != 105 {
		t.Errorf("expected total_purchases 105, got %v", buyer.TotalPurchases)
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	resetRepos()
	product := seedProduct(t, "Eggs (dozen)", 4, 3)

	req := handlers.SaleRequest{
		Subtotal:      20,
		TotalAmount:   20,
		PaymentMethod: "cash",
		Items: []handlers.SaleItemRequest{
			{ProductID: product.ID, Quantity: 5, Price: 4, TotalPrice: 20},
		},
	}

	rr := doRequest(t, http.MethodPost, "/api/sales", req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", rr.Code, rr.Body.String())
	}

	// The rejected sale must leave nothing behind.
	if got := len(saleRepo.Sales()); got != 0 {
		t.Errorf("expected no sales recorded, got %d", got)
	}
	if got := len(saleRepo.Transactions()); got != 0 {
		t.Errorf("expected no transactions recorded, got %d", got)
	}
	unchanged, _ := productRepo.GetByID(product.ID)
	if unchanged.Quantity != 3 {
		t.Errorf("expected stock untouched at 3, got %d", unchanged.Quantity)
	}
}

func TestCreateSaleValidation(t *testing.T) {
	resetRepos()

	cases := []struct {
		name string
		req  handlers.SaleRequest
	}{
		{"missing payment method", handlers.SaleRequest{
			TotalAmount: 10,
			Items:       []handlers.SaleItemRequest{{ProductID: 1, Quantity: 1}},
		}},
		{"zero total", handlers.SaleRequest{
			PaymentMethod: "cash",
			Items:         []handlers.SaleItemRequest{{ProductID: 1, Quantity: 1}},
		}},
		{"no items", handlers.SaleRequest{
			PaymentMethod: "cash",
			TotalAmount:   10,
		}},
		{"zero item quantity", handlers.SaleRequest{
			PaymentMethod: "cash",
			TotalAmount:   10,
			Items:         []handlers.SaleItemRequest{{ProductID: 1, Quantity: 0}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, http.MethodPost, "/api/sales", tc.req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
			}
			var errs []handlers.ValidationError
			decodeResponse(t, rr, &errs)
			if len(errs) == 0 {
				t.Error("expected validation errors in the response")
			}
		})
	}
}

func TestCreateSaleMalformedBody(t *testing.T) {
	resetRepos()

	rr := doRequest(t, http.MethodPost, "/api/sales", "not an object")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestGetSales(t *testing.T) {
	resetRepos()
	product := seedProduct(t, "Rice 5kg", 12, 50)

	for i := 0; i < 3; i++ {
		rr := doRequest(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
			Subtotal:      12,
			TotalAmount:   12,
			PaymentMethod: "cash",
			Items: []handlers.SaleItemRequest{
				{ProductID: product.ID, Quantity: 1, Price: 12, TotalPrice: 12},
			},
		})
		if rr.Code != http.StatusCreated {
			t.Fatalf("seed sale failed with status %d", rr.Code)
		}
	}

	rr := doRequest(t, http.MethodGet, "/api/sales", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var sales []models.Sale
	decodeResponse(t, rr, &sales)
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}
	for i := 1; i < len(sales); i++ {
		if sales[i].SaleDate.After(sales[i-1].SaleDate) {
			t.Error("expected sales ordered newest first")
		}
	}
}

func TestGetSalesDateBoundsAreInclusive(t *testing.T) {
	resetRepos()
	product := seedProduct(t, "Tea 250g", 3, 10)

	rr := doRequest(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		Subtotal:      3,
		TotalAmount:   3,
		PaymentMethod: "cash",
		Items: []handlers.SaleItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 3, TotalPrice: 3},
		},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("seed sale failed with status %d", rr.Code)
	}

	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	// A sale dated today sits on both bounds of [today, today].
	rr = doRequest(t, http.MethodGet, fmt.Sprintf("/api/sales?start_date=%s&end_date=%s", today, today), nil)
	var sales []models.Sale
	decodeResponse(t, rr, &sales)
	if len(sales) != 1 {
		t.Errorf("expected today's sale inside inclusive bounds, got %d sales", len(sales))
	}

	rr = doRequest(t, http.MethodGet, "/api/sales?start_date="+tomorrow, nil)
	decodeResponse(t, rr, &sales)
	if len(sales) != 0 {
		t.Errorf("expected empty result for a future start_date, got %d sales", len(sales))
	}

	rr = doRequest(t, http.MethodGet, "/api/sales?start_date=31-08-2026", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a malformed date, got %d", rr.Code)
	}
}

func TestGetSaleByID(t *testing.T) {
	resetRepos()
	product := seedProduct(t, "Butter 500g", 6, 10)
	customer := seedCustomer(t, "Liam Ortiz")

	rr := doRequest(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		CustomerID:    &customer.ID,
		Subtotal:      12,
		TotalAmount:   12,
		PaymentMethod: "upi",
		Items: []handlers.SaleItemRequest{
			{ProductID: product.ID, Quantity: 2, Price: 6, TotalPrice: 12},
		},
	})
	var created handlers.SaleCreatedResponse
	decodeResponse(t, rr, &created)

	rr = doRequest(t, http.MethodGet, fmt.Sprintf("/api/sales/%d", created.SaleID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var detail models.SaleDetail
	decodeResponse(t, rr, &detail)
	if detail.ID != created.SaleID {
		t.Errorf("expected sale_id %d, got %d", created.SaleID, detail.ID)
	}
	if detail.CustomerName == nil || *detail.CustomerName != "Liam Ortiz" {
		t.Errorf("expected customer name on sale detail, got %v", detail.CustomerName)
	}
	if len(detail.Items) != 1 || detail.Items[0].ProductName != "Butter 500g" {
		t.Errorf("unexpected items: %+v", detail.Items)
	}
}

func TestGetSaleByIDNotFound(t *testing.T) {
	resetRepos()

	rr := doRequest(t, http.MethodGet, "/api/sales/999", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	var resp handlers.ErrorResponse
	decodeResponse(t, rr, &resp)
	if resp.Error != "Sale not found" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}
