package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/grocery-pos/internal/http/handlers"
	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

func TestCreateCustomer(t *testing.T) {
	resetRepos()

	phone := "555-0101"
	rr := doRequest(t, http.MethodPost, "/api/customers", handlers.CustomerRequest{
		Name:  "Asha Rao",
		Phone: &phone,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp handlers.CustomerCreatedResponse
	decodeResponse(t, rr, &resp)
	if resp.Message != "Customer added successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}

	created, err := customerRepo.GetByID(resp.CustomerID)
	if err != nil {
		t.Fatalf("created customer not found: %v", err)
	}
	if created.TotalPurchases != 0 {
		t.Errorf("expected total_purchases to start at 0, got %v", created.TotalPurchases)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	resetRepos()

	rr := doRequest(t, http.MethodPost, "/api/customers", handlers.CustomerRequest{Name: "   "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	var errs []handlers.ValidationError
	decodeResponse(t, rr, &errs)
	if len(errs) != 1 || errs[0].Field != "customer_name" {
		t.Errorf("expected a customer_name validation error, got %+v", errs)
	}
}

func TestGetCustomers(t *testing.T) {
	resetRepos()
	seedCustomer(t, "Asha Rao")
	customer := seedCustomer(t, "Liam Ortiz")
	phone := "555-0199"
	if _, err := customerRepo.Update(models.Customer{ID: customer.ID, Name: customer.Name, Phone: &phone}); err != nil {
		t.Fatalf("failed to set phone: %v", err)
	}

	rr := doRequest(t, http.MethodGet, "/api/customers", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var customers []models.Customer
	decodeResponse(t, rr, &customers)
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}

	// Search matches name or phone.
	rr = doRequest(t, http.MethodGet, "/api/customers?search=asha", nil)
	decodeResponse(t, rr, &customers)
	if len(customers) != 1 || customers[0].Name != "Asha Rao" {
		t.Errorf("unexpected name search result: %+v", customers)
	}

	rr = doRequest(t, http.MethodGet, "/api/customers?search=0199", nil)
	decodeResponse(t, rr, &customers)
	if len(customers) != 1 || customers[0].Name != "Liam Ortiz" {
		t.Errorf("unexpected phone search result: %+v", customers)
	}
}

func TestUpdateCustomer(t *testing.T) {
	resetRepos()
	customer := seedCustomer(t, "Asha Rao")

	email := "asha@example.com"
	rr := doRequest(t, http.MethodPut, fmt.Sprintf("/api/customers/%d", customer.ID), handlers.CustomerRequest{
		Name:  "Asha Rao",
		Email: &email,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	updated, _ := customerRepo.GetByID(customer.ID)
	if updated.Email == nil || *updated.Email != email {
		t.Errorf("update not applied: %+v", updated)
	}

	rr = doRequest(t, http.MethodPut, "/api/customers/999", handlers.CustomerRequest{Name: "Ghost"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for a missing customer, got %d", rr.Code)
	}
}

func TestDeleteCustomer(t *testing.T) {
	resetRepos()
	customer := seedCustomer(t, "Asha Rao")

	rr := doRequest(t, http.MethodDelete, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	rr = doRequest(t, http.MethodDelete, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404 on repeat delete, got %d", rr.Code)
	}
}

func TestGetCustomerHistory(t *testing.T) {
	resetRepos()
	product := seedProduct(t, "Rice 5kg", 12, 100)
	customer := seedCustomer(t, "Asha Rao")
	other := seedCustomer(t, "Liam Ortiz")

	for _, id := range []int{customer.ID, customer.ID, other.ID} {
		cid := id
		rr := doRequest(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
			CustomerID:    &cid,
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

	rr := doRequest(t, http.MethodGet, fmt.Sprintf("/api/customers/%d/history", customer.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var history []models.Sale
	decodeResponse(t, rr, &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 sales in history, got %d", len(history))
	}
	for _, s := range history {
		if s.CustomerID == nil || *s.CustomerID != customer.ID {
			t.Errorf("history includes a sale for another customer: %+v", s)
		}
	}

	// A customer with no sales has an empty history, not an error.
	empty := seedCustomer(t, "New Customer")
	rr = doRequest(t, http.MethodGet, fmt.Sprintf("/api/customers/%d/history", empty.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "[]" {
		t.Errorf("expected an empty JSON array, got %s", body)
	}
}
