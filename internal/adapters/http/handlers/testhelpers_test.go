package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testTokenManager() *token.Manager {
	return token.NewManager("test-secret", time.Hour)
}

func bearerToken(t *testing.T, role identity.Role) string {
	t.Helper()

	signed, err := testTokenManager().Generate(&identity.User{
		ID:       7,
		Username: "operator",
		Role:     role,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}
	return "Bearer " + signed
}

func validProduct() catalog.Product {
	return catalog.Product{
		ID:            1,
		Name:          "Windshield",
		Category:      catalog.CategoryGlass,
		Description:   "Front windshield",
		Price:         250,
		StockQuantity: 12,
		MinStockLevel: 3,
		CreatedAt:     testTime,
		UpdatedAt:     testTime,
	}
}

func validCustomer() party.Customer {
	return party.Customer{
		ID:        1,
		Name:      "Ana Morales",
		Phone:     "555-0101",
		CreatedAt: testTime,
	}
}

func validSale() sales.Sale {
	return sales.Sale{
		ID:            1,
		Reference:     "S-AAAA1111",
		UserID:        7,
		TotalAmount:   500,
		PaymentMethod: sales.PaymentCash,
		CreatedAt:     testTime,
		Items: []sales.SaleItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 250, TotalPrice: 500},
		},
	}
}

func validOrder() purchasing.PurchaseOrder {
	return purchasing.PurchaseOrder{
		ID:          1,
		Number:      "PO-0001",
		SupplierID:  5,
		UserID:      7,
		TotalAmount: 400,
		Status:      purchasing.StatusPending,
		CreatedAt:   testTime,
		Items: []purchasing.Item{
			{ProductID: 1, Quantity: 4, UnitPrice: 100, TotalPrice: 400},
		},
	}
}

func validUser() identity.User {
	return identity.User{
		ID:        1,
		Username:  "admin",
		Email:     "admin@autoglass.example",
		Role:      identity.RoleAdmin,
		Active:    true,
		CreatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
