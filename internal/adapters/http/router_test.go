package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	adapthttp "github.com/ocastro/autoglass-mis/internal/adapters/http"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/handlers"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Minimal no-op service implementations. Route and guard behavior is what
// is under test here, not handler logic.

type noopAuth struct{}

func (noopAuth) Login(context.Context, string, string) (*identity.User, string, error) {
	return &identity.User{Username: "admin", Role: identity.RoleAdmin}, "token", nil
}

type noopInventory struct{}

func (noopInventory) ListProducts(context.Context, catalog.Filter) ([]catalog.Product, error) {
	return nil, nil
}
func (noopInventory) GetProduct(context.Context, int64) (*catalog.Product, error) {
	return &catalog.Product{}, nil
}
func (noopInventory) CreateProduct(_ context.Context, p *catalog.Product) (*catalog.Product, error) {
	return p, nil
}
func (noopInventory) UpdateProduct(_ context.Context, _ int64, p *catalog.Product) (*catalog.Product, error) {
	return p, nil
}
func (noopInventory) DeleteProduct(context.Context, int64) error { return nil }
func (noopInventory) AdjustStock(context.Context, int64, int, string) (*catalog.Product, error) {
	return &catalog.Product{}, nil
}

type noopCustomers struct{}

func (noopCustomers) ListCustomers(context.Context) ([]party.Customer, error) { return nil, nil }
func (noopCustomers) GetCustomer(context.Context, int64) (*party.Customer, error) {
	return &party.Customer{}, nil
}
func (noopCustomers) CreateCustomer(_ context.Context, c *party.Customer) (*party.Customer, error) {
	return c, nil
}
func (noopCustomers) UpdateCustomer(_ context.Context, _ int64, c *party.Customer) (*party.Customer, error) {
	return c, nil
}
func (noopCustomers) DeleteCustomer(context.Context, int64) error { return nil }

type noopSuppliers struct{}

func (noopSuppliers) ListSuppliers(context.Context) ([]party.Supplier, error) { return nil, nil }
func (noopSuppliers) GetSupplier(context.Context, int64) (*party.Supplier, error) {
	return &party.Supplier{}, nil
}
func (noopSuppliers) CreateSupplier(_ context.Context, s *party.Supplier) (*party.Supplier, error) {
	return s, nil
}
func (noopSuppliers) UpdateSupplier(_ context.Context, _ int64, s *party.Supplier) (*party.Supplier, error) {
	return s, nil
}
func (noopSuppliers) DeleteSupplier(context.Context, int64) error { return nil }

type noopSales struct{}

func (noopSales) ListSales(context.Context, int) ([]sales.Sale, error) { return nil, nil }
func (noopSales) GetSale(context.Context, int64) (*sales.Sale, error) {
	return &sales.Sale{}, nil
}
func (noopSales) CreateSale(_ context.Context, s *sales.Sale) (*sales.Sale, error) { return s, nil }

type noopPurchasing struct{}

func (noopPurchasing) ListOrders(context.Context) ([]purchasing.PurchaseOrder, error) {
	return nil, nil
}
func (noopPurchasing) GetOrder(context.Context, int64) (*purchasing.PurchaseOrder, error) {
	return &purchasing.PurchaseOrder{}, nil
}
func (noopPurchasing) CreateOrder(_ context.Context, o *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
	return o, nil
}
func (noopPurchasing) UpdateStatus(context.Context, int64, purchasing.Status) (*purchasing.PurchaseOrder, error) {
	return &purchasing.PurchaseOrder{}, nil
}

type noopUsers struct{}

func (noopUsers) ListUsers(context.Context) ([]identity.User, error) { return nil, nil }
func (noopUsers) CreateUser(_ context.Context, u *identity.User, _ string) (*identity.User, error) {
	return u, nil
}
func (noopUsers) UpdateUser(context.Context, int64, ports.UserUpdate) (*identity.User, error) {
	return &identity.User{}, nil
}

type noopReports struct{}

func (noopReports) Dashboard(context.Context) (*ports.DashboardStats, error) {
	return &ports.DashboardStats{}, nil
}
func (noopReports) SalesSummary(context.Context) (*ports.SalesSummary, error) {
	return &ports.SalesSummary{}, nil
}
func (noopReports) InventorySummary(context.Context) (*ports.InventorySummary, error) {
	return &ports.InventorySummary{}, nil
}
func (noopReports) SalesReportRows(context.Context, int) ([]ports.SalesReportRow, error) {
	return nil, nil
}
func (noopReports) OrderExport(context.Context, int64) (*ports.OrderExport, error) {
	return &ports.OrderExport{}, nil
}

type noopRegistry struct{}

func (noopRegistry) Register(ports.HealthChecker) {}
func (noopRegistry) CheckAll(context.Context) map[string]error {
	return map[string]error{}
}

func testTokens() *token.Manager {
	return token.NewManager("test-secret", time.Hour)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h := adapthttp.Handlers{
		Auth:          handlers.NewAuthHandler(noopAuth{}),
		Product:       handlers.NewProductHandler(noopInventory{}),
		Customer:      handlers.NewCustomerHandler(noopCustomers{}),
		Supplier:      handlers.NewSupplierHandler(noopSuppliers{}),
		Sale:          handlers.NewSaleHandler(noopSales{}),
		PurchaseOrder: handlers.NewPurchaseOrderHandler(noopPurchasing{}),
		User:          handlers.NewUserHandler(noopUsers{}),
		Report:        handlers.NewReportHandler(noopReports{}),
		Export:        handlers.NewExportHandler(noopReports{}),
		Health:        handlers.NewHealthHandler(noopRegistry{}),
	}
	return adapthttp.NewRouter(h, testTokens())
}

func authHeader(t *testing.T, role identity.Role) string {
	t.Helper()

	signed, err := testTokens().Generate(&identity.User{
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

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodGet, "/api/v1/products"},
		{http.MethodPost, "/api/v1/products"},
		{http.MethodGet, "/api/v1/products/{id}"},
		{http.MethodPatch, "/api/v1/products/{id}"},
		{http.MethodDelete, "/api/v1/products/{id}"},
		{http.MethodPost, "/api/v1/products/{id}/stock-adjustments"},
		{http.MethodGet, "/api/v1/customers"},
		{http.MethodPost, "/api/v1/customers"},
		{http.MethodGet, "/api/v1/customers/{id}"},
		{http.MethodPatch, "/api/v1/customers/{id}"},
		{http.MethodDelete, "/api/v1/customers/{id}"},
		{http.MethodGet, "/api/v1/suppliers"},
		{http.MethodPost, "/api/v1/suppliers"},
		{http.MethodGet, "/api/v1/suppliers/{id}"},
		{http.MethodPatch, "/api/v1/suppliers/{id}"},
		{http.MethodDelete, "/api/v1/suppliers/{id}"},
		{http.MethodGet, "/api/v1/sales"},
		{http.MethodPost, "/api/v1/sales"},
		{http.MethodGet, "/api/v1/sales/{id}"},
		{http.MethodGet, "/api/v1/purchase-orders"},
		{http.MethodPost, "/api/v1/purchase-orders"},
		{http.MethodGet, "/api/v1/purchase-orders/{id}"},
		{http.MethodPost, "/api/v1/purchase-orders/{id}/status"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPost, "/api/v1/users"},
		{http.MethodPatch, "/api/v1/users/{id}"},
		{http.MethodGet, "/api/v1/reports/dashboard"},
		{http.MethodGet, "/api/v1/reports/sales"},
		{http.MethodGet, "/api/v1/reports/inventory"},
		{http.MethodGet, "/api/v1/exports/sales"},
		{http.MethodGet, "/api/v1/exports/inventory"},
		{http.MethodGet, "/api/v1/exports/purchase-orders/{id}"},
	}

	registered := make(map[string]bool)
	err := chi.Walk(router.(chi.Router), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walking routes: %v", err)
	}

	for _, want := range expectedRoutes {
		if !registered[want.method+" "+want.path] {
			t.Errorf("route %s %s not registered", want.method, want.path)
		}
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/live = %d, want 200", rec.Code)
	}
}

func TestRouter_APIRequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated GET /api/v1/products = %d, want 401", rec.Code)
	}
}

func TestRouter_AuthenticatedAccess(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", authHeader(t, identity.RoleCashier))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("authenticated GET /api/v1/products = %d, want 200", rec.Code)
	}
}

func TestRouter_AdminSurfaceGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     identity.Role
		wantCode int
	}{
		{name: "staff gets 403", role: identity.RoleStaff, wantCode: http.StatusForbidden},
		{name: "cashier gets 403", role: identity.RoleCashier, wantCode: http.StatusForbidden},
		{name: "admin gets 200", role: identity.RoleAdmin, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/dashboard", nil)
			req.Header.Set("Authorization", authHeader(t, tt.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("GET /api/v1/reports/dashboard as %s = %d, want %d", tt.role, rec.Code, tt.wantCode)
			}
		})
	}
}
