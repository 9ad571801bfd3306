package handlers_test

import (
	"context"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Hand-written service stubs with optional function fields. Unset methods
// return zero values.

type stubAuthService struct {
	loginFn func(context.Context, string, string) (*identity.User, string, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*identity.User, string, error) {
	if s.loginFn == nil {
		return nil, "", nil
	}
	return s.loginFn(ctx, username, password)
}

type stubInventoryService struct {
	listFn        func(context.Context, catalog.Filter) ([]catalog.Product, error)
	getFn         func(context.Context, int64) (*catalog.Product, error)
	createFn      func(context.Context, *catalog.Product) (*catalog.Product, error)
	updateFn      func(context.Context, int64, *catalog.Product) (*catalog.Product, error)
	deleteFn      func(context.Context, int64) error
	adjustStockFn func(context.Context, int64, int, string) (*catalog.Product, error)
}

func (s *stubInventoryService) ListProducts(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, filter)
}

func (s *stubInventoryService) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubInventoryService) CreateProduct(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	if s.createFn == nil {
		return p, nil
	}
	return s.createFn(ctx, p)
}

func (s *stubInventoryService) UpdateProduct(ctx context.Context, id int64, p *catalog.Product) (*catalog.Product, error) {
	if s.updateFn == nil {
		return p, nil
	}
	return s.updateFn(ctx, id, p)
}

func (s *stubInventoryService) DeleteProduct(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubInventoryService) AdjustStock(ctx context.Context, id int64, delta int, reason string) (*catalog.Product, error) {
	if s.adjustStockFn == nil {
		return nil, nil
	}
	return s.adjustStockFn(ctx, id, delta, reason)
}

type stubCustomerService struct {
	listFn   func(context.Context) ([]party.Customer, error)
	getFn    func(context.Context, int64) (*party.Customer, error)
	createFn func(context.Context, *party.Customer) (*party.Customer, error)
	updateFn func(context.Context, int64, *party.Customer) (*party.Customer, error)
	deleteFn func(context.Context, int64) error
}

func (s *stubCustomerService) ListCustomers(ctx context.Context) ([]party.Customer, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubCustomerService) GetCustomer(ctx context.Context, id int64) (*party.Customer, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubCustomerService) CreateCustomer(ctx context.Context, c *party.Customer) (*party.Customer, error) {
	if s.createFn == nil {
		return c, nil
	}
	return s.createFn(ctx, c)
}

func (s *stubCustomerService) UpdateCustomer(ctx context.Context, id int64, c *party.Customer) (*party.Customer, error) {
	if s.updateFn == nil {
		return c, nil
	}
	return s.updateFn(ctx, id, c)
}

func (s *stubCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubSupplierService struct {
	listFn   func(context.Context) ([]party.Supplier, error)
	getFn    func(context.Context, int64) (*party.Supplier, error)
	createFn func(context.Context, *party.Supplier) (*party.Supplier, error)
	updateFn func(context.Context, int64, *party.Supplier) (*party.Supplier, error)
	deleteFn func(context.Context, int64) error
}

func (s *stubSupplierService) ListSuppliers(ctx context.Context) ([]party.Supplier, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubSupplierService) GetSupplier(ctx context.Context, id int64) (*party.Supplier, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubSupplierService) CreateSupplier(ctx context.Context, sup *party.Supplier) (*party.Supplier, error) {
	if s.createFn == nil {
		return sup, nil
	}
	return s.createFn(ctx, sup)
}

func (s *stubSupplierService) UpdateSupplier(ctx context.Context, id int64, sup *party.Supplier) (*party.Supplier, error) {
	if s.updateFn == nil {
		return sup, nil
	}
	return s.updateFn(ctx, id, sup)
}

func (s *stubSupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubSalesService struct {
	listFn   func(context.Context, int) ([]sales.Sale, error)
	getFn    func(context.Context, int64) (*sales.Sale, error)
	createFn func(context.Context, *sales.Sale) (*sales.Sale, error)
}

func (s *stubSalesService) ListSales(ctx context.Context, limit int) ([]sales.Sale, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, limit)
}

func (s *stubSalesService) GetSale(ctx context.Context, id int64) (*sales.Sale, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubSalesService) CreateSale(ctx context.Context, draft *sales.Sale) (*sales.Sale, error) {
	if s.createFn == nil {
		return draft, nil
	}
	return s.createFn(ctx, draft)
}

type stubPurchasingService struct {
	listFn         func(context.Context) ([]purchasing.PurchaseOrder, error)
	getFn          func(context.Context, int64) (*purchasing.PurchaseOrder, error)
	createFn       func(context.Context, *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error)
	updateStatusFn func(context.Context, int64, purchasing.Status) (*purchasing.PurchaseOrder, error)
}

func (s *stubPurchasingService) ListOrders(ctx context.Context) ([]purchasing.PurchaseOrder, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubPurchasingService) GetOrder(ctx context.Context, id int64) (*purchasing.PurchaseOrder, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubPurchasingService) CreateOrder(ctx context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
	if s.createFn == nil {
		return draft, nil
	}
	return s.createFn(ctx, draft)
}

func (s *stubPurchasingService) UpdateStatus(ctx context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error) {
	if s.updateStatusFn == nil {
		return nil, nil
	}
	return s.updateStatusFn(ctx, id, next)
}

type stubUserService struct {
	listFn   func(context.Context) ([]identity.User, error)
	createFn func(context.Context, *identity.User, string) (*identity.User, error)
	updateFn func(context.Context, int64, ports.UserUpdate) (*identity.User, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]identity.User, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubUserService) CreateUser(ctx context.Context, user *identity.User, password string) (*identity.User, error) {
	if s.createFn == nil {
		return user, nil
	}
	return s.createFn(ctx, user, password)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, update ports.UserUpdate) (*identity.User, error) {
	if s.updateFn == nil {
		return nil, nil
	}
	return s.updateFn(ctx, id, update)
}

type stubReportService struct {
	dashboardFn        func(context.Context) (*ports.DashboardStats, error)
	salesSummaryFn     func(context.Context) (*ports.SalesSummary, error)
	inventorySummaryFn func(context.Context) (*ports.InventorySummary, error)
	salesReportRowsFn  func(context.Context, int) ([]ports.SalesReportRow, error)
	orderExportFn      func(context.Context, int64) (*ports.OrderExport, error)
}

func (s *stubReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	if s.dashboardFn == nil {
		return &ports.DashboardStats{}, nil
	}
	return s.dashboardFn(ctx)
}

func (s *stubReportService) SalesSummary(ctx context.Context) (*ports.SalesSummary, error) {
	if s.salesSummaryFn == nil {
		return &ports.SalesSummary{}, nil
	}
	return s.salesSummaryFn(ctx)
}

func (s *stubReportService) InventorySummary(ctx context.Context) (*ports.InventorySummary, error) {
	if s.inventorySummaryFn == nil {
		return &ports.InventorySummary{}, nil
	}
	return s.inventorySummaryFn(ctx)
}

func (s *stubReportService) SalesReportRows(ctx context.Context, limit int) ([]ports.SalesReportRow, error) {
	if s.salesReportRowsFn == nil {
		return nil, nil
	}
	return s.salesReportRowsFn(ctx, limit)
}

func (s *stubReportService) OrderExport(ctx context.Context, id int64) (*ports.OrderExport, error) {
	if s.orderExportFn == nil {
		return nil, nil
	}
	return s.orderExportFn(ctx, id)
}
