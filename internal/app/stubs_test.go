package app_test

import (
	"context"
	"log/slog"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Hand-written stubs for the repository ports. Each method delegates to an
// optional function field; unset methods return zero values.

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type stubUserRepo struct {
	listFn          func(context.Context) ([]identity.User, error)
	getFn           func(context.Context, int64) (*identity.User, error)
	getByUsernameFn func(context.Context, string) (*identity.User, error)
	createFn        func(context.Context, *identity.User) (*identity.User, error)
	updateFn        func(context.Context, *identity.User) (*identity.User, error)
}

func (s *stubUserRepo) List(ctx context.Context) ([]identity.User, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubUserRepo) Get(ctx context.Context, id int64) (*identity.User, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	if s.getByUsernameFn == nil {
		return nil, nil
	}
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserRepo) Create(ctx context.Context, user *identity.User) (*identity.User, error) {
	if s.createFn == nil {
		return user, nil
	}
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *identity.User) (*identity.User, error) {
	if s.updateFn == nil {
		return user, nil
	}
	return s.updateFn(ctx, user)
}

type stubProductRepo struct {
	listFn        func(context.Context, catalog.Filter) ([]catalog.Product, error)
	getFn         func(context.Context, int64) (*catalog.Product, error)
	createFn      func(context.Context, *catalog.Product) (*catalog.Product, error)
	updateFn      func(context.Context, *catalog.Product) (*catalog.Product, error)
	deleteFn      func(context.Context, int64) error
	adjustStockFn func(context.Context, int64, int) (*catalog.Product, error)
}

func (s *stubProductRepo) List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, filter)
}

func (s *stubProductRepo) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubProductRepo) Create(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	if s.createFn == nil {
		return p, nil
	}
	return s.createFn(ctx, p)
}

func (s *stubProductRepo) Update(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	if s.updateFn == nil {
		return p, nil
	}
	return s.updateFn(ctx, p)
}

func (s *stubProductRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubProductRepo) AdjustStock(ctx context.Context, id int64, delta int) (*catalog.Product, error) {
	if s.adjustStockFn == nil {
		return nil, nil
	}
	return s.adjustStockFn(ctx, id, delta)
}

type stubSaleRepo struct {
	listFn   func(context.Context, int) ([]sales.Sale, error)
	getFn    func(context.Context, int64) (*sales.Sale, error)
	createFn func(context.Context, *sales.Sale) (*sales.Sale, error)
}

func (s *stubSaleRepo) List(ctx context.Context, limit int) ([]sales.Sale, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, limit)
}

func (s *stubSaleRepo) Get(ctx context.Context, id int64) (*sales.Sale, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubSaleRepo) Create(ctx context.Context, draft *sales.Sale) (*sales.Sale, error) {
	if s.createFn == nil {
		return draft, nil
	}
	return s.createFn(ctx, draft)
}

type stubOrderRepo struct {
	listFn         func(context.Context) ([]purchasing.PurchaseOrder, error)
	getFn          func(context.Context, int64) (*purchasing.PurchaseOrder, error)
	createFn       func(context.Context, *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error)
	updateStatusFn func(context.Context, int64, purchasing.Status) (*purchasing.PurchaseOrder, error)
}

func (s *stubOrderRepo) List(ctx context.Context) ([]purchasing.PurchaseOrder, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubOrderRepo) Get(ctx context.Context, id int64) (*purchasing.PurchaseOrder, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubOrderRepo) Create(ctx context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
	if s.createFn == nil {
		return draft, nil
	}
	return s.createFn(ctx, draft)
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error) {
	if s.updateStatusFn == nil {
		return nil, nil
	}
	return s.updateStatusFn(ctx, id, next)
}

type stubCustomerRepo struct {
	listFn   func(context.Context) ([]party.Customer, error)
	getFn    func(context.Context, int64) (*party.Customer, error)
	createFn func(context.Context, *party.Customer) (*party.Customer, error)
	updateFn func(context.Context, *party.Customer) (*party.Customer, error)
	deleteFn func(context.Context, int64) error
}

func (s *stubCustomerRepo) List(ctx context.Context) ([]party.Customer, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubCustomerRepo) Get(ctx context.Context, id int64) (*party.Customer, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *party.Customer) (*party.Customer, error) {
	if s.createFn == nil {
		return c, nil
	}
	return s.createFn(ctx, c)
}

func (s *stubCustomerRepo) Update(ctx context.Context, c *party.Customer) (*party.Customer, error) {
	if s.updateFn == nil {
		return c, nil
	}
	return s.updateFn(ctx, c)
}

func (s *stubCustomerRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubSupplierRepo struct {
	getFn func(context.Context, int64) (*party.Supplier, error)
}

func (s *stubSupplierRepo) List(context.Context) ([]party.Supplier, error) { return nil, nil }

func (s *stubSupplierRepo) Get(ctx context.Context, id int64) (*party.Supplier, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubSupplierRepo) Create(_ context.Context, sup *party.Supplier) (*party.Supplier, error) {
	return sup, nil
}

func (s *stubSupplierRepo) Update(_ context.Context, sup *party.Supplier) (*party.Supplier, error) {
	return sup, nil
}

func (s *stubSupplierRepo) Delete(context.Context, int64) error { return nil }

type stubReportRepo struct {
	countProducts  int64
	countLowStock  int64
	countCustomers int64
	countSales     int64
	revenueFn      func(since time.Time) float64
	daily          []ports.DailyRevenue
	topProducts    []ports.ProductSales
	categories     []ports.CategorySummary
	reportRows     []ports.SalesReportRow
	err            error
}

func (s *stubReportRepo) CountProducts(context.Context) (int64, error) {
	return s.countProducts, s.err
}

func (s *stubReportRepo) CountLowStock(context.Context) (int64, error) {
	return s.countLowStock, s.err
}

func (s *stubReportRepo) CountCustomers(context.Context) (int64, error) {
	return s.countCustomers, s.err
}

func (s *stubReportRepo) CountSalesSince(context.Context, time.Time) (int64, error) {
	return s.countSales, s.err
}

func (s *stubReportRepo) SumRevenueSince(_ context.Context, since time.Time) (float64, error) {
	if s.revenueFn == nil {
		return 0, s.err
	}
	return s.revenueFn(since), s.err
}

func (s *stubReportRepo) RevenueByDay(context.Context, time.Time) ([]ports.DailyRevenue, error) {
	return s.daily, s.err
}

func (s *stubReportRepo) TopProducts(context.Context, time.Time, int) ([]ports.ProductSales, error) {
	return s.topProducts, s.err
}

func (s *stubReportRepo) CategorySummaries(context.Context) ([]ports.CategorySummary, error) {
	return s.categories, s.err
}

func (s *stubReportRepo) SalesReportRows(context.Context, int) ([]ports.SalesReportRow, error) {
	return s.reportRows, s.err
}

type stubNotifier struct {
	notified [][]catalog.Product
	err      error
}

func (s *stubNotifier) NotifyLowStock(_ context.Context, products []catalog.Product) error {
	s.notified = append(s.notified, products)
	return s.err
}
