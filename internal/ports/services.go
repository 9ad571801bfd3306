package ports

import (
	"context"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

// AuthService defines the service port for authentication.
// Implemented by the application layer; called by the auth handler.
type AuthService interface {
	// Login verifies the credentials and returns the user together with a
	// signed access token. Returns domain.ErrUnauthorized for unknown
	// usernames, wrong passwords, and inactive accounts; the three cases
	// are deliberately indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*identity.User, string, error)
}

// UserService defines the service port for user administration.
// All operations are admin-only; the role guard lives in HTTP middleware.
type UserService interface {
	// ListUsers returns all user accounts.
	ListUsers(ctx context.Context) ([]identity.User, error)

	// CreateUser hashes the password and creates a new account.
	// Returns domain.ErrValidation on bad input and domain.ErrConflict
	// when the username or email is already taken.
	CreateUser(ctx context.Context, user *identity.User, password string) (*identity.User, error)

	// UpdateUser applies the given update to an existing account.
	// Returns domain.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*identity.User, error)
}

// UserUpdate holds the optional fields for a user update.
// Nil means "do not change this field".
type UserUpdate struct {
	Role     *identity.Role
	Active   *bool
	Password *string
}

// InventoryService defines the service port for product catalog operations.
type InventoryService interface {
	// ListProducts returns products matching the given filter criteria.
	// Pass a zero-value Filter to list all products.
	ListProducts(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error)

	// GetProduct returns a single product by ID.
	// Returns domain.ErrNotFound if the product does not exist.
	GetProduct(ctx context.Context, id int64) (*catalog.Product, error)

	// CreateProduct validates and creates a new product, returning the
	// created entity with server-assigned fields (ID, timestamps).
	CreateProduct(ctx context.Context, product *catalog.Product) (*catalog.Product, error)

	// UpdateProduct updates an existing product and returns the updated
	// entity. Returns domain.ErrNotFound if the product does not exist.
	UpdateProduct(ctx context.Context, id int64, product *catalog.Product) (*catalog.Product, error)

	// DeleteProduct deletes a product by ID.
	// Returns domain.ErrNotFound if the product does not exist.
	DeleteProduct(ctx context.Context, id int64) error

	// AdjustStock applies a manual stock correction (positive or negative
	// delta). Returns domain.ErrConflict if the adjustment would drive the
	// quantity below zero, domain.ErrNotFound for unknown products.
	AdjustStock(ctx context.Context, id int64, delta int, reason string) (*catalog.Product, error)
}

// CustomerService defines the service port for the customer directory.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]party.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*party.Customer, error)
	CreateCustomer(ctx context.Context, customer *party.Customer) (*party.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, customer *party.Customer) (*party.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

// SupplierService defines the service port for the supplier directory.
type SupplierService interface {
	ListSuppliers(ctx context.Context) ([]party.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*party.Supplier, error)
	CreateSupplier(ctx context.Context, supplier *party.Supplier) (*party.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, supplier *party.Supplier) (*party.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

// SalesService defines the service port for point-of-sale operations.
type SalesService interface {
	// ListSales returns sales in reverse chronological order, newest first.
	// A limit of 0 means no limit.
	ListSales(ctx context.Context, limit int) ([]sales.Sale, error)

	// GetSale returns a single sale with its items.
	// Returns domain.ErrNotFound if the sale does not exist.
	GetSale(ctx context.Context, id int64) (*sales.Sale, error)

	// CreateSale prices the draft's items from the catalog, decrements
	// stock, and records the sale atomically. The whole sale fails with
	// domain.ErrConflict when any item exceeds available stock and with
	// domain.ErrNotFound when an item references an unknown product.
	// Products left at or below their minimum stock level trigger a
	// best-effort low-stock notification after commit.
	CreateSale(ctx context.Context, draft *sales.Sale) (*sales.Sale, error)
}

// PurchasingService defines the service port for purchase order operations.
type PurchasingService interface {
	// ListOrders returns purchase orders in reverse chronological order.
	ListOrders(ctx context.Context) ([]purchasing.PurchaseOrder, error)

	// GetOrder returns a single purchase order with its items.
	// Returns domain.ErrNotFound if the order does not exist.
	GetOrder(ctx context.Context, id int64) (*purchasing.PurchaseOrder, error)

	// CreateOrder computes item totals, assigns the next sequential PO
	// number, and records the order atomically in pending status.
	// Returns domain.ErrNotFound when an item references an unknown
	// product or the supplier does not exist.
	CreateOrder(ctx context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error)

	// UpdateStatus moves an order through its lifecycle. Illegal
	// transitions return domain.ErrConflict. Transitioning to delivered
	// receives every item's quantity into product stock atomically.
	UpdateStatus(ctx context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error)
}

// ReportService defines the service port for dashboards, summaries, and
// report export data. All operations are admin-only; the role guard lives
// in HTTP middleware.
type ReportService interface {
	// Dashboard returns the headline statistics shown on the landing view.
	// The independent aggregates are computed concurrently.
	Dashboard(ctx context.Context) (*DashboardStats, error)

	// SalesSummary returns revenue totals for today, the last 7 days, and
	// the last 30 days, the 30-day daily revenue series, and the top five
	// products by quantity sold.
	SalesSummary(ctx context.Context) (*SalesSummary, error)

	// InventorySummary returns per-category product counts and stock
	// valuation plus the total inventory value.
	InventorySummary(ctx context.Context) (*InventorySummary, error)

	// SalesReportRows returns flattened sale rows (with customer names
	// resolved) for report exports, newest first.
	SalesReportRows(ctx context.Context, limit int) ([]SalesReportRow, error)

	// OrderExport returns a purchase order together with the supplier and
	// product names needed to render the printable PO document.
	// Returns domain.ErrNotFound if the order does not exist.
	OrderExport(ctx context.Context, id int64) (*OrderExport, error)
}
