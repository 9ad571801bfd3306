package ports

import (
	"context"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

// ProductRepository defines the outbound port for product persistence.
type ProductRepository interface {
	List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error)
	Get(ctx context.Context, id int64) (*catalog.Product, error)
	Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error)
	Update(ctx context.Context, product *catalog.Product) (*catalog.Product, error)
	Delete(ctx context.Context, id int64) error

	// AdjustStock atomically applies the delta to the product's quantity.
	// Returns domain.ErrConflict if the result would be negative.
	AdjustStock(ctx context.Context, id int64, delta int) (*catalog.Product, error)
}

// CustomerRepository defines the outbound port for customer persistence.
type CustomerRepository interface {
	List(ctx context.Context) ([]party.Customer, error)
	Get(ctx context.Context, id int64) (*party.Customer, error)
	Create(ctx context.Context, customer *party.Customer) (*party.Customer, error)
	Update(ctx context.Context, customer *party.Customer) (*party.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository defines the outbound port for supplier persistence.
type SupplierRepository interface {
	List(ctx context.Context) ([]party.Supplier, error)
	Get(ctx context.Context, id int64) (*party.Supplier, error)
	Create(ctx context.Context, supplier *party.Supplier) (*party.Supplier, error)
	Update(ctx context.Context, supplier *party.Supplier) (*party.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

// SaleRepository defines the outbound port for sale persistence.
type SaleRepository interface {
	List(ctx context.Context, limit int) ([]sales.Sale, error)
	Get(ctx context.Context, id int64) (*sales.Sale, error)

	// Create prices the draft's items against the current catalog,
	// decrements stock, and inserts the sale with its items in a single
	// transaction. Returns domain.ErrNotFound for unknown products and
	// domain.ErrConflict when stock would go negative.
	Create(ctx context.Context, draft *sales.Sale) (*sales.Sale, error)
}

// PurchaseOrderRepository defines the outbound port for purchase order
// persistence.
type PurchaseOrderRepository interface {
	List(ctx context.Context) ([]purchasing.PurchaseOrder, error)
	Get(ctx context.Context, id int64) (*purchasing.PurchaseOrder, error)

	// Create assigns the next sequential order number and inserts the
	// order with its items in a single transaction.
	Create(ctx context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error)

	// UpdateStatus transitions the order, receiving item quantities into
	// stock when the new status is delivered. Illegal transitions return
	// domain.ErrConflict.
	UpdateStatus(ctx context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error)
}

// UserRepository defines the outbound port for user account persistence.
type UserRepository interface {
	List(ctx context.Context) ([]identity.User, error)
	Get(ctx context.Context, id int64) (*identity.User, error)

	// GetByUsername returns domain.ErrNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*identity.User, error)

	// Create returns domain.ErrConflict when the username or email is
	// already taken.
	Create(ctx context.Context, user *identity.User) (*identity.User, error)
	Update(ctx context.Context, user *identity.User) (*identity.User, error)
}

// ReportRepository defines the outbound port for report aggregates. Each
// method maps to one or two aggregate queries; composition into report
// payloads happens in the application layer.
type ReportRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountSalesSince(ctx context.Context, since time.Time) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
	RevenueByDay(ctx context.Context, since time.Time) ([]DailyRevenue, error)
	TopProducts(ctx context.Context, since time.Time, limit int) ([]ProductSales, error)
	CategorySummaries(ctx context.Context) ([]CategorySummary, error)
	SalesReportRows(ctx context.Context, limit int) ([]SalesReportRow, error)
}
