package ports

import (
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

// DashboardStats holds the headline numbers for the dashboard view.
type DashboardStats struct {
	TotalProducts  int64
	LowStockItems  int64
	TodaySales     int64
	TotalCustomers int64
	RecentSales    []sales.Sale
}

// DailyRevenue is one day's aggregated sales revenue.
type DailyRevenue struct {
	Date  time.Time
	Total float64
}

// ProductSales aggregates sold quantity and revenue for a product.
type ProductSales struct {
	ProductID    int64
	Name         string
	QuantitySold int64
	Revenue      float64
}

// SalesSummary holds the sales report aggregates.
type SalesSummary struct {
	DailyTotal   float64
	WeeklyTotal  float64
	MonthlyTotal float64
	Daily        []DailyRevenue
	TopProducts  []ProductSales
}

// CategorySummary aggregates product count and stock valuation for one
// catalog category.
type CategorySummary struct {
	Category     catalog.Category
	ProductCount int64
	StockValue   float64
}

// InventorySummary holds the inventory valuation report.
type InventorySummary struct {
	Categories []CategorySummary
	TotalValue float64
}

// SalesReportRow is one flattened row of the sales report export.
// CustomerName is "Walk-in" when the sale has no customer on record.
type SalesReportRow struct {
	SaleID        int64
	Reference     string
	CustomerName  string
	Amount        float64
	PaymentMethod string
	CreatedAt     time.Time
}

// OrderExport bundles a purchase order with the resolved names needed to
// render the printable PO document.
type OrderExport struct {
	Order        purchasing.PurchaseOrder
	SupplierName string
	ProductNames map[int64]string
}
