package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ocastro/autoglass-mis/internal/app/fanout"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

const (
	// recentSalesCount is how many sales the dashboard shows.
	recentSalesCount = 5
	// topProductsCount is how many products the sales summary ranks.
	topProductsCount = 5
	// dashboardWorkers bounds the concurrent aggregate queries.
	dashboardWorkers = 4
)

// Compile-time check that ReportService implements ports.ReportService.
var _ ports.ReportService = (*ReportService)(nil)

// ReportService implements ports.ReportService by composing repository
// aggregates into report payloads.
type ReportService struct {
	reports   ports.ReportRepository
	sales     ports.SaleRepository
	orders    ports.PurchaseOrderRepository
	suppliers ports.SupplierRepository
	products  ports.ProductRepository
	logger    *slog.Logger
}

// NewReportService creates a ReportService.
func NewReportService(
	reports ports.ReportRepository,
	saleRepo ports.SaleRepository,
	orders ports.PurchaseOrderRepository,
	suppliers ports.SupplierRepository,
	products ports.ProductRepository,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		reports:   reports,
		sales:     saleRepo,
		orders:    orders,
		suppliers: suppliers,
		products:  products,
		logger:    logger,
	}
}

// Dashboard computes the four headline counters concurrently, then loads
// the recent sales list.
func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	dayStart := startOfToday()

	queries := []func(context.Context) (int64, error){
		s.reports.CountProducts,
		s.reports.CountLowStock,
		func(ctx context.Context) (int64, error) { return s.reports.CountSalesSince(ctx, dayStart) },
		s.reports.CountCustomers,
	}

	results := fanout.Run(ctx, dashboardWorkers, queries,
		func(ctx context.Context, q func(context.Context) (int64, error)) (int64, error) {
			return q(ctx)
		},
	)
	for _, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to compute dashboard stats",
				slog.String("operation", "Dashboard"),
				slog.Any("error", res.Err),
			)
			return nil, res.Err
		}
	}

	recent, err := s.sales.List(ctx, recentSalesCount)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load recent sales",
			slog.String("operation", "Dashboard"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.DashboardStats{
		TotalProducts:  results[0].Value,
		LowStockItems:  results[1].Value,
		TodaySales:     results[2].Value,
		TotalCustomers: results[3].Value,
		RecentSales:    recent,
	}, nil
}

// SalesSummary returns revenue totals and series for the sales report.
func (s *ReportService) SalesSummary(ctx context.Context) (*ports.SalesSummary, error) {
	now := time.Now().UTC()
	dayStart := startOfToday()
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)

	daily, err := s.reports.SumRevenueSince(ctx, dayStart)
	if err != nil {
		return nil, s.reportError(ctx, "SalesSummary", err)
	}
	weekly, err := s.reports.SumRevenueSince(ctx, weekStart)
	if err != nil {
		return nil, s.reportError(ctx, "SalesSummary", err)
	}
	monthly, err := s.reports.SumRevenueSince(ctx, monthStart)
	if err != nil {
		return nil, s.reportError(ctx, "SalesSummary", err)
	}
	series, err := s.reports.RevenueByDay(ctx, monthStart)
	if err != nil {
		return nil, s.reportError(ctx, "SalesSummary", err)
	}
	top, err := s.reports.TopProducts(ctx, monthStart, topProductsCount)
	if err != nil {
		return nil, s.reportError(ctx, "SalesSummary", err)
	}

	return &ports.SalesSummary{
		DailyTotal:   daily,
		WeeklyTotal:  weekly,
		MonthlyTotal: monthly,
		Daily:        series,
		TopProducts:  top,
	}, nil
}

// InventorySummary returns per-category valuation and the overall total.
func (s *ReportService) InventorySummary(ctx context.Context) (*ports.InventorySummary, error) {
	categories, err := s.reports.CategorySummaries(ctx)
	if err != nil {
		return nil, s.reportError(ctx, "InventorySummary", err)
	}

	var total float64
	for _, c := range categories {
		total += c.StockValue
	}
	return &ports.InventorySummary{
		Categories: categories,
		TotalValue: total,
	}, nil
}

// SalesReportRows returns flattened sale rows for export rendering.
func (s *ReportService) SalesReportRows(ctx context.Context, limit int) ([]ports.SalesReportRow, error) {
	rows, err := s.reports.SalesReportRows(ctx, limit)
	if err != nil {
		return nil, s.reportError(ctx, "SalesReportRows", err)
	}
	return rows, nil
}

// OrderExport resolves the supplier and product names needed to render a
// printable purchase order.
func (s *ReportService) OrderExport(ctx context.Context, id int64) (*ports.OrderExport, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, s.reportError(ctx, "OrderExport", err)
	}

	supplier, err := s.suppliers.Get(ctx, order.SupplierID)
	if err != nil {
		return nil, s.reportError(ctx, "OrderExport", fmt.Errorf("resolving supplier: %w", err))
	}

	names := make(map[int64]string, len(order.Items))
	for _, item := range order.Items {
		if _, ok := names[item.ProductID]; ok {
			continue
		}
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, s.reportError(ctx, "OrderExport", fmt.Errorf("resolving product %d: %w", item.ProductID, err))
		}
		names[item.ProductID] = product.Name
	}

	return &ports.OrderExport{
		Order:        *order,
		SupplierName: supplier.Name,
		ProductNames: names,
	}, nil
}

func (s *ReportService) reportError(ctx context.Context, operation string, err error) error {
	s.logger.ErrorContext(ctx, "report query failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	return err
}

// startOfToday returns midnight UTC of the current day.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
