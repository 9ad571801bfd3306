package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// ReportRepository implements ports.ReportRepository using GORM aggregate
// queries. Date bucketing happens in Go on UTC days so the SQL stays
// portable between SQLite and PostgreSQL.
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a report repository.
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting products: %w", translateError(err))
	}
	return count, nil
}

func (r *ReportRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&productModel{}).
		Where("stock_quantity <= min_stock_level").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting low-stock products: %w", translateError(err))
	}
	return count, nil
}

func (r *ReportRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&customerModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting customers: %w", translateError(err))
	}
	return count, nil
}

func (r *ReportRepository) CountSalesSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&saleModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting sales: %w", translateError(err))
	}
	return count, nil
}

func (r *ReportRepository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&saleModel{}).
		Where("created_at >= ?", since).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("summing revenue: %w", translateError(err))
	}
	return total, nil
}

// RevenueByDay returns one entry per UTC day with sales, oldest first.
// Days without sales are omitted; the report layer fills gaps if needed.
func (r *ReportRepository) RevenueByDay(ctx context.Context, since time.Time) ([]ports.DailyRevenue, error) {
	var rows []struct {
		CreatedAt   time.Time
		TotalAmount float64
	}
	err := r.db.WithContext(ctx).Model(&saleModel{}).
		Where("created_at >= ?", since).
		Select("created_at, total_amount").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading revenue rows: %w", translateError(err))
	}

	byDay := make(map[time.Time]float64)
	for _, row := range rows {
		day := row.CreatedAt.UTC().Truncate(24 * time.Hour)
		byDay[day] += row.TotalAmount
	}

	daily := make([]ports.DailyRevenue, 0, len(byDay))
	for day, total := range byDay {
		daily = append(daily, ports.DailyRevenue{Date: day, Total: total})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return daily, nil
}

func (r *ReportRepository) TopProducts(ctx context.Context, since time.Time, limit int) ([]ports.ProductSales, error) {
	var rows []struct {
		ProductID    int64
		Name         string
		QuantitySold int64
		Revenue      float64
	}
	err := r.db.WithContext(ctx).
		Table("sale_items").
		Select("sale_items.product_id AS product_id, products.name AS name, "+
			"SUM(sale_items.quantity) AS quantity_sold, SUM(sale_items.total_price) AS revenue").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sales.created_at >= ?", since).
		Group("sale_items.product_id, products.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading top products: %w", translateError(err))
	}

	top := make([]ports.ProductSales, 0, len(rows))
	for _, row := range rows {
		top = append(top, ports.ProductSales{
			ProductID:    row.ProductID,
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		})
	}
	return top, nil
}

func (r *ReportRepository) CategorySummaries(ctx context.Context) ([]ports.CategorySummary, error) {
	var rows []struct {
		Category     string
		ProductCount int64
		StockValue   float64
	}
	err := r.db.WithContext(ctx).Model(&productModel{}).
		Select("category, COUNT(*) AS product_count, "+
			"COALESCE(SUM(price * stock_quantity), 0) AS stock_value").
		Group("category").
		Order("category").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading category summaries: %w", translateError(err))
	}

	summaries := make([]ports.CategorySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, ports.CategorySummary{
			Category:     catalog.Category(row.Category),
			ProductCount: row.ProductCount,
			StockValue:   row.StockValue,
		})
	}
	return summaries, nil
}

func (r *ReportRepository) SalesReportRows(ctx context.Context, limit int) ([]ports.SalesReportRow, error) {
	var rows []struct {
		SaleID        int64
		Reference     string
		CustomerName  string
		TotalAmount   float64
		PaymentMethod string
		CreatedAt     time.Time
	}
	q := r.db.WithContext(ctx).
		Table("sales").
		Select("sales.id AS sale_id, sales.reference, "+
			"COALESCE(customers.name, 'Walk-in') AS customer_name, "+
			"sales.total_amount, sales.payment_method, sales.created_at").
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id").
		Order("sales.created_at DESC, sales.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading sales report rows: %w", translateError(err))
	}

	report := make([]ports.SalesReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, ports.SalesReportRow{
			SaleID:        row.SaleID,
			Reference:     row.Reference,
			CustomerName:  row.CustomerName,
			Amount:        row.TotalAmount,
			PaymentMethod: row.PaymentMethod,
			CreatedAt:     row.CreatedAt,
		})
	}
	return report, nil
}
