package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Compile-time check that SalesService implements ports.SalesService.
var _ ports.SalesService = (*SalesService)(nil)

// SalesService implements ports.SalesService. Pricing and stock movement
// happen inside the repository's transaction; this service validates the
// draft, assigns the reference, and dispatches low-stock alerts after a
// successful sale.
type SalesService struct {
	sales    ports.SaleRepository
	products ports.ProductRepository
	notifier ports.StockAlertNotifier // nil when alerts are disabled
	logger   *slog.Logger
}

// NewSalesService creates a SalesService. Pass a nil notifier to disable
// low-stock alerts.
func NewSalesService(
	saleRepo ports.SaleRepository,
	products ports.ProductRepository,
	notifier ports.StockAlertNotifier,
	logger *slog.Logger,
) *SalesService {
	return &SalesService{
		sales:    saleRepo,
		products: products,
		notifier: notifier,
		logger:   logger,
	}
}

// ListSales returns sales newest first, up to limit (0 means no limit).
func (s *SalesService) ListSales(ctx context.Context, limit int) ([]sales.Sale, error) {
	listed, err := s.sales.List(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list sales",
			slog.String("operation", "ListSales"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return listed, nil
}

// GetSale returns a single sale with its items.
func (s *SalesService) GetSale(ctx context.Context, id int64) (*sales.Sale, error) {
	sale, err := s.sales.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch sale",
			slog.String("operation", "GetSale"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sale, nil
}

// CreateSale validates the draft, assigns a reference, and records the sale.
func (s *SalesService) CreateSale(ctx context.Context, draft *sales.Sale) (*sales.Sale, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	draft.Reference = newSaleReference()

	created, err := s.sales.Create(ctx, draft)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create sale",
			slog.String("operation", "CreateSale"),
			slog.String("reference", draft.Reference),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "sale recorded",
		slog.Int64("sale_id", created.ID),
		slog.String("reference", created.Reference),
		slog.Float64("total_amount", created.TotalAmount),
	)

	s.alertLowStock(ctx, created)

	return created, nil
}

// alertLowStock sends a best-effort notification for any product this sale
// left at or below its minimum stock level. Failures are logged, never
// returned: the sale is already committed.
func (s *SalesService) alertLowStock(ctx context.Context, sale *sales.Sale) {
	if s.notifier == nil {
		return
	}

	soldIDs := make(map[int64]bool, len(sale.Items))
	for _, item := range sale.Items {
		soldIDs[item.ProductID] = true
	}

	lowStock, err := s.products.List(ctx, catalog.Filter{LowStock: true})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to check low-stock products after sale",
			slog.Int64("sale_id", sale.ID),
			slog.Any("error", err),
		)
		return
	}

	var affected []catalog.Product
	for _, p := range lowStock {
		if soldIDs[p.ID] {
			affected = append(affected, p)
		}
	}
	if len(affected) == 0 {
		return
	}

	if err := s.notifier.NotifyLowStock(ctx, affected); err != nil {
		s.logger.WarnContext(ctx, "failed to deliver low-stock alert",
			slog.Int64("sale_id", sale.ID),
			slog.Int("product_count", len(affected)),
			slog.Any("error", err),
		)
		return
	}

	s.logger.InfoContext(ctx, "low-stock alert sent",
		slog.Int64("sale_id", sale.ID),
		slog.Int("product_count", len(affected)),
	)
}

// newSaleReference generates a short uppercase receipt reference like
// "S-3F2A9C41".
func newSaleReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("S-%s", strings.ToUpper(hex[:8]))
}
