package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Compile-time check that PurchasingService implements ports.PurchasingService.
var _ ports.PurchasingService = (*PurchasingService)(nil)

// PurchasingService implements ports.PurchasingService. Numbering, totals,
// and the delivery stock receipt are handled transactionally by the
// repository; this service validates drafts and guards status values.
type PurchasingService struct {
	orders ports.PurchaseOrderRepository
	logger *slog.Logger
}

// NewPurchasingService creates a PurchasingService.
func NewPurchasingService(orders ports.PurchaseOrderRepository, logger *slog.Logger) *PurchasingService {
	return &PurchasingService{
		orders: orders,
		logger: logger,
	}
}

// ListOrders returns purchase orders newest first.
func (s *PurchasingService) ListOrders(ctx context.Context) ([]purchasing.PurchaseOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list purchase orders",
			slog.String("operation", "ListOrders"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return orders, nil
}

// GetOrder returns a single purchase order with its items.
func (s *PurchasingService) GetOrder(ctx context.Context, id int64) (*purchasing.PurchaseOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch purchase order",
			slog.String("operation", "GetOrder"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return order, nil
}

// CreateOrder validates the draft and records it in pending status.
func (s *PurchasingService) CreateOrder(ctx context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, draft)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create purchase order",
			slog.String("operation", "CreateOrder"),
			slog.Int64("supplier_id", draft.SupplierID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "purchase order created",
		slog.Int64("order_id", created.ID),
		slog.String("number", created.Number),
		slog.Float64("total_amount", created.TotalAmount),
	)
	return created, nil
}

// UpdateStatus moves an order through its lifecycle.
func (s *PurchasingService) UpdateStatus(ctx context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error) {
	if !next.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", next),
		}}
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update purchase order status",
			slog.String("operation", "UpdateStatus"),
			slog.Int64("id", id),
			slog.String("status", string(next)),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "purchase order status updated",
		slog.Int64("order_id", updated.ID),
		slog.String("number", updated.Number),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}
