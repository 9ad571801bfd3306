package ports

import (
	"context"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
)

// StockAlertNotifier defines the outbound port for low-stock alerts.
// Implementations deliver best-effort: callers log failures but never fail
// the triggering operation.
type StockAlertNotifier interface {
	// NotifyLowStock reports products at or below their minimum stock level.
	NotifyLowStock(ctx context.Context, products []catalog.Product) error
}
