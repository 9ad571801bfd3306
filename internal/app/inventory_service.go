package app

import (
	"context"
	"log/slog"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Compile-time check that InventoryService implements ports.InventoryService.
var _ ports.InventoryService = (*InventoryService)(nil)

// InventoryService implements ports.InventoryService.
type InventoryService struct {
	products ports.ProductRepository
	logger   *slog.Logger
}

// NewInventoryService creates an InventoryService.
func NewInventoryService(products ports.ProductRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		products: products,
		logger:   logger,
	}
}

// ListProducts returns products matching the filter.
func (s *InventoryService) ListProducts(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error) {
	products, err := s.products.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list products",
			slog.String("operation", "ListProducts"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by ID.
func (s *InventoryService) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch product",
			slog.String("operation", "GetProduct"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return product, nil
}

// CreateProduct validates and creates a new product.
func (s *InventoryService) CreateProduct(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	s.logger.InfoContext(ctx, "creating product", slog.String("name", product.Name))

	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create product",
			slog.String("operation", "CreateProduct"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateProduct validates and updates an existing product.
func (s *InventoryService) UpdateProduct(ctx context.Context, id int64, product *catalog.Product) (*catalog.Product, error) {
	s.logger.InfoContext(ctx, "updating product", slog.Int64("id", id))

	if err := product.Validate(); err != nil {
		return nil, err
	}

	product.ID = id
	updated, err := s.products.Update(ctx, product)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update product",
			slog.String("operation", "UpdateProduct"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteProduct deletes a product by ID.
func (s *InventoryService) DeleteProduct(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting product", slog.Int64("id", id))

	if err := s.products.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete product",
			slog.String("operation", "DeleteProduct"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// AdjustStock applies a manual stock correction and logs the stated reason
// for the audit trail.
func (s *InventoryService) AdjustStock(ctx context.Context, id int64, delta int, reason string) (*catalog.Product, error) {
	if delta == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"delta": "must not be zero",
		}}
	}

	adjusted, err := s.products.AdjustStock(ctx, id, delta)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to adjust stock",
			slog.String("operation", "AdjustStock"),
			slog.Int64("id", id),
			slog.Int("delta", delta),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock adjusted",
		slog.Int64("product_id", id),
		slog.Int("delta", delta),
		slog.Int("stock_quantity", adjusted.StockQuantity),
		slog.String("reason", reason),
	)
	return adjusted, nil
}
