package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
)

// ProductRepository implements ports.ProductRepository using GORM.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching the filter, ordered by name.
func (r *ProductRepository) List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error) {
	q := r.db.WithContext(ctx).Model(&productModel{})
	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", string(filter.Category))
	}
	if filter.LowStock {
		q = q.Where("stock_quantity <= min_stock_level")
	}

	var models []productModel
	if err := q.Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", translateError(err))
	}

	products := make([]catalog.Product, 0, len(models))
	for i := range models {
		products = append(products, *models[i].toDomain())
	}
	return products, nil
}

// Get returns a single product by ID.
func (r *ProductRepository) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("product %d: %w", id, translateError(err))
	}
	return m.toDomain(), nil
}

// Create inserts a new product and returns it with server-assigned fields.
func (r *ProductRepository) Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	m := productFromDomain(product)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("creating product: %w", translateError(err))
	}
	return m.toDomain(), nil
}

// Update rewrites an existing product's attributes. Stock is updated through
// AdjustStock or the sale/order flows, never here.
func (r *ProductRepository) Update(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	var existing productModel
	if err := r.db.WithContext(ctx).First(&existing, product.ID).Error; err != nil {
		return nil, fmt.Errorf("product %d: %w", product.ID, translateError(err))
	}

	updates := map[string]any{
		"name":            product.Name,
		"category":        string(product.Category),
		"description":     product.Description,
		"price":           product.Price,
		"min_stock_level": product.MinStockLevel,
		"supplier_id":     product.SupplierID,
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating product %d: %w", product.ID, translateError(err))
	}

	var updated productModel
	if err := r.db.WithContext(ctx).First(&updated, product.ID).Error; err != nil {
		return nil, fmt.Errorf("product %d: %w", product.ID, translateError(err))
	}
	return updated.toDomain(), nil
}

// Delete removes a product by ID.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&productModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting product %d: %w", id, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AdjustStock applies the delta with a guarded single-statement update so
// concurrent adjustments can never drive the quantity negative.
func (r *ProductRepository) AdjustStock(ctx context.Context, id int64, delta int) (*catalog.Product, error) {
	var updated productModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&productModel{}).
			Where("id = ? AND stock_quantity + ? >= 0", id, delta).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			// Distinguish a missing product from an underflow.
			var exists productModel
			if err := tx.First(&exists, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
				}
				return err
			}
			return fmt.Errorf("product %d: stock would fall below zero: %w", id, domain.ErrConflict)
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}
	return updated.toDomain(), nil
}
