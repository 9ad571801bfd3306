package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

// SaleRepository implements ports.SaleRepository using GORM.
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a sale repository.
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// List returns sales with items preloaded, newest first.
func (r *SaleRepository) List(ctx context.Context, limit int) ([]sales.Sale, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []saleModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing sales: %w", translateError(err))
	}

	result := make([]sales.Sale, 0, len(models))
	for i := range models {
		result = append(result, *models[i].toDomain())
	}
	return result, nil
}

// Get returns a single sale with its items.
func (r *SaleRepository) Get(ctx context.Context, id int64) (*sales.Sale, error) {
	var m saleModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("sale %d: %w", id, translateError(err))
	}
	return m.toDomain(), nil
}

// Create records the sale atomically: each item's unit price is resolved
// from the catalog, stock is decremented with an underflow guard, and the
// sale plus its items are inserted. Any failure rolls back the whole sale.
func (r *SaleRepository) Create(ctx context.Context, draft *sales.Sale) (*sales.Sale, error) {
	var created saleModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if draft.CustomerID != nil {
			var customer customerModel
			if err := tx.First(&customer, *draft.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("customer %d: %w", *draft.CustomerID, domain.ErrNotFound)
				}
				return err
			}
		}

		m := saleModel{
			Reference:     draft.Reference,
			CustomerID:    draft.CustomerID,
			UserID:        draft.UserID,
			PaymentMethod: string(draft.PaymentMethod),
		}

		var total float64
		items := make([]saleItemModel, 0, len(draft.Items))
		for _, item := range draft.Items {
			var product productModel
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", item.ProductID, domain.ErrNotFound)
				}
				return err
			}

			res := tx.Model(&productModel{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return translateError(res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %d: insufficient stock for quantity %d: %w",
					item.ProductID, item.Quantity, domain.ErrConflict)
			}

			lineTotal := product.Price * float64(item.Quantity)
			total += lineTotal
			items = append(items, saleItemModel{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: lineTotal,
			})
		}
		m.TotalAmount = total

		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("creating sale: %w", translateError(err))
		}
		for i := range items {
			items[i].SaleID = m.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("creating sale items: %w", translateError(err))
		}

		m.Items = items
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created.toDomain(), nil
}
