package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
)

// PurchaseOrderRepository implements ports.PurchaseOrderRepository using GORM.
type PurchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a purchase order repository.
func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

// List returns purchase orders with items preloaded, newest first.
func (r *PurchaseOrderRepository) List(ctx context.Context) ([]purchasing.PurchaseOrder, error) {
	var models []purchaseOrderModel
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC, id DESC").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing purchase orders: %w", translateError(err))
	}

	orders := make([]purchasing.PurchaseOrder, 0, len(models))
	for i := range models {
		orders = append(orders, *models[i].toDomain())
	}
	return orders, nil
}

// Get returns a single purchase order with its items.
func (r *PurchaseOrderRepository) Get(ctx context.Context, id int64) (*purchasing.PurchaseOrder, error) {
	var m purchaseOrderModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("purchase order %d: %w", id, translateError(err))
	}
	return m.toDomain(), nil
}

// Create inserts the order in pending status, assigning the next sequential
// order number inside the transaction so numbers never collide or skip.
func (r *PurchaseOrderRepository) Create(ctx context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
	var created purchaseOrderModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var supplier supplierModel
		if err := tx.First(&supplier, draft.SupplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("supplier %d: %w", draft.SupplierID, domain.ErrNotFound)
			}
			return err
		}

		for _, item := range draft.Items {
			var product productModel
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", item.ProductID, domain.ErrNotFound)
				}
				return err
			}
		}

		var count int64
		if err := tx.Model(&purchaseOrderModel{}).Count(&count).Error; err != nil {
			return translateError(err)
		}

		m := purchaseOrderModel{
			Number:           fmt.Sprintf("PO-%04d", count+1),
			SupplierID:       draft.SupplierID,
			UserID:           draft.UserID,
			Status:           string(purchasing.StatusPending),
			ExpectedDelivery: draft.ExpectedDelivery,
			Notes:            draft.Notes,
		}

		var total float64
		items := make([]purchaseOrderItemModel, 0, len(draft.Items))
		for _, item := range draft.Items {
			lineTotal := item.UnitPrice * float64(item.Quantity)
			total += lineTotal
			items = append(items, purchaseOrderItemModel{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: lineTotal,
			})
		}
		m.TotalAmount = total

		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("creating purchase order: %w", translateError(err))
		}
		for i := range items {
			items[i].OrderID = m.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("creating purchase order items: %w", translateError(err))
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

// UpdateStatus transitions the order atomically. When the order is marked
// delivered, every item's quantity is received into product stock in the
// same transaction.
func (r *PurchaseOrderRepository) UpdateStatus(ctx context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error) {
	var updated purchaseOrderModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m purchaseOrderModel
		if err := tx.Preload("Items").First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("purchase order %d: %w", id, domain.ErrNotFound)
			}
			return err
		}

		current := purchasing.Status(m.Status)
		if !current.CanTransition(next) {
			return fmt.Errorf("purchase order %d: cannot move from %s to %s: %w",
				id, current, next, domain.ErrConflict)
		}

		if next == purchasing.StatusDelivered {
			for _, item := range m.Items {
				res := tx.Model(&productModel{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity))
				if res.Error != nil {
					return translateError(res.Error)
				}
			}
		}

		if err := tx.Model(&m).UpdateColumn("status", string(next)).Error; err != nil {
			return translateError(err)
		}

		m.Status = string(next)
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated.toDomain(), nil
}
