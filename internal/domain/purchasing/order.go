// Package purchasing contains the purchase order entities.
package purchasing

import (
	"fmt"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
)

// PurchaseOrder represents an order placed with a supplier to restock
// products. Number is assigned sequentially ("PO-0001") inside the creation
// transaction. Marking an order delivered receives its items into stock.
type PurchaseOrder struct {
	ID               int64
	Number           string
	SupplierID       int64
	UserID           int64
	TotalAmount      float64
	Status           Status
	ExpectedDelivery *time.Time
	Notes            string
	CreatedAt        time.Time
	Items            []Item
}

// Item is one product line within a purchase order. Unlike sale items, the
// unit price is supplied by the caller since it is negotiated per order.
type Item struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Total returns the sum of all item totals.
func (o *PurchaseOrder) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	return total
}

// Validate checks business rules for a purchase order prior to numbering.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (o *PurchaseOrder) Validate() error {
	fields := make(map[string]string)

	if o.SupplierID <= 0 {
		fields["supplier_id"] = fmt.Sprintf("must be positive, got %d", o.SupplierID)
	}
	if o.UserID <= 0 {
		fields["user_id"] = fmt.Sprintf("must be positive, got %d", o.UserID)
	}
	if len(o.Items) == 0 {
		fields["items"] = "must contain at least one item"
	}
	for i, item := range o.Items {
		if item.ProductID <= 0 {
			fields[fmt.Sprintf("items[%d].product_id", i)] = fmt.Sprintf("must be positive, got %d", item.ProductID)
		}
		if item.Quantity <= 0 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = fmt.Sprintf("must be positive, got %d", item.Quantity)
		}
		if item.UnitPrice < 0 {
			fields[fmt.Sprintf("items[%d].unit_price", i)] = fmt.Sprintf("must not be negative, got %v", item.UnitPrice)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
