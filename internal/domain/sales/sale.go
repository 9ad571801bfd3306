// Package sales contains the point-of-sale entities.
package sales

import (
	"fmt"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
)

// Sale represents a completed point-of-sale transaction. CustomerID is nil
// for walk-in customers. TotalAmount is always computed server side as the
// sum of item totals; unit prices are resolved from the catalog at sale
// time, never taken from the caller.
type Sale struct {
	ID            int64
	Reference     string
	CustomerID    *int64
	UserID        int64
	TotalAmount   float64
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	Items         []SaleItem
}

// SaleItem is one product line within a sale.
type SaleItem struct {
	ID         int64
	SaleID     int64
	ProductID  int64
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Total returns the sum of all item totals.
func (s *Sale) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.TotalPrice
	}
	return total
}

// Validate checks business rules for a sale prior to pricing. Unit prices
// and totals are assigned later, so only structural rules are checked here.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (s *Sale) Validate() error {
	fields := make(map[string]string)

	if !s.PaymentMethod.IsValid() {
		fields["payment_method"] = fmt.Sprintf("invalid: %q", s.PaymentMethod)
	}
	if s.UserID <= 0 {
		fields["user_id"] = fmt.Sprintf("must be positive, got %d", s.UserID)
	}
	if s.CustomerID != nil && *s.CustomerID <= 0 {
		fields["customer_id"] = fmt.Sprintf("must be positive, got %d", *s.CustomerID)
	}
	if len(s.Items) == 0 {
		fields["items"] = "must contain at least one item"
	}
	for i, item := range s.Items {
		if item.ProductID <= 0 {
			fields[fmt.Sprintf("items[%d].product_id", i)] = fmt.Sprintf("must be positive, got %d", item.ProductID)
		}
		if item.Quantity <= 0 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = fmt.Sprintf("must be positive, got %d", item.Quantity)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
