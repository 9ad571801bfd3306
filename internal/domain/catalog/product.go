// Package catalog contains the product inventory entities.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Product represents a stocked catalog item (a windshield, an aluminum
// frame, a side mirror). StockQuantity is the on-hand count; when it falls
// to or below MinStockLevel the product is considered low on stock.
type Product struct {
	ID            int64
	Name          string
	Category      Category
	Description   string
	Price         float64
	StockQuantity int
	MinStockLevel int
	SupplierID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock reports whether the on-hand quantity is at or below the
// configured minimum stock level.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// Validate checks business rules for the Product entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (p *Product) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = msgRequired
	}
	if !p.Category.IsValid() {
		fields["category"] = fmt.Sprintf("invalid: %q", p.Category)
	}
	if p.Price < 0 {
		fields["price"] = fmt.Sprintf("must not be negative, got %v", p.Price)
	}
	if p.StockQuantity < 0 {
		fields["stock_quantity"] = fmt.Sprintf("must not be negative, got %d", p.StockQuantity)
	}
	if p.MinStockLevel < 0 {
		fields["min_stock_level"] = fmt.Sprintf("must not be negative, got %d", p.MinStockLevel)
	}
	if p.SupplierID != nil && *p.SupplierID <= 0 {
		fields["supplier_id"] = fmt.Sprintf("must be positive, got %d", *p.SupplierID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Filter holds the optional criteria for listing products.
// A zero-value Filter matches all products.
type Filter struct {
	Search   string
	Category Category
	LowStock bool
}
