package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"

	// dateLayout is the wire format for date-only fields.
	dateLayout = "2006-01-02"
)

// LoginRequest represents the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateProductRequest represents the JSON body for creating a product.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity,omitempty"`
	MinStockLevel int     `json:"min_stock_level,omitempty"`
	SupplierID    *int64  `json:"supplier_id,omitempty"`
}

// Validate checks that required fields are present and enums are valid.
func (r *CreateProductRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if !catalog.Category(r.Category).IsValid() {
		fields["category"] = fmt.Sprintf("invalid: %q", r.Category)
	}
	if r.Price < 0 {
		fields["price"] = fmt.Sprintf("must not be negative, got %v", r.Price)
	}
	if r.StockQuantity < 0 {
		fields["stock_quantity"] = fmt.Sprintf("must not be negative, got %d", r.StockQuantity)
	}
	if r.MinStockLevel < 0 {
		fields["min_stock_level"] = fmt.Sprintf("must not be negative, got %d", r.MinStockLevel)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateProductRequest represents the JSON body for updating a product.
// All fields are optional; nil means "do not change this field". Stock
// quantity is deliberately absent: stock moves only through sales, purchase
// order deliveries, and explicit adjustments.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	MinStockLevel *int     `json:"min_stock_level,omitempty"`
	SupplierID    *int64   `json:"supplier_id,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateProductRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Category != nil && !catalog.Category(*r.Category).IsValid() {
		fields["category"] = fmt.Sprintf("invalid: %q", *r.Category)
	}
	if r.Price != nil && *r.Price < 0 {
		fields["price"] = fmt.Sprintf("must not be negative, got %v", *r.Price)
	}
	if r.MinStockLevel != nil && *r.MinStockLevel < 0 {
		fields["min_stock_level"] = fmt.Sprintf("must not be negative, got %d", *r.MinStockLevel)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AdjustStockRequest represents the JSON body for a manual stock correction.
type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// Validate checks that the adjustment is meaningful and has a reason.
func (r *AdjustStockRequest) Validate() error {
	fields := make(map[string]string)

	if r.Delta == 0 {
		fields["delta"] = "must not be zero"
	}
	if strings.TrimSpace(r.Reason) == "" {
		fields["reason"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateCustomerRequest represents the JSON body for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgRequired}}
	}
	return nil
}

// UpdateCustomerRequest represents the JSON body for updating a customer.
// All fields are optional; nil means "do not change this field".
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateCustomerRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgMustNotEmpty}}
	}
	return nil
}

// CreateSupplierRequest represents the JSON body for creating a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateSupplierRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgRequired}}
	}
	return nil
}

// UpdateSupplierRequest represents the JSON body for updating a supplier.
// All fields are optional; nil means "do not change this field".
type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateSupplierRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgMustNotEmpty}}
	}
	return nil
}

// SaleItemRequest is one product line in a sale request. No unit price:
// prices are resolved from the catalog server side.
type SaleItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateSaleRequest represents the JSON body for recording a sale.
// CustomerID is omitted for walk-in customers.
type CreateSaleRequest struct {
	CustomerID    *int64            `json:"customer_id,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemRequest `json:"items"`
}

// Validate checks structural rules; stock and product existence are
// verified transactionally by the application layer.
func (r *CreateSaleRequest) Validate() error {
	fields := make(map[string]string)

	if !sales.PaymentMethod(r.PaymentMethod).IsValid() {
		fields["payment_method"] = fmt.Sprintf("invalid: %q", r.PaymentMethod)
	}
	if r.CustomerID != nil && *r.CustomerID <= 0 {
		fields["customer_id"] = fmt.Sprintf("must be positive, got %d", *r.CustomerID)
	}
	if len(r.Items) == 0 {
		fields["items"] = "must contain at least one item"
	}
	for i, item := range r.Items {
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

// OrderItemRequest is one product line in a purchase order request. The
// unit price is caller-supplied since it is negotiated per order.
type OrderItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest represents the JSON body for creating a purchase order.
// ExpectedDelivery uses the "2006-01-02" date format.
type CreateOrderRequest struct {
	SupplierID       int64              `json:"supplier_id"`
	ExpectedDelivery string             `json:"expected_delivery,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Items            []OrderItemRequest `json:"items"`
}

// Validate checks structural rules for a purchase order request.
func (r *CreateOrderRequest) Validate() error {
	fields := make(map[string]string)

	if r.SupplierID <= 0 {
		fields["supplier_id"] = fmt.Sprintf("must be positive, got %d", r.SupplierID)
	}
	if r.ExpectedDelivery != "" {
		if _, err := time.Parse(dateLayout, r.ExpectedDelivery); err != nil {
			fields["expected_delivery"] = fmt.Sprintf("must be a %s date", dateLayout)
		}
	}
	if len(r.Items) == 0 {
		fields["items"] = "must contain at least one item"
	}
	for i, item := range r.Items {
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

// UpdateOrderStatusRequest represents the JSON body for a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that the status is one of the known values. Whether the
// transition is legal from the order's current status is decided by the
// application layer.
func (r *UpdateOrderStatusRequest) Validate() error {
	if !purchasing.Status(r.Status).IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", r.Status),
		}}
	}
	return nil
}

// CreateUserRequest represents the JSON body for creating a user account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks that required fields are present and the role is known.
// Password strength is enforced by the user service.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = msgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}
	if !identity.Role(r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateUserRequest represents the JSON body for updating a user account.
// All fields are optional; nil means "do not change this field".
type UpdateUserRequest struct {
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateUserRequest) Validate() error {
	fields := make(map[string]string)

	if r.Role != nil && !identity.Role(*r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", *r.Role)
	}
	if r.Password != nil && *r.Password == "" {
		fields["password"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
