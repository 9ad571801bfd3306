package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
)

// CustomerRepository implements ports.CustomerRepository using GORM.
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository.
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]party.Customer, error) {
	var models []customerModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing customers: %w", translateError(err))
	}
	customers := make([]party.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, *models[i].toDomain())
	}
	return customers, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*party.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("customer %d: %w", id, translateError(err))
	}
	return m.toDomain(), nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *party.Customer) (*party.Customer, error) {
	m := customerFromDomain(customer)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("creating customer: %w", translateError(err))
	}
	return m.toDomain(), nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *party.Customer) (*party.Customer, error) {
	var existing customerModel
	if err := r.db.WithContext(ctx).First(&existing, customer.ID).Error; err != nil {
		return nil, fmt.Errorf("customer %d: %w", customer.ID, translateError(err))
	}

	updates := map[string]any{
		"name":    customer.Name,
		"phone":   customer.Phone,
		"email":   customer.Email,
		"address": customer.Address,
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating customer %d: %w", customer.ID, translateError(err))
	}
	return existing.toDomain(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&customerModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting customer %d: %w", id, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SupplierRepository implements ports.SupplierRepository using GORM.
type SupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a supplier repository.
func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) List(ctx context.Context) ([]party.Supplier, error) {
	var models []supplierModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", translateError(err))
	}
	suppliers := make([]party.Supplier, 0, len(models))
	for i := range models {
		suppliers = append(suppliers, *models[i].toDomain())
	}
	return suppliers, nil
}

func (r *SupplierRepository) Get(ctx context.Context, id int64) (*party.Supplier, error) {
	var m supplierModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("supplier %d: %w", id, translateError(err))
	}
	return m.toDomain(), nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *party.Supplier) (*party.Supplier, error) {
	m := supplierFromDomain(supplier)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("creating supplier: %w", translateError(err))
	}
	return m.toDomain(), nil
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *party.Supplier) (*party.Supplier, error) {
	var existing supplierModel
	if err := r.db.WithContext(ctx).First(&existing, supplier.ID).Error; err != nil {
		return nil, fmt.Errorf("supplier %d: %w", supplier.ID, translateError(err))
	}

	updates := map[string]any{
		"name":           supplier.Name,
		"contact_person": supplier.ContactPerson,
		"phone":          supplier.Phone,
		"email":          supplier.Email,
		"address":        supplier.Address,
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating supplier %d: %w", supplier.ID, translateError(err))
	}
	return existing.toDomain(), nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&supplierModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting supplier %d: %w", id, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
