package app

import (
	"context"
	"log/slog"

	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Compile-time checks for the directory services.
var (
	_ ports.CustomerService = (*CustomerService)(nil)
	_ ports.SupplierService = (*SupplierService)(nil)
)

// CustomerService implements ports.CustomerService.
type CustomerService struct {
	customers ports.CustomerRepository
	logger    *slog.Logger
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(customers ports.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		logger:    logger,
	}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]party.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list customers",
			slog.String("operation", "ListCustomers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*party.Customer, error) {
	customer, err := s.customers.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch customer",
			slog.String("operation", "GetCustomer"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *party.Customer) (*party.Customer, error) {
	s.logger.InfoContext(ctx, "creating customer", slog.String("name", customer.Name))

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create customer",
			slog.String("operation", "CreateCustomer"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, customer *party.Customer) (*party.Customer, error) {
	s.logger.InfoContext(ctx, "updating customer", slog.Int64("id", id))

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	customer.ID = id
	updated, err := s.customers.Update(ctx, customer)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update customer",
			slog.String("operation", "UpdateCustomer"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting customer", slog.Int64("id", id))

	if err := s.customers.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete customer",
			slog.String("operation", "DeleteCustomer"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// SupplierService implements ports.SupplierService.
type SupplierService struct {
	suppliers ports.SupplierRepository
	logger    *slog.Logger
}

// NewSupplierService creates a SupplierService.
func NewSupplierService(suppliers ports.SupplierRepository, logger *slog.Logger) *SupplierService {
	return &SupplierService{
		suppliers: suppliers,
		logger:    logger,
	}
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]party.Supplier, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list suppliers",
			slog.String("operation", "ListSuppliers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id int64) (*party.Supplier, error) {
	supplier, err := s.suppliers.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch supplier",
			slog.String("operation", "GetSupplier"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) CreateSupplier(ctx context.Context, supplier *party.Supplier) (*party.Supplier, error) {
	s.logger.InfoContext(ctx, "creating supplier", slog.String("name", supplier.Name))

	if err := supplier.Validate(); err != nil {
		return nil, err
	}

	created, err := s.suppliers.Create(ctx, supplier)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create supplier",
			slog.String("operation", "CreateSupplier"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id int64, supplier *party.Supplier) (*party.Supplier, error) {
	s.logger.InfoContext(ctx, "updating supplier", slog.Int64("id", id))

	if err := supplier.Validate(); err != nil {
		return nil, err
	}

	supplier.ID = id
	updated, err := s.suppliers.Update(ctx, supplier)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update supplier",
			slog.String("operation", "UpdateSupplier"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting supplier", slog.Int64("id", id))

	if err := s.suppliers.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete supplier",
			slog.String("operation", "DeleteSupplier"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
