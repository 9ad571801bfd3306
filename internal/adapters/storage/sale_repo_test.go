package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ocastro/autoglass-mis/internal/adapters/storage"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

func TestSaleRepository_Create_PricesAndDecrementsStock(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	windshield := seedProduct(t, db, "Windshield", catalog.CategoryGlass, 8500, 10, 5)
	mirror := seedProduct(t, db, "Side Mirror", catalog.CategoryAccessories, 1200, 8, 3)
	user := seedUser(t, db, "cashier1", identity.RoleCashier)

	repo := storage.NewSaleRepository(db)
	created, err := repo.Create(context.Background(), &sales.Sale{
		Reference:     "S-0001",
		UserID:        user.ID,
		PaymentMethod: sales.PaymentCash,
		Items: []sales.SaleItem{
			{ProductID: windshield.ID, Quantity: 2},
			{ProductID: mirror.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.ID == 0 {
		t.Error("Create() did not assign an ID")
	}
	if want := 2*8500.0 + 1200.0; created.TotalAmount != want {
		t.Errorf("TotalAmount = %v, want %v", created.TotalAmount, want)
	}
	if len(created.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(created.Items))
	}
	if created.Items[0].UnitPrice != 8500 {
		t.Errorf("Items[0].UnitPrice = %v, want 8500 (resolved from catalog)", created.Items[0].UnitPrice)
	}
	if created.Items[0].TotalPrice != 17000 {
		t.Errorf("Items[0].TotalPrice = %v, want 17000", created.Items[0].TotalPrice)
	}

	productRepo := storage.NewProductRepository(db)
	got, err := productRepo.Get(context.Background(), windshield.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.StockQuantity != 8 {
		t.Errorf("windshield stock = %d, want 8", got.StockQuantity)
	}
	got, err = productRepo.Get(context.Background(), mirror.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.StockQuantity != 7 {
		t.Errorf("mirror stock = %d, want 7", got.StockQuantity)
	}
}

func TestSaleRepository_Create_InsufficientStockRollsBack(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	windshield := seedProduct(t, db, "Windshield", catalog.CategoryGlass, 8500, 10, 5)
	mirror := seedProduct(t, db, "Side Mirror", catalog.CategoryAccessories, 1200, 1, 3)
	user := seedUser(t, db, "cashier1", identity.RoleCashier)

	repo := storage.NewSaleRepository(db)
	_, err := repo.Create(context.Background(), &sales.Sale{
		Reference:     "S-0001",
		UserID:        user.ID,
		PaymentMethod: sales.PaymentCash,
		Items: []sales.SaleItem{
			{ProductID: windshield.ID, Quantity: 2},
			{ProductID: mirror.ID, Quantity: 5},
		},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Create() = %v, want ErrConflict", err)
	}

	// The first item's decrement must be rolled back with the sale.
	got, err := storage.NewProductRepository(db).Get(context.Background(), windshield.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.StockQuantity != 10 {
		t.Errorf("windshield stock = %d, want 10 (rolled back)", got.StockQuantity)
	}

	listed, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("List() returned %d sales, want 0", len(listed))
	}
}

func TestSaleRepository_Create_UnknownProduct(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	user := seedUser(t, db, "cashier1", identity.RoleCashier)

	_, err := storage.NewSaleRepository(db).Create(context.Background(), &sales.Sale{
		Reference:     "S-0001",
		UserID:        user.ID,
		PaymentMethod: sales.PaymentCash,
		Items:         []sales.SaleItem{{ProductID: 999, Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() = %v, want ErrNotFound", err)
	}
}

func TestSaleRepository_Create_UnknownCustomer(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	windshield := seedProduct(t, db, "Windshield", catalog.CategoryGlass, 8500, 10, 5)
	user := seedUser(t, db, "cashier1", identity.RoleCashier)
	missing := int64(999)

	_, err := storage.NewSaleRepository(db).Create(context.Background(), &sales.Sale{
		Reference:     "S-0001",
		CustomerID:    &missing,
		UserID:        user.ID,
		PaymentMethod: sales.PaymentCredit,
		Items:         []sales.SaleItem{{ProductID: windshield.ID, Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() = %v, want ErrNotFound", err)
	}
}

func TestSaleRepository_ListAndGet(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	windshield := seedProduct(t, db, "Windshield", catalog.CategoryGlass, 8500, 100, 5)
	customer := seedCustomer(t, db, "Garage Lopez")
	user := seedUser(t, db, "cashier1", identity.RoleCashier)

	repo := storage.NewSaleRepository(db)
	for _, ref := range []string{"S-0001", "S-0002", "S-0003"} {
		_, err := repo.Create(context.Background(), &sales.Sale{
			Reference:     ref,
			CustomerID:    &customer.ID,
			UserID:        user.ID,
			PaymentMethod: sales.PaymentCash,
			Items:         []sales.SaleItem{{ProductID: windshield.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("Create(%s) error: %v", ref, err)
		}
	}

	listed, err := repo.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("List(limit=2) returned %d sales, want 2", len(listed))
	}
	if listed[0].Reference != "S-0003" {
		t.Errorf("List()[0].Reference = %q, want %q (newest first)", listed[0].Reference, "S-0003")
	}

	got, err := repo.Get(context.Background(), listed[0].ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got.Items) != 1 {
		t.Errorf("len(Items) = %d, want 1", len(got.Items))
	}
	if got.CustomerID == nil || *got.CustomerID != customer.ID {
		t.Errorf("CustomerID = %v, want %d", got.CustomerID, customer.ID)
	}
}

func TestSaleRepository_Get_NotFound(t *testing.T) {
	t.Parallel()

	_, err := storage.NewSaleRepository(testDB(t)).Get(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(999) = %v, want ErrNotFound", err)
	}
}
