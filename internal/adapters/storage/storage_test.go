package storage_test

import (
	"context"
	"testing"

	"github.com/ocastro/autoglass-mis/internal/adapters/storage"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/platform/config"

	"gorm.io/gorm"
)

// testDB opens a fresh in-memory SQLite database, migrated and limited to a
// single connection so every query sees the same memory store.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := storage.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, category catalog.Category, price float64, stock, minLevel int) *catalog.Product {
	t.Helper()

	created, err := storage.NewProductRepository(db).Create(context.Background(), &catalog.Product{
		Name:          name,
		Category:      category,
		Price:         price,
		StockQuantity: stock,
		MinStockLevel: minLevel,
	})
	if err != nil {
		t.Fatalf("seeding product %q: %v", name, err)
	}
	return created
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *party.Customer {
	t.Helper()

	created, err := storage.NewCustomerRepository(db).Create(context.Background(), &party.Customer{Name: name})
	if err != nil {
		t.Fatalf("seeding customer %q: %v", name, err)
	}
	return created
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *party.Supplier {
	t.Helper()

	created, err := storage.NewSupplierRepository(db).Create(context.Background(), &party.Supplier{Name: name})
	if err != nil {
		t.Fatalf("seeding supplier %q: %v", name, err)
	}
	return created
}

func seedUser(t *testing.T, db *gorm.DB, username string, role identity.Role) *identity.User {
	t.Helper()

	created, err := storage.NewUserRepository(db).Create(context.Background(), &identity.User{
		Username:     username,
		Email:        username + "@autoglass.example",
		PasswordHash: "$2a$10$testhashtesthashtesthash",
		Role:         role,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("seeding user %q: %v", username, err)
	}
	return created
}
