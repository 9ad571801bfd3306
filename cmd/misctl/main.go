// Package main is the admin CLI for the shop management service. It covers
// the operational tasks that do not belong on the HTTP surface: schema
// migration, sample data seeding, and bootstrapping user accounts.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/adapters/storage"
	"github.com/ocastro/autoglass-mis/internal/app"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/platform/config"
	"github.com/ocastro/autoglass-mis/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profile string

	root := &cobra.Command{
		Use:           "misctl",
		Short:         "Admin tasks for the autoglass shop management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&profile, "profile", envOr("APP_PROFILE", "local"),
		"configuration profile (local, dev, qa, prod)")

	root.AddCommand(
		newMigrateCmd(&profile),
		newSeedCmd(&profile),
		newCreateUserCmd(&profile),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openDatabase loads the profile's configuration and connects to its database.
func openDatabase(profile string) (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func newMigrateCmd(profile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := openDatabase(*profile)
			if err != nil {
				return err
			}
			if err := storage.Migrate(db); err != nil {
				return err
			}
			cmd.Println("schema up to date")
			return nil
		},
	}
}

func newCreateUserCmd(profile *string) *cobra.Command {
	var username, email, password, role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !identity.Role(role).IsValid() {
				return fmt.Errorf("unknown role %q (want admin, staff, or cashier)", role)
			}

			db, cfg, err := openDatabase(*profile)
			if err != nil {
				return err
			}

			users := app.NewUserService(storage.NewUserRepository(db), cfg.Auth.BcryptCost, quietLogger())
			created, err := users.CreateUser(cmd.Context(), &identity.User{
				Username: username,
				Email:    email,
				Role:     identity.Role(role),
				Active:   true,
			}, password)
			if err != nil {
				return err
			}

			cmd.Printf("created user %s (id %d, role %s)\n", created.Username, created.ID, created.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(identity.RoleStaff), "account role (admin, staff, cashier)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSeedCmd(profile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and load sample data for a fresh installation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, cfg, err := openDatabase(*profile)
			if err != nil {
				return err
			}
			if err := storage.Migrate(db); err != nil {
				return err
			}
			return seed(cmd, db, cfg)
		},
	}
}

type seedUser struct {
	username string
	email    string
	password string
	role     identity.Role
}

// seed loads the default accounts and a small starter catalog. Existing
// records are left untouched so the command is safe to re-run.
func seed(cmd *cobra.Command, db *gorm.DB, cfg *config.Config) error {
	ctx := cmd.Context()
	logger := quietLogger()

	userRepo := storage.NewUserRepository(db)
	users := app.NewUserService(userRepo, cfg.Auth.BcryptCost, logger)

	seedUsers := []seedUser{
		{username: "admin", email: "admin@autoglass.com", password: "admin123", role: identity.RoleAdmin},
		{username: "staff", email: "staff@autoglass.com", password: "staff123", role: identity.RoleStaff},
		{username: "cashier", email: "cashier@autoglass.com", password: "cashier123", role: identity.RoleCashier},
	}
	for _, su := range seedUsers {
		_, err := users.CreateUser(ctx, &identity.User{
			Username: su.username,
			Email:    su.email,
			Role:     su.role,
			Active:   true,
		}, su.password)
		switch {
		case errors.Is(err, domain.ErrConflict):
			cmd.Printf("user %s already exists, skipping\n", su.username)
		case err != nil:
			return fmt.Errorf("seeding user %s: %w", su.username, err)
		default:
			cmd.Printf("created user %s / %s\n", su.username, su.password)
		}
	}

	supplierRepo := storage.NewSupplierRepository(db)
	existing, err := supplierRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing suppliers: %w", err)
	}
	if len(existing) > 0 {
		cmd.Println("catalog already seeded, skipping")
		return nil
	}

	suppliers := []party.Supplier{
		{Name: "Glass Pro Philippines", ContactPerson: "Maria Santos", Phone: "02-8123-4567", Email: "maria@glasspro.ph"},
		{Name: "Metro Aluminum Supply", ContactPerson: "Juan Dela Cruz", Phone: "02-8987-6543", Email: "juan@metroaluminum.com"},
		{Name: "Auto Parts Central", ContactPerson: "Lisa Rodriguez", Phone: "02-8555-1234", Email: "lisa@autoparts.ph"},
	}
	supplierIDs := make([]int64, 0, len(suppliers))
	for i := range suppliers {
		created, err := supplierRepo.Create(ctx, &suppliers[i])
		if err != nil {
			return fmt.Errorf("seeding supplier %s: %w", suppliers[i].Name, err)
		}
		supplierIDs = append(supplierIDs, created.ID)
	}

	customerRepo := storage.NewCustomerRepository(db)
	customers := []party.Customer{
		{Name: "John Doe", Phone: "09123456789", Email: "john@email.com"},
		{Name: "Jane Smith", Phone: "09987654321", Email: "jane@email.com"},
		{Name: "Mike Johnson", Phone: "09555123456", Email: "mike@email.com"},
	}
	for i := range customers {
		if _, err := customerRepo.Create(ctx, &customers[i]); err != nil {
			return fmt.Errorf("seeding customer %s: %w", customers[i].Name, err)
		}
	}

	productRepo := storage.NewProductRepository(db)
	products := []catalog.Product{
		{Name: "Windshield Glass - Toyota Camry", Category: catalog.CategoryGlass, Price: 8500, StockQuantity: 15, MinStockLevel: 5, SupplierID: &supplierIDs[0]},
		{Name: "Side Mirror - Honda Civic", Category: catalog.CategoryAccessories, Price: 2500, StockQuantity: 8, MinStockLevel: 5, SupplierID: &supplierIDs[2]},
		{Name: "Aluminum Frame - Standard", Category: catalog.CategoryAluminum, Price: 1200, StockQuantity: 25, MinStockLevel: 5, SupplierID: &supplierIDs[1]},
		{Name: "Rear Window - Ford Focus", Category: catalog.CategoryGlass, Price: 6500, StockQuantity: 3, MinStockLevel: 8, SupplierID: &supplierIDs[0]},
		{Name: "Door Glass - Mitsubishi Montero", Category: catalog.CategoryGlass, Price: 7000, StockQuantity: 12, MinStockLevel: 5, SupplierID: &supplierIDs[0]},
	}
	for i := range products {
		if _, err := productRepo.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("seeding product %s: %w", products[i].Name, err)
		}
	}

	cmd.Println("sample data loaded")
	return nil
}

// quietLogger keeps service-layer logging out of CLI output; failures are
// reported through returned errors instead.
func quietLogger() *slog.Logger {
	return logging.New("error", "text", os.Stderr)
}
