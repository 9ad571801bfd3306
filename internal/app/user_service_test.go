package app_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ocastro/autoglass-mis/internal/app"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	t.Parallel()

	var stored *identity.User
	repo := &stubUserRepo{
		createFn: func(_ context.Context, u *identity.User) (*identity.User, error) {
			stored = u
			return u, nil
		},
	}

	svc := app.NewUserService(repo, bcrypt.MinCost, testLogger())
	_, err := svc.CreateUser(context.Background(), &identity.User{
		Username: "staff1",
		Email:    "staff1@autoglass.example",
		Role:     identity.RoleStaff,
		Active:   true,
	}, "plaintext-password")
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}

	if stored.PasswordHash == "" || stored.PasswordHash == "plaintext-password" {
		t.Fatal("password was not hashed before reaching the repository")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("plaintext-password")); err != nil {
		t.Errorf("stored hash does not verify the original password: %v", err)
	}
}

func TestUserService_CreateUser_ShortPassword(t *testing.T) {
	t.Parallel()

	svc := app.NewUserService(&stubUserRepo{}, bcrypt.MinCost, testLogger())
	_, err := svc.CreateUser(context.Background(), &identity.User{
		Username: "staff1",
		Email:    "staff1@autoglass.example",
		Role:     identity.RoleStaff,
	}, "short")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("CreateUser() = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields["password"]; !ok {
		t.Errorf("ValidationError.Fields missing %q, got %v", "password", verr.Fields)
	}
}

func TestUserService_CreateUser_InvalidEntity(t *testing.T) {
	t.Parallel()

	svc := app.NewUserService(&stubUserRepo{}, bcrypt.MinCost, testLogger())
	_, err := svc.CreateUser(context.Background(), &identity.User{
		Username: "staff1",
		Email:    "staff1@autoglass.example",
		Role:     "superuser",
	}, "long-enough-password")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateUser() = %v, want ErrValidation", err)
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	existing := &identity.User{
		ID:           7,
		Username:     "cashier1",
		Email:        "cashier1@autoglass.example",
		PasswordHash: "old-hash",
		Role:         identity.RoleCashier,
		Active:       true,
	}

	var stored *identity.User
	repo := &stubUserRepo{
		getFn: func(context.Context, int64) (*identity.User, error) {
			u := *existing
			return &u, nil
		},
		updateFn: func(_ context.Context, u *identity.User) (*identity.User, error) {
			stored = u
			return u, nil
		},
	}

	staff := identity.RoleStaff
	inactive := false
	svc := app.NewUserService(repo, bcrypt.MinCost, testLogger())
	updated, err := svc.UpdateUser(context.Background(), 7, ports.UserUpdate{
		Role:   &staff,
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateUser() error: %v", err)
	}

	if updated.Role != identity.RoleStaff {
		t.Errorf("Role = %q, want staff", updated.Role)
	}
	if updated.Active {
		t.Error("Active = true, want false")
	}
	if stored.PasswordHash != "old-hash" {
		t.Error("PasswordHash changed without a password in the update")
	}
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		getFn: func(context.Context, int64) (*identity.User, error) {
			return &identity.User{ID: 7, Role: identity.RoleCashier}, nil
		},
	}

	bad := identity.Role("superuser")
	svc := app.NewUserService(repo, bcrypt.MinCost, testLogger())
	_, err := svc.UpdateUser(context.Background(), 7, ports.UserUpdate{Role: &bad})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateUser() = %v, want ErrValidation", err)
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		getFn: func(context.Context, int64) (*identity.User, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := app.NewUserService(repo, bcrypt.MinCost, testLogger())
	_, err := svc.UpdateUser(context.Background(), 999, ports.UserUpdate{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateUser(999) = %v, want ErrNotFound", err)
	}
}
