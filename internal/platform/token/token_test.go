package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
)

func testUser() *identity.User {
	return &identity.User{
		ID:       42,
		Username: "cashier1",
		Role:     identity.RoleCashier,
	}
}

func TestManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	m := token.NewManager("unit-test-secret", time.Hour)

	signed, err := m.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	claims, err := m.Parse(signed)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != identity.RoleCashier {
		t.Errorf("Role = %q, want %q", claims.Role, identity.RoleCashier)
	}
	if claims.Subject != "cashier1" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "cashier1")
	}
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := token.NewManager("secret-a", time.Hour).Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	_, err = token.NewManager("secret-b", time.Hour).Parse(signed)
	if err == nil {
		t.Fatal("Parse() with wrong secret = nil, want error")
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("errors.Is(err, ErrUnauthorized) = false, got %v", err)
	}
}

func TestManager_Parse_Expired(t *testing.T) {
	t.Parallel()

	m := token.NewManager("unit-test-secret", -time.Minute)

	signed, err := m.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	_, err = m.Parse(signed)
	if err == nil {
		t.Fatal("Parse() of expired token = nil, want error")
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("errors.Is(err, ErrUnauthorized) = false, got %v", err)
	}
}

func TestManager_Parse_Garbage(t *testing.T) {
	t.Parallel()

	m := token.NewManager("unit-test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	if err == nil {
		t.Fatal("Parse() of garbage = nil, want error")
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("errors.Is(err, ErrUnauthorized) = false, got %v", err)
	}
}
