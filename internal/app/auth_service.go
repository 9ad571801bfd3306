// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService. Login failures are collapsed
// into a single domain.ErrUnauthorized so responses never reveal whether a
// username exists or an account is disabled.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users ports.UserRepository, tokens *token.Manager, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*identity.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.InfoContext(ctx, "login rejected", slog.String("username", username))
			return nil, "", fmt.Errorf("login: %w", domain.ErrUnauthorized)
		}
		s.logger.ErrorContext(ctx, "failed to load user for login",
			slog.String("operation", "Login"),
			slog.String("username", username),
			slog.Any("error", err),
		)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.InfoContext(ctx, "login rejected", slog.String("username", username))
		return nil, "", fmt.Errorf("login: %w", domain.ErrUnauthorized)
	}

	if !user.Active {
		s.logger.InfoContext(ctx, "login rejected", slog.String("username", username))
		return nil, "", fmt.Errorf("login: %w", domain.ErrUnauthorized)
	}

	signed, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sign token",
			slog.String("operation", "Login"),
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
		return nil, "", err
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, signed, nil
}
