package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// minPasswordLength is the shortest accepted clear-text password.
const minPasswordLength = 8

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService. Passwords are hashed with bcrypt
// at the configured cost before they reach the repository.
type UserService struct {
	users      ports.UserRepository
	bcryptCost int
	logger     *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(users ports.UserRepository, bcryptCost int, logger *slog.Logger) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// ListUsers returns all user accounts.
func (s *UserService) ListUsers(ctx context.Context) ([]identity.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}

// CreateUser validates, hashes the password, and creates the account.
func (s *UserService) CreateUser(ctx context.Context, user *identity.User, password string) (*identity.User, error) {
	s.logger.InfoContext(ctx, "creating user", slog.String("username", user.Username))

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"password": fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = string(hash)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.String("username", user.Username),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateUser applies the partial update to an existing account.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update ports.UserUpdate) (*identity.User, error) {
	s.logger.InfoContext(ctx, "updating user", slog.Int64("id", id))

	user, err := s.users.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if update.Role != nil {
		if !update.Role.IsValid() {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"role": fmt.Sprintf("invalid: %q", *update.Role),
			}}
		}
		user.Role = *update.Role
	}
	if update.Active != nil {
		user.Active = *update.Active
	}
	if update.Password != nil {
		if len(*update.Password) < minPasswordLength {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"password": fmt.Sprintf("must be at least %d characters", minPasswordLength),
			}}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}
