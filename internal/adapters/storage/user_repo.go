package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ocastro/autoglass-mis/internal/domain/identity"
)

// UserRepository implements ports.UserRepository using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]identity.User, error) {
	var models []userModel
	if err := r.db.WithContext(ctx).Order("username").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", translateError(err))
	}
	users := make([]identity.User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*identity.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, translateError(err))
	}
	return m.toDomain(), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, fmt.Errorf("user %q: %w", username, translateError(err))
	}
	return m.toDomain(), nil
}

// Create inserts a new user. Username and email uniqueness is enforced by
// the schema; violations surface as domain.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *identity.User) (*identity.User, error) {
	m := userFromDomain(user)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", translateError(err))
	}
	return m.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *identity.User) (*identity.User, error) {
	var existing userModel
	if err := r.db.WithContext(ctx).First(&existing, user.ID).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", user.ID, translateError(err))
	}

	updates := map[string]any{
		"role":          string(user.Role),
		"active":        user.Active,
		"password_hash": user.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating user %d: %w", user.ID, translateError(err))
	}
	return existing.toDomain(), nil
}
