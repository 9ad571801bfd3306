// Package identity contains the user account entities.
package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// User represents an operator account. PasswordHash holds a bcrypt hash;
// the clear-text password never leaves the auth service. Inactive users
// keep their history but can no longer log in.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
}

// Validate checks business rules for the User entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Username) == "" {
		fields["username"] = msgRequired
	}
	if strings.TrimSpace(u.Email) == "" {
		fields["email"] = msgRequired
	} else if !strings.Contains(u.Email, "@") {
		fields["email"] = fmt.Sprintf("invalid: %q", u.Email)
	}
	if !u.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", u.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
