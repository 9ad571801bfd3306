// Package party contains the customer and supplier directory entities.
package party

import (
	"strings"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Customer represents a buyer on record. Sales may also be made to walk-in
// customers that have no Customer entry.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}

// Validate checks business rules for the Customer entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (c *Customer) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
