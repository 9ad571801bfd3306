package party

import (
	"strings"
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain"
)

// Supplier represents a vendor that products are purchased from.
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
}

// Validate checks business rules for the Supplier entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (s *Supplier) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
