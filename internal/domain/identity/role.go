package identity

// Role represents a user's access level.
//
// Admins manage users and reports, staff and cashiers operate the
// day-to-day inventory and sales endpoints.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleCashier Role = "cashier"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCashier:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
