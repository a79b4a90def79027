package entity

import "time"

// AdminRole is the closed set of dashboard roles.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// Valid reports whether the role is one of the known values.
func (r AdminRole) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Admin is the aggregate root for the dashboard operator.
// Password holds a bcrypt hash, never plain text.
type Admin struct {
	ID        string
	Username  string
	Password  string
	Email     string
	Role      AdminRole
	CreatedAt time.Time
	LastLogin *time.Time
}
