package models

import "fmt"

// Role is the closed set of authorization roles recognised by the catalog.
// Using a dedicated type instead of a free-form string makes invalid roles
// unrepresentable past the parsing boundary.
type Role string

const (
	// RoleUser is the least-privileged role. It is the default assigned at
	// self-registration and grants read-only access to the catalog.
	RoleUser Role = "user"

	// RoleAdmin grants access to all mutating catalog operations and to
	// user management.
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a Role.
// Returns an error for any value outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
