// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer.
	RoleUser Role = "USER"
	// RoleBaker indicates a home baker whose profile is subject to admin approval.
	RoleBaker Role = "BAKER"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBaker, RoleAdmin:
		return true
	default:
		return false
	}
}

// RegistrationRole maps a requested role onto the roles open to self-registration.
// Anything other than BAKER (including ADMIN) registers a regular user.
func RegistrationRole(requested string) Role {
	if Role(requested) == RoleBaker {
		return RoleBaker
	}

	return RoleUser
}
