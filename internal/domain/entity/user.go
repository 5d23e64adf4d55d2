// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// User is an account in the marketplace. The role is fixed at registration.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never serialized to clients.
	Role         Role      // USER, BAKER or ADMIN.
	Profile      *Profile  // Nil until the profile is loaded or created.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBaker reports whether the user registered as a baker.
func (u *User) IsBaker() bool {
	return u != nil && u.Role == RoleBaker
}

// Principal is the authenticated caller of a request, resolved from a session cookie or bearer token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAdmin reports whether the caller may use the review workflow.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has the local@domain.tld shape accepted at registration.
func ValidEmail(email string) bool {
	return emailShape.MatchString(email)
}
