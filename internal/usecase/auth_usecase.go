// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bakery/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
// Role is optional; only BAKER is honoured, anything else registers a USER.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the signed token used as session cookie value or bearer token.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a token into the caller's principal.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}
