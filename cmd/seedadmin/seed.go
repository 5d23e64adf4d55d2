package main

import (
	"context"
	"strings"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"

	"github.com/pkg/errors"
)

type seedInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// seedAdmin creates the admin account unless it already exists. Existing non-admin accounts are left
// untouched because roles never change after creation.
func seedAdmin(ctx context.Context, users repository.UserRepository, hasher service.PasswordHasher, input seedInput) (bool, error) {
	email := strings.TrimSpace(input.Email)
	if !entity.ValidEmail(email) {
		return false, errors.Errorf("invalid admin email %q", input.Email)
	}
	if input.Password == "" {
		return false, errors.Errorf("admin password must be set through %s", passwordEnv)
	}
	if err := hasher.ValidatePasswordStrength(input.Password); err != nil {
		return false, err
	}

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.Role == entity.RoleAdmin:
		return false, nil
	case err == nil:
		return false, errors.Errorf("%s is already registered as %s", email, existing.Role)
	case !errors.Is(err, repository.ErrUserNotFound):
		return false, errors.Wrap(err, "failed to look up admin")
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Profile: &entity.Profile{
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Photos:      []string{},
			Specialties: []string{},
		},
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, errors.Wrap(err, "failed to create admin")
	}

	return true, nil
}
