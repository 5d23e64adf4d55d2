// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"bakery/config"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
)

// bcryptMaxBytes is the input limit of bcrypt; longer passwords are rejected by GenerateFromPassword.
const bcryptMaxBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and length limits come from the auth and passwordStrength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, maxLength: bcryptMaxBytes}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		hasher.minLength = cfg.PasswordStrength.MinLength
		if cfg.PasswordStrength.MaxLength > 0 && cfg.PasswordStrength.MaxLength < bcryptMaxBytes {
			hasher.maxLength = cfg.PasswordStrength.MaxLength
		}
	}

	return hasher
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and no minimum length.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, maxLength: bcryptMaxBytes}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength enforces the configured length bounds.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if length < h.minLength {
		return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", h.minLength)))
	}
	if len(password) > h.maxLength {
		return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at most %d bytes long", h.maxLength)))
	}

	return nil
}
