package repository

import (
	"context"
	"errors"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile matches the lookup.
var ErrProfileNotFound = errors.New("profile not found")

// BakerFilter narrows ListBakers. A nil Status lists every baker profile.
type BakerFilter struct {
	Status *entity.BakerStatus
}

// ProfileRepository persists profiles together with their education entries.
type ProfileRepository interface {
	// FindByID loads a profile with its owner and education entries.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUserID loads the profile owned by userID with its owner and education entries.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create inserts a profile and its education entries.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update overwrites the scalar and list columns of an existing profile.
	// Education entries are not touched; use ReplaceEducation.
	Update(ctx context.Context, profile *entity.Profile) error

	// ReplaceEducation deletes every education entry of the profile and inserts the given ones.
	ReplaceEducation(ctx context.Context, profileID uuid.UUID, entries []*entity.EducationEntry) error

	// ListBakers returns profiles owned by BAKER users, newest first.
	ListBakers(ctx context.Context, filter BakerFilter) ([]*entity.Profile, error)

	// UpdateBakerStatus sets the approval status of a profile.
	UpdateBakerStatus(ctx context.Context, id uuid.UUID, status entity.BakerStatus) error
}
