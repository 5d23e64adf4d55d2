package usecase

import (
	"context"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the baker review workflow. Every operation requires an ADMIN principal.
type AdminUsecase interface {
	// ListBakers lists baker profiles; status filters by PENDING/APPROVED/REJECTED and is ignored otherwise.
	ListBakers(ctx context.Context, principal entity.Principal, status string) ([]*entity.Profile, error)

	// UpdateBakerStatus sets the approval status of a baker profile.
	UpdateBakerStatus(ctx context.Context, principal entity.Principal, profileID uuid.UUID, status string) (*entity.Profile, error)
}
