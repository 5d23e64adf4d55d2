package usecase

import (
	"context"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase defines the public, unauthenticated view of approved bakers.
type DirectoryUsecase interface {
	ListApprovedBakers(ctx context.Context) ([]*entity.Profile, error)
	GetBaker(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)

	// BakerQRCode renders a PNG QR code pointing to the baker's public page.
	BakerQRCode(ctx context.Context, profileID uuid.UUID) ([]byte, error)
}
