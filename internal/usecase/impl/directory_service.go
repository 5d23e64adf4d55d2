package impl

import (
	"context"
	"log/slog"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	profileRepo repository.ProfileRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		profileRepo: params.ProfileRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListApprovedBakers lists approved bakers, newest first.
func (srv *directoryService) ListApprovedBakers(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.ListBakers(ctx, repository.BakerFilter{
		Status: entity.BakerStatusApproved.Ptr(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved bakers")
	}

	return profiles, nil
}

// GetBaker returns an approved baker's public profile. Pending and rejected bakers are not found.
func (srv *directoryService) GetBaker(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBakerNotFound)
		}

		return nil, errors.Wrap(err, "failed to find baker profile")
	}
	if !profile.OwnedByBaker() {
		return nil, errors.WithStack(domainerrors.ErrNotABaker)
	}
	if !profile.HasStatus(entity.BakerStatusApproved) {
		return nil, errors.WithStack(domainerrors.ErrBakerNotFound)
	}

	return profile, nil
}

// BakerQRCode renders the share code of an approved baker.
func (srv *directoryService) BakerQRCode(ctx context.Context, profileID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetBaker(ctx, profileID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBakerQR(profile.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate baker QR code", slog.Any("profileID", profileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
