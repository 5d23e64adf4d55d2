package impl

import (
	"context"
	"log/slog"
	"time"

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

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBakers lists baker profiles for review. Unknown status values list every baker.
func (srv *adminService) ListBakers(ctx context.Context, principal entity.Principal, status string) ([]*entity.Profile, error) {
	if !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrAdminRequired)
	}

	var filter repository.BakerFilter
	if parsed, ok := entity.ParseBakerStatus(status); ok {
		filter.Status = parsed.Ptr()
	}

	profiles, err := srv.profileRepo.ListBakers(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bakers")
	}

	return profiles, nil
}

// UpdateBakerStatus sets any of the three review states on a baker profile and announces the change.
func (srv *adminService) UpdateBakerStatus(ctx context.Context, principal entity.Principal, profileID uuid.UUID, status string) (*entity.Profile, error) {
	if !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrAdminRequired)
	}

	newStatus, ok := entity.ParseBakerStatus(status)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidBakerStatus)
	}

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to find profile")
		}
		if !profile.OwnedByBaker() {
			return errors.WithStack(domainerrors.ErrNotABaker)
		}

		if err := profileRepo.UpdateBakerStatus(ctx, profileID, newStatus); err != nil {
			return errors.Wrap(err, "failed to update baker status")
		}
		profile.BakerStatus = newStatus.Ptr()
		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Baker status updated",
		slog.Any("profileID", profileID),
		slog.String("status", newStatus.String()),
		slog.Any("adminID", principal.UserID),
	)

	srv.publish(ctx, &service.MarketplaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventBakerStatusChanged,
		OccurredAt: time.Now().UTC(),
		StatusChanged: &service.BakerStatusChangedEvent{
			BakerProfileID: updated.ID.String(),
			BakerUserID:    updated.UserID.String(),
			Status:         newStatus.String(),
		},
	})

	return updated, nil
}

// publish hands the event to the publisher; a failure is logged and never surfaces to the caller.
func (srv *adminService) publish(ctx context.Context, event *service.MarketplaceEvent) {
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish marketplace event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
