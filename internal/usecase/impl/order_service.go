package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
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

// orderService implements the OrderUsecase interface.
type orderService struct {
	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		profileRepo: params.ProfileRepo,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates a pending order for an approved baker.
func (srv *orderService) PlaceOrder(ctx context.Context, principal entity.Principal, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	pastryType := strings.TrimSpace(input.PastryType)
	if input.BakerID == uuid.Nil || pastryType == "" || input.Quantity <= 0 || !validAmount(input.TotalAmount) {
		return nil, errors.WithStack(domainerrors.ErrMissingFields.WithDetails(
			"Missing required fields: bakerId, pastryType, quantity, totalAmount"))
	}

	baker, err := srv.profileRepo.FindByID(ctx, input.BakerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidBaker)
		}

		return nil, errors.Wrap(err, "failed to find baker profile")
	}
	if !baker.OwnedByBaker() {
		return nil, errors.WithStack(domainerrors.ErrInvalidBaker)
	}
	if !baker.HasStatus(entity.BakerStatusApproved) {
		return nil, errors.WithStack(domainerrors.ErrBakerNotApproved)
	}

	order := &entity.Order{
		UserID:      principal.UserID,
		BakerID:     baker.ID,
		PastryType:  pastryType,
		Quantity:    input.Quantity,
		TotalAmount: input.TotalAmount,
		Status:      entity.OrderStatusPending,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	created, err := srv.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload placed order, returning it without joins",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
		order.Baker = baker
		created = order
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("bakerProfileID", baker.ID),
		slog.Int("quantity", order.Quantity),
	)

	if err := srv.publisher.Publish(ctx, &service.MarketplaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventOrderPlaced,
		OccurredAt: time.Now().UTC(),
		OrderPlaced: &service.OrderPlacedPayload{
			OrderID:        order.ID.String(),
			BakerProfileID: baker.ID.String(),
			BakerUserID:    baker.UserID.String(),
			PastryType:     order.PastryType,
			Quantity:       order.Quantity,
			TotalAmount:    order.TotalAmount,
		},
	}); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	return created, nil
}

// ListOrders lists the caller's placed orders, or the orders addressed to the caller's profile.
func (srv *orderService) ListOrders(ctx context.Context, principal entity.Principal, view entity.OrderView) ([]*entity.Order, error) {
	if view != entity.OrderViewReceived {
		orders, err := srv.orderRepo.ListByUser(ctx, principal.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list placed orders")
		}

		return orders, nil
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []*entity.Order{}, nil
		}

		return nil, errors.Wrap(err, "failed to find caller profile")
	}

	orders, err := srv.orderRepo.ListByBaker(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list received orders")
	}

	return orders, nil
}

// validAmount reports whether amount is a finite positive decimal.
func validAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
