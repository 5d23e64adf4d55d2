package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/constants"
	"bakery/internal/domain/entity"
	"bakery/internal/domain/service"
	"bakery/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notifierService implements the NotifierUsecase interface.
type notifierService struct {
	notifier service.NotificationService
	logger   *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	Notifier service.NotificationService
	Logger   *slog.Logger
}

// NewNotifierService is the constructor for notifierService.
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return &notifierService{
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

func (srv *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEvent pushes a notification to the baker's topic.
func (srv *notifierService) HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	if event == nil {
		return errors.WithStack(usecase.ErrMalformedEvent)
	}

	bakerUserID := event.BakerUserID()
	if bakerUserID == "" {
		return errors.Wrapf(usecase.ErrMalformedEvent, "event %q carries no baker", event.Type)
	}

	title, body, data, err := renderNotification(event)
	if err != nil {
		return err
	}
	data[constants.AttrEventType] = string(event.Type)
	data[constants.AttrBakerUserID] = bakerUserID
	if event.RequestID != "" {
		data[constants.AttrRequestID] = event.RequestID
	}

	topic := constants.BakerTopicPrefix + bakerUserID
	if err := srv.notifier.SendToTopic(ctx, topic, title, body, data); err != nil {
		return errors.Wrapf(err, "failed to notify topic %s", topic)
	}

	srv.log(ctx).Info("Baker notified",
		slog.String("event_type", string(event.Type)),
		slog.String("topic", topic),
	)

	return nil
}

func renderNotification(event *service.MarketplaceEvent) (title, body string, data map[string]string, err error) {
	switch event.Type {
	case service.EventOrderPlaced:
		payload := event.OrderPlaced
		if payload == nil {
			return "", "", nil, errors.Wrap(usecase.ErrMalformedEvent, "order.placed without payload")
		}

		return "New order",
			fmt.Sprintf("%d x %s", payload.Quantity, payload.PastryType),
			map[string]string{
				"order_id":     payload.OrderID,
				"total_amount": strconv.FormatFloat(payload.TotalAmount, 'f', 2, 64),
			}, nil

	case service.EventBakerStatusChanged:
		payload := event.StatusChanged
		if payload == nil {
			return "", "", nil, errors.Wrap(usecase.ErrMalformedEvent, "baker.status_changed without payload")
		}

		var text string
		switch entity.BakerStatus(payload.Status) {
		case entity.BakerStatusApproved:
			text = "Your baker profile was approved and is now listed in the directory."
		case entity.BakerStatusRejected:
			text = "Your baker profile was rejected."
		default:
			text = "Your baker profile is pending review."
		}

		return "Profile review", text, map[string]string{"status": payload.Status}, nil

	default:
		return "", "", nil, errors.Wrapf(usecase.ErrMalformedEvent, "unknown event type %q", event.Type)
	}
}
