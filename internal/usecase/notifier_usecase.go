package usecase

import (
	"context"
	"errors"

	"bakery/internal/domain/service"
)

// ErrMalformedEvent marks events that can never be delivered; redelivering them is pointless.
var ErrMalformedEvent = errors.New("malformed marketplace event")

// NotifierUsecase turns marketplace events into push notifications for the baker concerned.
type NotifierUsecase interface {
	HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error
}
