package service

import (
	"context"
	"time"
)

// MarketplaceEventType names the kind of marketplace event.
type MarketplaceEventType string

const (
	EventOrderPlaced        MarketplaceEventType = "order.placed"
	EventBakerStatusChanged MarketplaceEventType = "baker.status_changed"
)

// MarketplaceEvent is the envelope published for asynchronous processing by the notifier worker.
// Exactly one of the payload fields is set, matching Type.
type MarketplaceEvent struct {
	RequestID     string                   `json:"request_id,omitempty"` // For distributed tracing
	Type          MarketplaceEventType     `json:"type"`
	OccurredAt    time.Time                `json:"occurred_at"`
	OrderPlaced   *OrderPlacedPayload      `json:"order_placed,omitempty"`
	StatusChanged *BakerStatusChangedEvent `json:"status_changed,omitempty"`
}

// OrderPlacedPayload describes a freshly placed order.
type OrderPlacedPayload struct {
	OrderID        string  `json:"orderId"`
	BakerProfileID string  `json:"bakerProfileId"`
	BakerUserID    string  `json:"bakerUserId"`
	PastryType     string  `json:"pastryType"`
	Quantity       int     `json:"quantity"`
	TotalAmount    float64 `json:"totalAmount"`
}

// BakerStatusChangedEvent describes an admin review decision.
type BakerStatusChangedEvent struct {
	BakerProfileID string `json:"bakerProfileId"`
	BakerUserID    string `json:"bakerUserId"`
	Status         string `json:"status"`
}

// BakerUserID returns the user that should be notified about the event.
func (e *MarketplaceEvent) BakerUserID() string {
	switch {
	case e.OrderPlaced != nil:
		return e.OrderPlaced.BakerUserID
	case e.StatusChanged != nil:
		return e.StatusChanged.BakerUserID
	default:
		return ""
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a marketplace event for async processing
	Publish(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
