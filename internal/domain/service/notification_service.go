package service

import (
	"context"
	"errors"
)

// ErrNotificationRetryable marks send failures worth a redelivery of the triggering event.
var ErrNotificationRetryable = errors.New("retryable notification failure")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic sends a push notification to every device subscribed to topic.
	// Transient provider failures wrap ErrNotificationRetryable.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
