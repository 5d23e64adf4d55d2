package notification

import (
	"context"
	"log/slog"

	"bakery/config"
	"bakery/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase Cloud Messaging client from the firebase config section.
// Without a credentials path, application default credentials are used.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	var (
		fbConfig *firebase.Config
		opts     []option.ClientOption
	)
	if cfg.Firebase != nil {
		if cfg.Firebase.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, logger), nil
}

func newFirebaseService(client messageSender, logger *slog.Logger) *firebaseService {
	return &firebaseService{client: client, logger: logger}
}

// SendToTopic sends a notification to every device subscribed to topic.
// Quota, availability and internal errors wrap service.ErrNotificationRetryable.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnavailable(err) || messaging.IsQuotaExceeded(err) || messaging.IsInternal(err) {
			return errors.Wrapf(service.ErrNotificationRetryable, "send to topic %s: %v", topic, err)
		}

		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}
