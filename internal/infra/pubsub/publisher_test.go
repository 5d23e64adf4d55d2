package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery/config"
	"bakery/internal/domain/constants"
	"bakery/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderPlacedEvent() *service.MarketplaceEvent {
	return &service.MarketplaceEvent{
		RequestID:  "req-123",
		Type:       service.EventOrderPlaced,
		OccurredAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		OrderPlaced: &service.OrderPlacedPayload{
			OrderID:        "order-1",
			BakerProfileID: "profile-1",
			BakerUserID:    "baker-user-1",
			PastryType:     "Croissant",
			Quantity:       12,
			TotalAmount:    36.5,
		},
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	defer goleak.VerifyNone(t)

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	defer publisher.Close()

	require.NoError(t, publisher.Publish(context.Background(), newOrderPlacedEvent()))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "order.placed", received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "baker-user-1", received.Message.Attributes[constants.AttrBakerUserID])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.MarketplaceEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	require.NotNil(t, event.OrderPlaced)
	assert.Equal(t, 12, event.OrderPlaced.Quantity)
	assert.Nil(t, event.StatusChanged)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	defer goleak.VerifyNone(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	defer publisher.Close()

	err := publisher.Publish(context.Background(), newOrderPlacedEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			if tt.noop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.Publish(context.Background(), newOrderPlacedEvent()))
			} else {
				assert.IsType(t, &localHTTPPublisher{}, publisher)
			}
			lc.RequireStart().RequireStop()
		})
	}
}
