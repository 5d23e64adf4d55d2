package pubsub

import (
	"encoding/json"

	"bakery/internal/domain/constants"
	"bakery/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent serializes the event body and builds the attributes used for filtering and tracing.
func encodeEvent(event *service.MarketplaceEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType:   string(event.Type),
		constants.AttrBakerUserID: event.BakerUserID(),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
