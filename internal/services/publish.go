package services

import (
	"context"

	"github.com/rs/zerolog"

	"socialposts/internal/events"
)

// publishEvent emits a domain event on a best-effort basis: failures are
// logged and never reach the caller.
func publishEvent(ctx context.Context, publisher events.Publisher, log zerolog.Logger, eventType string, data interface{}) {
	if publisher == nil {
		log.Debug().Str("event", eventType).Msg("event publisher not configured, skipping")
		return
	}

	evt, err := events.New(eventType, data)
	if err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("failed to build event")
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn().Err(err).Str("event", eventType).Str("event_id", evt.ID).Msg("failed to publish event")
		return
	}
	log.Debug().Str("event", eventType).Str("event_id", evt.ID).Msg("event published")
}
