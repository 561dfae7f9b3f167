package service

import (
	"context"
	"time"

	"arogya360-portal/internal/events"
	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

// NewEventRelay returns a store observer that forwards each change to publisher
func NewEventRelay(publisher events.Publisher, namespace string, logger zerolog.Logger) func(store.Change) {
	logger = logger.With().Str("service", "event_relay").Logger()
	return func(c store.Change) {
		if c.Record == nil {
			logger.Debug().Str("collection", c.Collection).Str("action", c.Action).Msg("change without record, not published")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		key := events.RoutingKey(namespace, c.Collection, c.Action)
		if err := publisher.Publish(ctx, key, c.Record); err != nil {
			logger.Warn().Err(err).Str("routing_key", key).Msg("event publish failed")
		}
	}
}
