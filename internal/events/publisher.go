package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"arogya360-portal/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Publisher emits portal change events
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// RoutingKey builds "<namespace>.<collection>.<action>"
func RoutingKey(namespace, collection, action string) string {
	return namespace + "." + collection + "." + action
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close() error                               { return nil }

// RabbitPublisher publishes JSON events to a topic exchange
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   zerolog.Logger
}

// NewPublisher returns a RabbitPublisher when events are enabled and a
// NopPublisher otherwise
func NewPublisher(cfg *config.Config, logger zerolog.Logger) (Publisher, error) {
	logger = logger.With().Str("component", "events").Logger()
	if !cfg.Events.Enabled {
		logger.Info().Msg("RabbitMQ is disabled, change events will not be published")
		return NopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.Events.AmqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	if err := channel.ExchangeDeclare(cfg.Events.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Events.Exchange, err)
	}

	logger.Info().Str("exchange", cfg.Events.Exchange).Msg("change events enabled")
	return &RabbitPublisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Events.Exchange,
		logger:   logger,
	}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", routingKey, err)
	}

	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *RabbitPublisher) Close() error {
	if p == nil || p.channel == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
