package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const publishTimeout = 3 * time.Second

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	ch     channel
	logger zerolog.Logger
	now    func() time.Time
}

// NewPublisher opens a channel on conn and declares the topic exchange events are published to.
func NewPublisher(conn *amqp.Connection, logger zerolog.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("conn.Channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("ch.ExchangeDeclare[%s]: %w", EventsExchange, err)
	}

	return newPublisher(ch, logger), nil
}

func newPublisher(ch channel, logger zerolog.Logger) *Publisher {
	return &Publisher{
		ch:     ch,
		logger: logger.With().Str("component", "events").Logger(),
		now:    time.Now,
	}
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, summary domain.OrderSummary) error {
	eventID := uuid.New()

	body, err := json.Marshal(newOrderPlacedEnvelope(summary, eventID, p.now()))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := p.publishJSON(ctx, OrderPlacedRoutingKey, eventID, body); err != nil {
		return fmt.Errorf("publishJSON[%s]: %w", OrderPlacedRoutingKey, err)
	}

	p.logger.Debug().
		Str("routing_key", OrderPlacedRoutingKey).
		Str("event_id", eventID.String()).
		Str("order_id", summary.OrderID.String()).
		Msg("event published")

	return nil
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, eventID uuid.UUID, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    eventID.String(),
			Timestamp:    p.now().UTC(),
			Body:         body,
		},
	)
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct {
	logger zerolog.Logger
}

func NewNoopPublisher(logger zerolog.Logger) NoopPublisher {
	return NoopPublisher{logger: logger}
}

func (p NoopPublisher) PublishOrderPlaced(_ context.Context, summary domain.OrderSummary) error {
	p.logger.Debug().
		Str("order_id", summary.OrderID.String()).
		Msg("event publishing disabled")
	return nil
}
