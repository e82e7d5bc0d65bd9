// Package kafka publishes freight domain events to a Kafka topic as JSON messages
// keyed by aggregate id, so every event of one load lands on the same partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of segmentio kafka.Writer we need. This makes the publisher testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Envelope is the JSON body of every published message.
type Envelope struct {
	Event       string    `json:"event"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload"`
}

type loadPostedPayload struct {
	LoadNumber string `json:"load_number"`
	ShipperID  string `json:"shipper_id"`
	RateCents  int64  `json:"rate_cents"`
}

type loadStatusChangedPayload struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	CarrierID *string `json:"carrier_id,omitempty"`
	ActorID   string  `json:"actor_id"`
	ActorRole string  `json:"actor_role"`
}

// Publisher implements ports.EventPublisher on top of a kafka writer.
type Publisher struct {
	writer Writer
	logger *slog.Logger
}

// NewPublisher creates a Publisher that writes to topic on the given broker.
func NewPublisher(brokerURL, topic string, logger *slog.Logger) *Publisher {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(w, logger)
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{writer: w, logger: logger.With("component", "kafka_publisher")}
}

// Publish writes all events in one batch. Events of unknown types are published
// with an empty payload.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]skafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := toMessage(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.ErrorContext(ctx, "kafka write error", "count", len(msgs), "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "kafka published", "count", len(msgs))
	return nil
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(event kernel.DomainEvent) (skafka.Message, error) {
	body, err := json.Marshal(NewEnvelope(event))
	if err != nil {
		return skafka.Message{}, fmt.Errorf("marshal %s event: %w", event.EventName(), err)
	}
	return skafka.Message{
		Key:   []byte(event.AggregateID().String()),
		Value: body,
		Headers: []skafka.Header{
			{Key: "event", Value: []byte(event.EventName())},
		},
	}, nil
}

// NewEnvelope maps a domain event to its wire representation.
func NewEnvelope(event kernel.DomainEvent) Envelope {
	env := Envelope{
		Event:       event.EventName(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt().UTC(),
	}

	switch e := event.(type) {
	case load.PostedEvent:
		env.Payload = loadPostedPayload{
			LoadNumber: e.LoadNumber,
			ShipperID:  e.ShipperID.String(),
			RateCents:  e.Rate.Cents(),
		}
	case load.StatusChangedEvent:
		payload := loadStatusChangedPayload{
			From:      e.From.String(),
			To:        e.To.String(),
			ActorID:   e.ActorID.String(),
			ActorRole: string(e.ActorRole),
		}
		if e.CarrierID != nil {
			id := e.CarrierID.String()
			payload.CarrierID = &id
		}
		env.Payload = payload
	default:
		env.Payload = struct{}{}
	}

	return env
}
