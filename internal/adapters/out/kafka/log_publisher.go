package kafka

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/kernel"
)

// LogPublisher writes events to the log instead of a broker. It is used when no
// Kafka host is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		env := NewEnvelope(event)
		p.logger.InfoContext(ctx, "domain event",
			"event", env.Event,
			"aggregate_id", env.AggregateID,
			"occurred_at", env.OccurredAt,
			"payload", env.Payload)
	}
	return nil
}

func (p *LogPublisher) Close() error { return nil }
