package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to downstream consumers after commit.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
