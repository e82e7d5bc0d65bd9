package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregates whose domain events are
// published once Commit succeeds. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the tracked events.
	// A publishing failure is logged and does not undo the commit.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and discards tracked events.
	Rollback(ctx context.Context) error

	// LoadRepository returns a LoadRepository bound to the current transaction.
	LoadRepository() LoadRepository

	// OfferRepository returns an OfferRepository bound to the current transaction.
	OfferRepository() OfferRepository

	// ChatRepository returns a ChatRepository bound to the current transaction.
	ChatRepository() ChatRepository
}
