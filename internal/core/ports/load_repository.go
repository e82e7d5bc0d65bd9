// Package ports defines the persistence and messaging contracts of the freight core.
// Adapters in internal/adapters implement them; handlers depend only on these interfaces.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a newly posted load. The load number must be unique.
	Add(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load without locking it.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate retrieves a load and holds an exclusive row lock until the
	// transaction ends. Used by every operation that mutates the load.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForShare retrieves a load under a shared row lock, so offers cannot be
	// written while a concurrent acceptance moves the load out of posted.
	GetForShare(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// Update writes the load only if the stored row still has expectedStatus and the
	// version the aggregate was read with. Otherwise it returns load.ErrLoadStateChanged.
	Update(ctx context.Context, aggregate *load.Load, expectedStatus load.Status) error
}
