package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// LoadReader fetches the load a query is scoped to, so visibility rules run against
// the aggregate rather than against raw columns.
type LoadReader interface {
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)
}
