package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrRejectStaleOffersCommandIsNotConstructed = errors.New(
	"RejectStaleOffersCommand must be created via NewRejectStaleOffersCommand constructor",
)

// RejectStaleOffersCommand rejects offers left pending on loads that are no longer
// posted. It repeats the sibling rejection of an acceptance and is safe to run any
// number of times.
type RejectStaleOffersCommand struct {
	guard guard.ConstructorGuard
}

func NewRejectStaleOffersCommand() RejectStaleOffersCommand {
	return RejectStaleOffersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *RejectStaleOffersCommand) Validate() error {
	return c.guard.Validate(
		ErrRejectStaleOffersCommandIsNotConstructed,
	)
}
