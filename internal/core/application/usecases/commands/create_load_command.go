package commands

import (
	"errors"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a shipper posting a new load.
//
// Example:
//
//	details, _ := load.NewDetails("Dallas, TX", "Tulsa, OK", pickup, time.Time{}, 42000, "dry van", "")
//	rate, _ := kernel.NewMoney(185000)
//	cmd, err := NewCreateLoadCommand(kernel.NewUUID(), shipper, details, rate)
//	if err != nil {
//	    return err
//	}
//	l, err := handler.Handle(ctx, cmd)
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	actor   identity.Identity
	details load.Details
	rate    kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand validates the input of a new load.
func NewCreateLoadCommand(
	loadID kernel.UUID,
	actor identity.Identity,
	details load.Details,
	rate kernel.Money,
) (CreateLoadCommand, error) {
	if err := errors.Join(
		loadID.Validate(),
		validateActor(actor),
		details.Validate(),
		rate.Validate(),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return CreateLoadCommand{
		loadID:  loadID,
		actor:   actor,
		details: details,
		rate:    rate,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) LoadID() kernel.UUID      { return c.loadID }
func (c CreateLoadCommand) Actor() identity.Identity { return c.actor }
func (c CreateLoadCommand) Details() load.Details    { return c.details }
func (c CreateLoadCommand) Rate() kernel.Money       { return c.rate }

// validateActor checks that an identity was supplied. Role checks belong to the handlers.
func validateActor(actor identity.Identity) error {
	if actor == nil {
		return errs.NewValueIsRequiredError("actor")
	}
	return actor.Validate()
}
