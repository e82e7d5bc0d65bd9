package commands

import (
	"errors"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrSubmitOfferCommandIsNotConstructed = errors.New(
	"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
)

// SubmitOfferCommand represents a carrier bidding on a posted load. A second
// submission by the same carrier on the same load updates the existing offer.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	loadID  kernel.UUID
	actor   identity.Identity
	amount  kernel.Money
	message string

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand validates a bid. offerID is used only when no offer from the
// carrier exists yet.
func NewSubmitOfferCommand(
	offerID, loadID kernel.UUID,
	actor identity.Identity,
	amount kernel.Money,
	message string,
) (SubmitOfferCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		loadID.Validate(),
		validateActor(actor),
		amount.Validate(),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	return SubmitOfferCommand{
		offerID: offerID,
		loadID:  loadID,
		actor:   actor,
		amount:  amount,
		message: message,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

func (c SubmitOfferCommand) OfferID() kernel.UUID     { return c.offerID }
func (c SubmitOfferCommand) LoadID() kernel.UUID      { return c.loadID }
func (c SubmitOfferCommand) Actor() identity.Identity { return c.actor }
func (c SubmitOfferCommand) Amount() kernel.Money     { return c.amount }
func (c SubmitOfferCommand) Message() string          { return c.message }
