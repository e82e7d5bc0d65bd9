package commands

import (
	"errors"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/guard"
)

var ErrResolveOfferCommandIsNotConstructed = errors.New(
	"ResolveOfferCommand must be created via NewResolveOfferCommand constructor",
)

// ResolveOfferCommand represents a shipper's accept or reject decision on one offer.
type ResolveOfferCommand struct { //nolint:recvcheck //using for validation
	offerID  kernel.UUID
	decision offer.Status
	actor    identity.Identity

	guard guard.ConstructorGuard
}

// NewResolveOfferCommand validates the decision. Only accepted and rejected are decisions.
func NewResolveOfferCommand(offerID kernel.UUID, decision offer.Status, actor identity.Identity) (ResolveOfferCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		validateDecision(decision),
		validateActor(actor),
	); err != nil {
		return ResolveOfferCommand{}, err
	}

	return ResolveOfferCommand{
		offerID:  offerID,
		decision: decision,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveOfferCommand) Validate() error {
	return c.guard.Validate(ErrResolveOfferCommandIsNotConstructed)
}

func (c ResolveOfferCommand) OfferID() kernel.UUID     { return c.offerID }
func (c ResolveOfferCommand) Decision() offer.Status   { return c.decision }
func (c ResolveOfferCommand) Actor() identity.Identity { return c.actor }

func validateDecision(decision offer.Status) error {
	if decision != offer.Accepted && decision != offer.Rejected {
		return offer.ErrInvalidDecision
	}
	return nil
}
