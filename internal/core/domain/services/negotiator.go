package services

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
)

// Negotiator resolves a shipper's decision on one offer into a consistent load and offer state.
//
// Business rules:
//   - only the owner shipper of the load may resolve its offers
//   - the offer must belong to the load
//   - the load must still be posted; otherwise ErrLoadAlreadyAssigned
//   - an accepted offer binds its carrier and amount to the load
//
// Rejecting the remaining pending siblings of an accepted offer is a storage concern
// and happens in the same transaction, see RejectPendingExcept on the offer repository.
//
//	negotiator := services.NewNegotiator()
//	if err := negotiator.Resolve(l, o, offer.Accepted, shipper, time.Now()); err != nil {
//	    return err
//	}
type Negotiator struct{}

func NewNegotiator() Negotiator {
	return Negotiator{}
}

// Resolve applies decision (offer.Accepted or offer.Rejected) to o on behalf of who.
// Nothing is mutated when an error is returned.
func (n Negotiator) Resolve(l *load.Load, o *offer.Offer, decision offer.Status, who identity.Identity, now time.Time) error {
	if err := errors.Join(l.Validate(), o.Validate()); err != nil {
		return err
	}

	shipper, err := identity.AsShipper(who)
	if err != nil || !l.IsOwner(shipper) {
		return load.ErrNotLoadOwner
	}

	if !o.BelongsTo(l.ID()) {
		return errs.NewObjectNotFoundError("offer", o.ID().String())
	}

	if err = l.Status().ValidateAssign(); err != nil {
		return err
	}

	if _, err = o.Status().Resolve(decision); err != nil {
		return err
	}

	if decision == offer.Rejected {
		return o.Reject(now)
	}

	if err = l.Assign(o.CarrierID(), o.Amount(), shipper, now); err != nil {
		return err
	}
	return o.Accept(now)
}
