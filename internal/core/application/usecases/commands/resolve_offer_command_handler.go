package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/services"
)

// ResolveOfferCommandHandler turns a shipper's decision into a consistent load and
// offer set. Accepting binds the carrier, accepts the offer and rejects every other
// pending offer on the load in one transaction.
type ResolveOfferCommandHandler struct {
	uowFactory MarketUoWFactory
	negotiator services.Negotiator
}

func NewResolveOfferCommandHandler(uowFactory MarketUoWFactory) ResolveOfferCommandHandler {
	return ResolveOfferCommandHandler{
		uowFactory: uowFactory,
		negotiator: services.NewNegotiator(),
	}
}

// Handle resolves the offer and returns it.
//
// The load row is locked FOR UPDATE and written with a conditional update keyed on
// its prior status, so of two concurrent acceptances on one load exactly one
// commits. The other fails with load.ErrLoadAlreadyAssigned.
func (h ResolveOfferCommandHandler) Handle(ctx context.Context, command ResolveOfferCommand) (*offer.Offer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	offerRepo := uow.OfferRepository()

	o, err := offerRepo.Get(ctx, command.OfferID())
	if err != nil {
		return nil, err
	}

	l, err := loadRepo.GetForUpdate(ctx, o.LoadID())
	if err != nil {
		return nil, err
	}

	// Re-read under the load lock; a resubmission may have changed the bid.
	o, err = offerRepo.GetForUpdate(ctx, command.OfferID())
	if err != nil {
		return nil, err
	}

	expected := l.Status()
	if err = h.negotiator.Resolve(l, o, command.Decision(), command.Actor(), time.Now()); err != nil {
		return nil, err
	}

	if command.Decision() == offer.Accepted {
		if err = loadRepo.Update(ctx, l, expected); err != nil {
			if errors.Is(err, load.ErrLoadStateChanged) {
				return nil, load.ErrLoadAlreadyAssigned
			}
			return nil, err
		}
	}

	if err = offerRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if command.Decision() == offer.Accepted {
		if _, err = offerRepo.RejectPendingExcept(ctx, l.ID(), o.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
