package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
)

// SubmitOfferCommandHandler records carrier bids.
type SubmitOfferCommandHandler struct {
	uowFactory MarketUoWFactory
}

func NewSubmitOfferCommandHandler(uowFactory MarketUoWFactory) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the bid against the load and upserts it on (load, carrier).
// The load is read under a shared lock, so a concurrent acceptance either commits
// first and the bid is refused, or waits for the bid to commit.
//
// A carrier that already bid on the load resubmits its existing offer, which
// keeps the original id and reopens as pending.
func (h SubmitOfferCommandHandler) Handle(ctx context.Context, command SubmitOfferCommand) (*offer.Offer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	carrier, err := identity.AsCarrier(command.Actor())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bid, err := offer.NewOffer(
		command.OfferID(),
		command.LoadID(),
		carrier,
		command.Amount(),
		command.Message(),
		now,
	)
	if err != nil {
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

	l, err := loadRepo.GetForShare(ctx, command.LoadID())
	if err != nil {
		return nil, err
	}

	if err = l.CanReceiveOffers(carrier); err != nil {
		return nil, err
	}

	existing, err := offerRepo.FindByCarrier(ctx, l.ID(), carrier.ID())
	switch {
	case err == nil:
		if err = existing.Resubmit(carrier, command.Amount(), command.Message(), now); err != nil {
			return nil, err
		}
		bid = existing
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	stored, err := offerRepo.Upsert(ctx, bid)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
