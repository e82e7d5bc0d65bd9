package commands

import (
	"context"
)

// RejectStaleOffersCommandHandler runs the pending offer sweep.
type RejectStaleOffersCommandHandler struct {
	uowFactory OfferUoWFactory
}

func NewRejectStaleOffersCommandHandler(uowFactory OfferUoWFactory) RejectStaleOffersCommandHandler {
	return RejectStaleOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects the stale offers and returns how many it changed.
func (h RejectStaleOffersCommandHandler) Handle(ctx context.Context, command RejectStaleOffersCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rejected, err := uow.OfferRepository().RejectPendingOnClosedLoads(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return rejected, nil
}
