package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/load"
)

// CreateLoadCommandHandler posts new loads on behalf of shippers.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the load in posted status and returns it. Only shippers may post.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, command CreateLoadCommand) (*load.Load, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	shipper, err := identity.AsShipper(command.Actor())
	if err != nil {
		return nil, err
	}

	l, err := load.NewLoad(command.LoadID(), shipper, command.Details(), command.Rate(), time.Now())
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

	if err = uow.LoadRepository().Add(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
