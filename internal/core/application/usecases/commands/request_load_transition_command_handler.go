package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
)

// RequestLoadTransitionCommandHandler applies user requested edits and status pushes.
type RequestLoadTransitionCommandHandler struct {
	uowFactory LoadUoWFactory
}

func NewRequestLoadTransitionCommandHandler(uowFactory LoadUoWFactory) RequestLoadTransitionCommandHandler {
	return RequestLoadTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edits first and then the transition, so a shipper may adjust a
// posted load and cancel it in one request. Either both apply or neither does.
// The write is conditional on the status the load was read with.
func (h RequestLoadTransitionCommandHandler) Handle(
	ctx context.Context,
	command RequestLoadTransitionCommand,
) (*load.Load, error) {
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

	l, err := loadRepo.GetForUpdate(ctx, command.LoadID())
	if err != nil {
		return nil, err
	}

	expected := l.Status()

	if edits := command.Edits(); !edits.IsEmpty() {
		if err = l.Edit(edits, command.Actor()); err != nil {
			return nil, err
		}
	}

	if to, ok := command.Status(); ok {
		if err = l.RequestTransition(to, command.Actor(), time.Now()); err != nil {
			return nil, err
		}
	}

	if err = loadRepo.Update(ctx, l, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
