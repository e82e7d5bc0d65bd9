package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/services"
)

// PostChatMessageCommandHandler appends chat messages for load participants.
type PostChatMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	gate       services.ChatGate
}

func NewPostChatMessageCommandHandler(uowFactory ChatUoWFactory) PostChatMessageCommandHandler {
	return PostChatMessageCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewChatGate(),
	}
}

// Handle checks the chat gate and appends the message.
func (h PostChatMessageCommandHandler) Handle(ctx context.Context, command PostChatMessageCommand) (*chat.Message, error) {
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

	l, err := uow.LoadRepository().GetForShare(ctx, command.LoadID())
	if err != nil {
		return nil, err
	}

	if err = h.gate.Authorize(l, command.Actor()); err != nil {
		return nil, err
	}

	m, err := chat.NewMessage(command.MessageID(), l.ID(), command.Actor(), command.Text(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ChatRepository().Append(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
