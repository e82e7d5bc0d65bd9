package commands

import (
	"errors"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrPostChatMessageCommandIsNotConstructed = errors.New(
	"PostChatMessageCommand must be created via NewPostChatMessageCommand constructor",
)

// PostChatMessageCommand appends a message to the chat of a load.
type PostChatMessageCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	loadID    kernel.UUID
	actor     identity.Identity
	text      string

	guard guard.ConstructorGuard
}

// NewPostChatMessageCommand validates ids and actor. The text is checked by the
// handler after the chat gate, so outsiders learn nothing from validation errors.
func NewPostChatMessageCommand(messageID, loadID kernel.UUID, actor identity.Identity, text string) (PostChatMessageCommand, error) {
	if err := errors.Join(
		messageID.Validate(),
		loadID.Validate(),
		validateActor(actor),
	); err != nil {
		return PostChatMessageCommand{}, err
	}

	return PostChatMessageCommand{
		messageID: messageID,
		loadID:    loadID,
		actor:     actor,
		text:      text,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PostChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostChatMessageCommandIsNotConstructed)
}

func (c PostChatMessageCommand) MessageID() kernel.UUID   { return c.messageID }
func (c PostChatMessageCommand) LoadID() kernel.UUID      { return c.loadID }
func (c PostChatMessageCommand) Actor() identity.Identity { return c.actor }
func (c PostChatMessageCommand) Text() string             { return c.text }
