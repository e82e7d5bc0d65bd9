package chat

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// MaxTextLength bounds a single chat message.
const MaxTextLength = 2000

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage constructor")
	ErrTextIsRequired          = errs.NewValueIsRequiredError("text")
)

// Message is one immutable chat entry on a load.
type Message struct {
	id         kernel.UUID
	loadID     kernel.UUID
	senderID   kernel.UUID
	senderRole identity.Role
	text       string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewMessage builds a message from sender. The text is trimmed and must hold 1..MaxTextLength runes.
func NewMessage(id, loadID kernel.UUID, sender identity.Identity, text string, now time.Time) (*Message, error) {
	if sender == nil {
		return nil, errs.NewValueIsRequiredError("sender")
	}
	return RestoreMessage(id, loadID, sender.ID(), sender.Role(), strings.TrimSpace(text), now)
}

// RestoreMessage reconstructs a Message from persistent storage.
func RestoreMessage(
	id, loadID, senderID kernel.UUID,
	senderRole identity.Role,
	text string,
	createdAt time.Time,
) (*Message, error) {
	if err := errors.Join(
		id.Validate(),
		loadID.Validate(),
		senderID.Validate(),
		senderRole.Validate(),
		validateText(text),
	); err != nil {
		return nil, err
	}

	return &Message{
		id:         id,
		loadID:     loadID,
		senderID:   senderID,
		senderRole: senderRole,
		text:       text,
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID           { return m.id }
func (m *Message) LoadID() kernel.UUID       { return m.loadID }
func (m *Message) SenderID() kernel.UUID     { return m.senderID }
func (m *Message) SenderRole() identity.Role { return m.senderRole }
func (m *Message) Text() string              { return m.text }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }

func validateText(text string) error {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return ErrTextIsRequired
	}
	if n > MaxTextLength {
		return errs.NewValueIsOutOfRangeError("text length", n, 1, MaxTextLength)
	}
	return nil
}
