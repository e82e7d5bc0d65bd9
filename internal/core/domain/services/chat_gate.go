package services

import (
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

var (
	// ErrChatClosed is returned when a load has no bound carrier or was delivered.
	ErrChatClosed = errs.NewPreconditionFailedError("chat is closed for this load")
	// ErrNotChatParticipant is returned for callers other than the shipper, the assigned carrier and admins.
	ErrNotChatParticipant = errs.NewUnauthorizedError("only the load's shipper, assigned carrier and admins may use its chat")
)

// ChatGate derives from load state whether messaging on a load is open, and for whom.
type ChatGate struct{}

func NewChatGate() ChatGate {
	return ChatGate{}
}

// Authorize checks participation first, then that the chat is open: a carrier is bound
// and the load is not delivered. A cancelled load has no carrier, so its chat is closed.
func (g ChatGate) Authorize(l *load.Load, who identity.Identity) error {
	if err := l.Validate(); err != nil {
		return err
	}

	if who == nil || !(l.IsOwner(who) || l.IsAssignedCarrier(who) || identity.IsAdmin(who)) {
		return ErrNotChatParticipant
	}

	if !g.IsOpen(l) {
		return ErrChatClosed
	}
	return nil
}

// IsOpen reports whether the chat of l accepts reads and writes.
func (g ChatGate) IsOpen(l *load.Load) bool {
	return l.CarrierID() != nil && l.Status() != load.Delivered
}
