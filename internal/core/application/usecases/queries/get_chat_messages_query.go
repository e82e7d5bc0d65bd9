package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetChatMessagesQueryIsNotConstructed = errors.New(
	"GetChatMessagesQuery must be created via NewGetChatMessagesQuery constructor",
)

// GetChatMessagesQuery reads the chat of a load. With a since cursor only messages
// created strictly after it are returned, which lets clients poll without refetching.
type GetChatMessagesQuery struct {
	loadID kernel.UUID
	actor  identity.Identity
	since  *time.Time

	guard guard.ConstructorGuard
}

// NewGetChatMessagesQuery builds the query; since may be nil for the full history.
func NewGetChatMessagesQuery(loadID kernel.UUID, actor identity.Identity, since *time.Time) (GetChatMessagesQuery, error) {
	if err := errors.Join(loadID.Validate(), validateActor(actor)); err != nil {
		return GetChatMessagesQuery{}, err
	}

	q := GetChatMessagesQuery{loadID: loadID, actor: actor, guard: guard.NewConstructorGuard()}
	if since != nil {
		s := since.UTC()
		q.since = &s
	}
	return q, nil
}

func (q GetChatMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetChatMessagesQueryIsNotConstructed)
}

func (q GetChatMessagesQuery) LoadID() kernel.UUID      { return q.loadID }
func (q GetChatMessagesQuery) Actor() identity.Identity { return q.actor }

// Since returns the cursor and whether one was given.
func (q GetChatMessagesQuery) Since() (time.Time, bool) {
	if q.since == nil {
		return time.Time{}, false
	}
	return *q.since, true
}

type GetChatMessagesQueryResponse struct {
	ID         kernel.UUID
	SenderID   kernel.UUID
	SenderRole identity.Role
	Text       string
	CreatedAt  time.Time
}
