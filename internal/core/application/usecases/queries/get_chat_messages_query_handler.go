package queries

import (
	"context"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetChatMessagesQueryHandler reads chat messages in creation order after the chat
// gate admits the caller.
type GetChatMessagesQueryHandler struct {
	db    *gorm.DB
	loads LoadReader
	gate  services.ChatGate
}

func NewGetChatMessagesQueryHandler(db *gorm.DB, loads LoadReader) GetChatMessagesQueryHandler {
	return GetChatMessagesQueryHandler{db: db, loads: loads, gate: services.NewChatGate()}
}

func (h GetChatMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetChatMessagesQuery,
) ([]GetChatMessagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	l, err := h.loads.Get(ctx, query.LoadID())
	if err != nil {
		return nil, err
	}
	if err = h.gate.Authorize(l, query.Actor()); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("chat_messages").
		Select("id, sender_id, sender_role, text, created_at").
		Where("load_id = ?", l.ID().Bytes())
	if since, ok := query.Since(); ok {
		tx = tx.Where("created_at > ?", since)
	}

	rows, err := tx.Order("created_at ASC, id ASC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]GetChatMessagesQueryResponse, 0)
	for rows.Next() {
		var (
			resp         GetChatMessagesQueryResponse
			id, senderID uuid.UUID
			role         string
		)
		if err = rows.Scan(&id, &senderID, &role, &resp.Text, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.SenderID, err = kernel.UUIDFrom(senderID); err != nil {
			return nil, err
		}
		resp.SenderRole = identity.Role(role)
		if err = resp.SenderRole.Validate(); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()
		messages = append(messages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
