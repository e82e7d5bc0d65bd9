package ports

import (
	"context"

	"freight/internal/core/domain/model/chat"
)

// ChatRepository appends chat messages. There is no update or delete.
type ChatRepository interface {
	Append(ctx context.Context, m *chat.Message) error
}
