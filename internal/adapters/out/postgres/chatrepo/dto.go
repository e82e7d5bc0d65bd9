// Package chatrepo persists chat messages with GORM.
package chatrepo

import (
	"time"

	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MessageDTO is the row of the chat_messages table.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID     uuid.UUID `gorm:"type:uuid;index"`
	SenderID   uuid.UUID `gorm:"type:uuid"`
	SenderRole string
	Text       string
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
}

func (MessageDTO) TableName() string {
	return "chat_messages"
}

func fromDomain(m *chat.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID().Bytes(),
		LoadID:     m.LoadID().Bytes(),
		SenderID:   m.SenderID().Bytes(),
		SenderRole: string(m.SenderRole()),
		Text:       m.Text(),
		CreatedAt:  m.CreatedAt(),
	}
}

// ToDomain rebuilds a message from its row. Query handlers reuse it.
func ToDomain(dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFrom(dto.LoadID)
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFrom(dto.SenderID)
	if err != nil {
		return nil, err
	}
	return chat.RestoreMessage(id, loadID, senderID, identity.Role(dto.SenderRole), dto.Text, dto.CreatedAt)
}
