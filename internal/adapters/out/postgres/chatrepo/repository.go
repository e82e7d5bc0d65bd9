package chatrepo

import (
	"context"

	"freight/internal/adapters/out/postgres/pgerr"
	"freight/internal/core/domain/model/chat"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormChatRepository implements ports.ChatRepository using GORM.
type GormChatRepository struct {
	db *gorm.DB
}

func NewGormChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

// Append inserts a message. Existing rows are never touched.
func (r *GormChatRepository) Append(ctx context.Context, m *chat.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewObjectNotFoundErrorWithCause("load", m.LoadID().String(), err)
		}
		return err
	}
	return nil
}
