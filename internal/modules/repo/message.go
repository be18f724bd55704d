package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"gorm.io/gorm"
)

type MessageRepo interface {
	Create(ctx context.Context, m *model.Message) error
	ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Message, error)
	Update(ctx context.Context, m *model.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepo struct{ db *gorm.DB }

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *model.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) scopeVisible(q *gorm.DB, userID uuid.UUID) *gorm.DB {
	// Visible to the sender and to members of the target project.
	return q.Where("sender_id = ? OR project_id IN ("+memberOf+")", userID, userID)
}

func (r *messageRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.scopeVisible(r.db.WithContext(ctx), userID).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Message, error) {
	var m model.Message
	err := r.scopeVisible(r.db.WithContext(ctx).Where("id = ?", id), userID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) Update(ctx context.Context, m *model.Message) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *messageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Message{}, "id = ?", id).Error
}
