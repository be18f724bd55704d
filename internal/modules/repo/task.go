package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"gorm.io/gorm"
)

// TaskFilter narrows a listing within the caller's read scope. Empty fields
// are ignored.
type TaskFilter struct {
	Status   string
	Priority string
}

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	ListVisible(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]model.Task, error)
	GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Task, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) scopeVisible(q *gorm.DB, userID uuid.UUID) *gorm.DB {
	return q.Where("assigned_to_id = ? OR is_public = ?", userID, true)
}

func (r *taskRepo) ListVisible(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]model.Task, error) {
	q := r.scopeVisible(r.db.WithContext(ctx), userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	var tasks []model.Task
	return tasks, q.Order("created_at ASC").Find(&tasks).Error
}

func (r *taskRepo) GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	var t model.Task
	err := r.scopeVisible(r.db.WithContext(ctx).Where("id = ?", id), userID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("assigned_to_id = ?", userID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepo) Update(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *taskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}
