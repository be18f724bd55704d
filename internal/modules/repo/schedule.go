package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"gorm.io/gorm"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s *model.Schedule) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error)
	GetByUser(ctx context.Context, id, userID uuid.UUID) (*model.Schedule, error)
	Update(ctx context.Context, s *model.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepo(db *gorm.DB) ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *scheduleRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Where("scheduled_by_id = ?", userID).
		Order("start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) GetByUser(ctx context.Context, id, userID uuid.UUID) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).
		Where("id = ? AND scheduled_by_id = ?", id, userID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) Update(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Schedule{}, "id = ?", id).Error
}
