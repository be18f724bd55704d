package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"gorm.io/gorm"
)

type ResourceRepo interface {
	Create(ctx context.Context, res *model.Resource) error
	ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Resource, error)
	GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Resource, error)
	Update(ctx context.Context, res *model.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceRepo struct{ db *gorm.DB }

func NewResourceRepo(db *gorm.DB) ResourceRepo {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) Create(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resourceRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.WithContext(ctx).
		Where("is_public = ? OR uploaded_by_id = ?", true, userID).
		Order("uploaded_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepo) GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Resource, error) {
	var res model.Resource
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("is_public = ? OR uploaded_by_id = ?", true, userID).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepo) Update(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *resourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Resource{}, "id = ?", id).Error
}
