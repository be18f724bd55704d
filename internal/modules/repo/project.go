package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	// CreateWithOwner inserts the project and its creator's membership row in
	// one transaction; a membership failure rolls the project back.
	CreateWithOwner(ctx context.Context, p *model.Project) error
	ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Project, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	Members(ctx context.Context, projectID uuid.UUID) ([]model.User, error)
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

// memberOf is the membership sub-select used by every project-scoped read
// predicate. Using IN (subquery) keeps the OR a single pass with no
// duplicate rows from joins.
const memberOf = "SELECT project_id FROM project_members WHERE user_id = ?"

func (r *projectRepo) CreateWithOwner(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Exec(
			"INSERT INTO project_members (project_id, user_id) VALUES (?, ?)",
			p.ID, p.CreatedByID,
		).Error
	})
}

func (r *projectRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("created_by_id = ? OR id IN ("+memberOf+")", userID, userID).
		Order("created_at ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) GetVisible(ctx context.Context, id, userID uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		Where("created_by_id = ? OR id IN ("+memberOf+")", userID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListByCreator(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("created_by_id = ?", userID).
		Order("created_at ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Update(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Child rows also carry ON DELETE CASCADE constraints; the explicit
	// transaction keeps the behavior identical on stores migrated without
	// them.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&model.Task{}, &model.Resource{}, &model.Message{}, &model.Schedule{},
		} {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM project_members WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, "id = ?", id).Error
	})
}

func (r *projectRepo) Members(ctx context.Context, projectID uuid.UUID) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Joins("JOIN project_members pm ON pm.user_id = users.id").
		Where("pm.project_id = ?", projectID).
		Order("users.created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *projectRepo) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("project_members").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *projectRepo) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO project_members (project_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		projectID, userID,
	).Error
}

func (r *projectRepo) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM project_members WHERE project_id = ? AND user_id = ?",
		projectID, userID,
	).Error
}
