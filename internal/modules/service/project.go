package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, viewer *model.User, in CreateProjectInput) (*model.Project, error)
	List(ctx context.Context, viewer *model.User) ([]model.Project, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error
	Members(ctx context.Context, viewer *model.User, id uuid.UUID) ([]model.User, error)
	AddMember(ctx context.Context, viewer *model.User, id, userID uuid.UUID) error
	RemoveMember(ctx context.Context, viewer *model.User, id, userID uuid.UUID) error
}

type CreateProjectInput struct {
	Title       string
	Description string
	IsPublic    bool
}

type UpdateProjectInput struct {
	Title       string
	Description string
	IsPublic    bool
}

type projectService struct {
	projects repo.ProjectRepo
	users    repo.UserRepo
	log      *zap.Logger
}

func NewProjectService(projects repo.ProjectRepo, users repo.UserRepo, log *zap.Logger) ProjectService {
	return &projectService{projects: projects, users: users, log: log}
}

func (s *projectService) Create(ctx context.Context, viewer *model.User, in CreateProjectInput) (*model.Project, error) {
	project := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		IsPublic:    in.IsPublic,
		CreatedByID: viewer.ID,
	}
	// The creator joins the member list in the same transaction.
	if err := s.projects.CreateWithOwner(ctx, project); err != nil {
		return nil, err
	}
	project.Members = []model.User{*viewer}
	s.log.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("created_by", viewer.ID.String()))
	return project, nil
}

func (s *projectService) List(ctx context.Context, viewer *model.User) ([]model.Project, error) {
	return s.projects.ListVisible(ctx, viewer.ID)
}

func (s *projectService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.GetVisible(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	project, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if project.CreatedByID != viewer.ID {
		return nil, ErrForbidden
	}
	project.Title = in.Title
	project.Description = in.Description
	project.IsPublic = in.IsPublic
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	project, err := s.Get(ctx, viewer, id)
	if err != nil {
		return err
	}
	if project.CreatedByID != viewer.ID {
		return ErrForbidden
	}
	return s.projects.Delete(ctx, id)
}

func (s *projectService) Members(ctx context.Context, viewer *model.User, id uuid.UUID) ([]model.User, error) {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return nil, err
	}
	return s.projects.Members(ctx, id)
}

func (s *projectService) AddMember(ctx context.Context, viewer *model.User, id, userID uuid.UUID) error {
	project, err := s.Get(ctx, viewer, id)
	if err != nil {
		return err
	}
	if project.CreatedByID != viewer.ID {
		return ErrForbidden
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.projects.AddMember(ctx, id, userID)
}

func (s *projectService) RemoveMember(ctx context.Context, viewer *model.User, id, userID uuid.UUID) error {
	project, err := s.Get(ctx, viewer, id)
	if err != nil {
		return err
	}
	if project.CreatedByID != viewer.ID {
		return ErrForbidden
	}
	if userID == project.CreatedByID {
		return NewValidationError("user", "the project creator cannot be removed")
	}
	return s.projects.RemoveMember(ctx, id, userID)
}
