package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type UserService interface {
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.User, error)
	List(ctx context.Context, viewer *model.User) ([]model.User, error)
	Me(ctx context.Context, viewer *model.User) (*MeOutput, error)
}

// MeOutput aggregates everything the viewer owns or is assigned to.
type MeOutput struct {
	User          *model.User
	Projects      []model.Project
	Tasks         []model.Task
	Notifications []model.Notification
	Schedules     []model.Schedule
}

type userService struct {
	users         repo.UserRepo
	projects      repo.ProjectRepo
	tasks         repo.TaskRepo
	notifications repo.NotificationRepo
	schedules     repo.ScheduleRepo
}

func NewUserService(
	users repo.UserRepo,
	projects repo.ProjectRepo,
	tasks repo.TaskRepo,
	notifications repo.NotificationRepo,
	schedules repo.ScheduleRepo,
) UserService {
	return &userService{
		users:         users,
		projects:      projects,
		tasks:         tasks,
		notifications: notifications,
		schedules:     schedules,
	}
}

func (s *userService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.User, error) {
	if !viewer.IsStaff && viewer.ID != id {
		return nil, ErrNotFound
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, viewer *model.User) ([]model.User, error) {
	if viewer.IsStaff {
		return s.users.ListAll(ctx)
	}
	return []model.User{*viewer}, nil
}

func (s *userService) Me(ctx context.Context, viewer *model.User) (*MeOutput, error) {
	out := &MeOutput{User: viewer}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := s.projects.ListByCreator(gctx, viewer.ID)
		out.Projects = projects
		return err
	})
	g.Go(func() error {
		tasks, err := s.tasks.ListByAssignee(gctx, viewer.ID)
		out.Tasks = tasks
		return err
	})
	g.Go(func() error {
		notifications, err := s.notifications.ListByUser(gctx, viewer.ID, "")
		out.Notifications = notifications
		return err
	})
	g.Go(func() error {
		schedules, err := s.schedules.ListByUser(gctx, viewer.ID)
		out.Schedules = schedules
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
