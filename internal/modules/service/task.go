package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskService interface {
	Create(ctx context.Context, viewer *model.User, in CreateTaskInput) (*model.Task, error)
	List(ctx context.Context, viewer *model.User, filter repo.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error
	Assign(ctx context.Context, viewer *model.User, id, userID uuid.UUID) (string, error)
}

type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description string
	Priority    model.TaskPriority
	Status      model.TaskStatus
	DueDate     time.Time
	IsPublic    bool
}

type UpdateTaskInput struct {
	Title       string
	Description string
	Priority    model.TaskPriority
	Status      model.TaskStatus
	DueDate     time.Time
	IsPublic    bool
}

type taskService struct {
	tasks    repo.TaskRepo
	projects repo.ProjectRepo
	users    repo.UserRepo
}

func NewTaskService(tasks repo.TaskRepo, projects repo.ProjectRepo, users repo.UserRepo) TaskService {
	return &taskService{tasks: tasks, projects: projects, users: users}
}

func (s *taskService) Create(ctx context.Context, viewer *model.User, in CreateTaskInput) (*model.Task, error) {
	if dateBeforeToday(in.DueDate) {
		return nil, NewValidationError("due_date", "due date cannot be in the past")
	}

	task := &model.Task{
		Title:        in.Title,
		Description:  in.Description,
		Priority:     in.Priority,
		Status:       in.Status,
		DueDate:      datatypes.Date(in.DueDate),
		IsPublic:     in.IsPublic,
		ProjectID:    in.ProjectID,
		AssignedToID: viewer.ID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, viewer *model.User, filter repo.TaskFilter) ([]model.Task, error) {
	return s.tasks.ListVisible(ctx, viewer.ID, filter)
}

func (s *taskService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.GetVisible(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateTaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkWrite(ctx, viewer, task); err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.Priority = in.Priority
	task.Status = in.Status
	task.DueDate = datatypes.Date(in.DueDate)
	task.IsPublic = in.IsPublic
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	task, err := s.Get(ctx, viewer, id)
	if err != nil {
		return err
	}
	if err := s.checkWrite(ctx, viewer, task); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) Assign(ctx context.Context, viewer *model.User, id, userID uuid.UUID) (string, error) {
	task, err := s.Get(ctx, viewer, id)
	if err != nil {
		return "", err
	}
	if err := s.checkWrite(ctx, viewer, task); err != nil {
		return "", err
	}

	assignee, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	task.AssignedToID = assignee.ID
	if err := s.tasks.Update(ctx, task); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s assigned to %s", task.Title, assignee.Username), nil
}

// checkWrite allows mutation by the current assignee or any member of the
// task's project. Public visibility alone is not enough to write.
func (s *taskService) checkWrite(ctx context.Context, viewer *model.User, task *model.Task) error {
	if task.AssignedToID == viewer.ID {
		return nil
	}
	member, err := s.projects.IsMember(ctx, task.ProjectID, viewer.ID)
	if err != nil {
		return err
	}
	if !member {
		return ErrForbidden
	}
	return nil
}

func dateBeforeToday(t time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
