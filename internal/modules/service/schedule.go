package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"gorm.io/gorm"
)

type ScheduleService interface {
	Create(ctx context.Context, viewer *model.User, in CreateScheduleInput) (*model.Schedule, error)
	List(ctx context.Context, viewer *model.User) ([]model.Schedule, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Schedule, error)
	Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateScheduleInput) (*model.Schedule, error)
	Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error
}

type CreateScheduleInput struct {
	ProjectID   uuid.UUID
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	IsTeamEvent *bool
}

type UpdateScheduleInput struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	IsTeamEvent bool
}

type scheduleService struct {
	schedules repo.ScheduleRepo
}

func NewScheduleService(schedules repo.ScheduleRepo) ScheduleService {
	return &scheduleService{schedules: schedules}
}

// checkWindow rejects an event only when its times are reversed AND it
// already ended. A reversed window entirely in the future passes.
// TODO: tighten to reject every start_time > end_time once clients stop
// depending on the lenient behavior.
func checkWindow(start, end time.Time) error {
	if start.After(end) && end.Before(time.Now()) {
		return NewValidationError("end_time", "event window is invalid")
	}
	return nil
}

func (s *scheduleService) Create(ctx context.Context, viewer *model.User, in CreateScheduleInput) (*model.Schedule, error) {
	if err := checkWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		Title:         in.Title,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		IsTeamEvent:   true,
		ProjectID:     in.ProjectID,
		ScheduledByID: viewer.ID,
	}
	if in.IsTeamEvent != nil {
		schedule.IsTeamEvent = *in.IsTeamEvent
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) List(ctx context.Context, viewer *model.User) ([]model.Schedule, error) {
	return s.schedules.ListByUser(ctx, viewer.ID)
}

func (s *scheduleService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Schedule, error) {
	schedule, err := s.schedules.GetByUser(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateScheduleInput) (*model.Schedule, error) {
	schedule, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := checkWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	schedule.Title = in.Title
	schedule.StartTime = in.StartTime
	schedule.EndTime = in.EndTime
	schedule.IsTeamEvent = in.IsTeamEvent
	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return err
	}
	return s.schedules.Delete(ctx, id)
}
