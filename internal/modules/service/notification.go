package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"gorm.io/gorm"
)

type NotificationService interface {
	Create(ctx context.Context, viewer *model.User, in CreateNotificationInput) (*model.Notification, error)
	List(ctx context.Context, viewer *model.User, typeFilter string) ([]model.Notification, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Notification, error)
	Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateNotificationInput) (*model.Notification, error)
	Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error
}

type CreateNotificationInput struct {
	Content string
	Type    model.NotificationType
	IsRead  *bool
}

type UpdateNotificationInput struct {
	Content string
	Type    model.NotificationType
	IsRead  bool
}

type notificationService struct {
	notifications repo.NotificationRepo
}

func NewNotificationService(notifications repo.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) Create(ctx context.Context, viewer *model.User, in CreateNotificationInput) (*model.Notification, error) {
	notification := &model.Notification{
		Content: in.Content,
		Type:    in.Type,
		IsRead:  true,
		UserID:  viewer.ID,
	}
	if in.IsRead != nil {
		notification.IsRead = *in.IsRead
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) List(ctx context.Context, viewer *model.User, typeFilter string) ([]model.Notification, error) {
	return s.notifications.ListByUser(ctx, viewer.ID, typeFilter)
}

func (s *notificationService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.notifications.GetByUser(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateNotificationInput) (*model.Notification, error) {
	notification, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	notification.Content = in.Content
	notification.Type = in.Type
	notification.IsRead = in.IsRead
	if err := s.notifications.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return err
	}
	return s.notifications.Delete(ctx, id)
}
