package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"gorm.io/gorm"
)

type MessageService interface {
	Create(ctx context.Context, viewer *model.User, in CreateMessageInput) (*model.Message, error)
	List(ctx context.Context, viewer *model.User) ([]model.Message, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Message, error)
	Update(ctx context.Context, viewer *model.User, id uuid.UUID, content string) (*model.Message, error)
	Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error
}

type CreateMessageInput struct {
	ProjectID uuid.UUID
	Content   string
}

type messageService struct {
	messages repo.MessageRepo
	projects repo.ProjectRepo
}

func NewMessageService(messages repo.MessageRepo, projects repo.ProjectRepo) MessageService {
	return &messageService{messages: messages, projects: projects}
}

func (s *messageService) Create(ctx context.Context, viewer *model.User, in CreateMessageInput) (*model.Message, error) {
	member, err := s.projects.IsMember(ctx, in.ProjectID, viewer.ID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, NewValidationError("project", "sender must be a member of the project")
	}

	message := &model.Message{
		Content:   in.Content,
		ProjectID: in.ProjectID,
		SenderID:  viewer.ID,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context, viewer *model.User) ([]model.Message, error) {
	return s.messages.ListVisible(ctx, viewer.ID)
}

func (s *messageService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Message, error) {
	message, err := s.messages.GetVisible(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return message, nil
}

func (s *messageService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, content string) (*model.Message, error) {
	message, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if message.SenderID != viewer.ID {
		return nil, ErrForbidden
	}
	message.Content = content
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	message, err := s.Get(ctx, viewer, id)
	if err != nil {
		return err
	}
	if message.SenderID != viewer.ID {
		return ErrForbidden
	}
	return s.messages.Delete(ctx, id)
}
