package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/infra/blob"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ResourceService interface {
	Create(ctx context.Context, viewer *model.User, in CreateResourceInput) (*ResourceOutput, error)
	List(ctx context.Context, viewer *model.User) ([]ResourceOutput, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*ResourceOutput, error)
	Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateResourceInput) (*model.Resource, error)
	Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error
}

type CreateResourceInput struct {
	ProjectID   uuid.UUID
	Title       string
	Filename    string
	ContentType string
	IsPublic    bool
}

type UpdateResourceInput struct {
	Title    string
	IsPublic bool
}

// ResourceOutput pairs a resource row with short-lived transfer URLs.
// The server never proxies file bytes itself.
type ResourceOutput struct {
	Resource    *model.Resource
	UploadURL   string
	DownloadURL string
}

type resourceService struct {
	resources repo.ResourceRepo
	presigner blob.Presigner
	log       *zap.Logger
}

func NewResourceService(resources repo.ResourceRepo, presigner blob.Presigner, log *zap.Logger) ResourceService {
	return &resourceService{resources: resources, presigner: presigner, log: log}
}

func (s *resourceService) Create(ctx context.Context, viewer *model.User, in CreateResourceInput) (*ResourceOutput, error) {
	filename := path.Base(in.Filename)
	if filename == "" || filename == "." || filename == "/" {
		return nil, NewValidationError("filename", "a file name is required")
	}

	key := fmt.Sprintf("resources/%s/%s/%s", in.ProjectID, uuid.NewString(), filename)
	uploadURL, err := s.presigner.PresignPut(ctx, key, in.ContentType)
	if err != nil {
		return nil, err
	}

	resource := &model.Resource{
		Title:        in.Title,
		FileURL:      key,
		IsPublic:     in.IsPublic,
		ProjectID:    in.ProjectID,
		UploadedByID: viewer.ID,
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, err
	}

	s.log.Info("resource registered",
		zap.String("resource_id", resource.ID.String()),
		zap.String("key", key))
	return &ResourceOutput{Resource: resource, UploadURL: uploadURL}, nil
}

func (s *resourceService) List(ctx context.Context, viewer *model.User) ([]ResourceOutput, error) {
	resources, err := s.resources.ListVisible(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ResourceOutput, 0, len(resources))
	for i := range resources {
		url, err := s.presigner.PresignGet(ctx, resources[i].FileURL)
		if err != nil {
			return nil, err
		}
		out = append(out, ResourceOutput{Resource: &resources[i], DownloadURL: url})
	}
	return out, nil
}

func (s *resourceService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*ResourceOutput, error) {
	resource, err := s.getVisible(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	url, err := s.presigner.PresignGet(ctx, resource.FileURL)
	if err != nil {
		return nil, err
	}
	return &ResourceOutput{Resource: resource, DownloadURL: url}, nil
}

func (s *resourceService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in UpdateResourceInput) (*model.Resource, error) {
	resource, err := s.getVisible(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if resource.UploadedByID != viewer.ID {
		return nil, ErrForbidden
	}
	// The stored object key and upload time never change.
	resource.Title = in.Title
	resource.IsPublic = in.IsPublic
	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	resource, err := s.getVisible(ctx, viewer, id)
	if err != nil {
		return err
	}
	if resource.UploadedByID != viewer.ID {
		return ErrForbidden
	}
	return s.resources.Delete(ctx, id)
}

func (s *resourceService) getVisible(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Resource, error) {
	resource, err := s.resources.GetVisible(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return resource, nil
}
