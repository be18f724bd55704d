package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/unicollab-io/unicollab/internal/middleware"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

// asUser injects an authenticated user the way the auth middleware does.
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, user)
		c.Next()
	}
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, viewer *model.User, in service.CreateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, viewer, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, viewer *model.User, filter repo.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, viewer, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in service.UpdateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, viewer, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

func (m *MockTaskService) Assign(ctx context.Context, viewer *model.User, id, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, viewer, id, userID)
	return args.String(0), args.Error(1)
}

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, viewer *model.User, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, viewer, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, viewer *model.User) ([]model.Project, error) {
	args := m.Called(ctx, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, viewer *model.User, id uuid.UUID, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, viewer, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, viewer *model.User, id uuid.UUID) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

func (m *MockProjectService) Members(ctx context.Context, viewer *model.User, id uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockProjectService) AddMember(ctx context.Context, viewer *model.User, id, userID uuid.UUID) error {
	args := m.Called(ctx, viewer, id, userID)
	return args.Error(0)
}

func (m *MockProjectService) RemoveMember(ctx context.Context, viewer *model.User, id, userID uuid.UUID) error {
	args := m.Called(ctx, viewer, id, userID)
	return args.Error(0)
}
