package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestProjectService(projects *MockProjectRepo, users *MockUserRepo) ProjectService {
	return NewProjectService(projects, users, zap.NewNop())
}

func TestCreateProject(t *testing.T) {
	projects := new(MockProjectRepo)
	users := new(MockUserRepo)
	svc := newTestProjectService(projects, users)

	viewer := &model.User{ID: uuid.New(), Username: "alice"}
	projects.On("CreateWithOwner", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	project, err := svc.Create(context.Background(), viewer, CreateProjectInput{
		Title:       "Launch",
		Description: "Q4 launch planning",
		IsPublic:    false,
	})

	assert.NoError(t, err)
	assert.Equal(t, viewer.ID, project.CreatedByID)
	assert.False(t, project.IsPublic)
	// The creator is always a member of their own project.
	assert.Len(t, project.Members, 1)
	assert.Equal(t, viewer.ID, project.Members[0].ID)
	projects.AssertExpectations(t)
}

func TestGetProject(t *testing.T) {
	projects := new(MockProjectRepo)
	users := new(MockUserRepo)
	svc := newTestProjectService(projects, users)

	viewer := &model.User{ID: uuid.New()}
	id := uuid.New()

	t.Run("out of scope reads as missing", func(t *testing.T) {
		projects.On("GetVisible", mock.Anything, id, viewer.ID).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Get(context.Background(), viewer, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateProject(t *testing.T) {
	viewer := &model.User{ID: uuid.New()}
	other := uuid.New()

	t.Run("member who is not creator cannot update", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		svc := newTestProjectService(projects, users)

		id := uuid.New()
		projects.On("GetVisible", mock.Anything, id, viewer.ID).
			Return(&model.Project{ID: id, CreatedByID: other}, nil)

		_, err := svc.Update(context.Background(), viewer, id, UpdateProjectInput{Title: "new"})
		assert.ErrorIs(t, err, ErrForbidden)
		projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("creator updates title and description", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		svc := newTestProjectService(projects, users)

		id := uuid.New()
		projects.On("GetVisible", mock.Anything, id, viewer.ID).
			Return(&model.Project{ID: id, CreatedByID: viewer.ID, Title: "old"}, nil)
		projects.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		project, err := svc.Update(context.Background(), viewer, id, UpdateProjectInput{
			Title:       "new",
			Description: "updated",
		})
		assert.NoError(t, err)
		assert.Equal(t, "new", project.Title)
	})
}

func TestRemoveMember(t *testing.T) {
	viewer := &model.User{ID: uuid.New()}

	t.Run("creator cannot be removed", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		svc := newTestProjectService(projects, users)

		id := uuid.New()
		projects.On("GetVisible", mock.Anything, id, viewer.ID).
			Return(&model.Project{ID: id, CreatedByID: viewer.ID}, nil)

		err := svc.RemoveMember(context.Background(), viewer, id, viewer.ID)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, verr.Fields, "user")
		projects.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creator removes another member", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		svc := newTestProjectService(projects, users)

		id := uuid.New()
		member := uuid.New()
		projects.On("GetVisible", mock.Anything, id, viewer.ID).
			Return(&model.Project{ID: id, CreatedByID: viewer.ID}, nil)
		projects.On("RemoveMember", mock.Anything, id, member).Return(nil)

		assert.NoError(t, svc.RemoveMember(context.Background(), viewer, id, member))
		projects.AssertExpectations(t)
	})
}

func TestAddMember(t *testing.T) {
	viewer := &model.User{ID: uuid.New()}

	t.Run("only the creator can add members", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		svc := newTestProjectService(projects, users)

		id := uuid.New()
		projects.On("GetVisible", mock.Anything, id, viewer.ID).
			Return(&model.Project{ID: id, CreatedByID: uuid.New()}, nil)

		err := svc.AddMember(context.Background(), viewer, id, uuid.New())
		assert.ErrorIs(t, err, ErrForbidden)
		projects.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user reads as missing", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		svc := newTestProjectService(projects, users)

		id := uuid.New()
		stranger := uuid.New()
		projects.On("GetVisible", mock.Anything, id, viewer.ID).
			Return(&model.Project{ID: id, CreatedByID: viewer.ID}, nil)
		users.On("GetByID", mock.Anything, stranger).Return(nil, gorm.ErrRecordNotFound)

		err := svc.AddMember(context.Background(), viewer, id, stranger)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
