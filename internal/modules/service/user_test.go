package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/unicollab-io/unicollab/internal/modules/model"
)

func newTestUserService(users *MockUserRepo, projects *MockProjectRepo, tasks *MockTaskRepo,
	notifications *MockNotificationRepo, schedules *MockScheduleRepo) UserService {
	return NewUserService(users, projects, tasks, notifications, schedules)
}

func TestListUsers(t *testing.T) {
	t.Run("staff sees everyone", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := newTestUserService(users, new(MockProjectRepo), new(MockTaskRepo),
			new(MockNotificationRepo), new(MockScheduleRepo))

		all := []model.User{{ID: uuid.New()}, {ID: uuid.New()}}
		users.On("ListAll", mock.Anything).Return(all, nil)

		got, err := svc.List(context.Background(), &model.User{ID: uuid.New(), IsStaff: true})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("regular users see only themselves", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := newTestUserService(users, new(MockProjectRepo), new(MockTaskRepo),
			new(MockNotificationRepo), new(MockScheduleRepo))

		viewer := &model.User{ID: uuid.New(), Username: "alice"}
		got, err := svc.List(context.Background(), viewer)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, viewer.ID, got[0].ID)
		users.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("another user's profile reads as missing", func(t *testing.T) {
		svc := newTestUserService(new(MockUserRepo), new(MockProjectRepo), new(MockTaskRepo),
			new(MockNotificationRepo), new(MockScheduleRepo))

		_, err := svc.Get(context.Background(), &model.User{ID: uuid.New()}, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("self lookup succeeds", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := newTestUserService(users, new(MockProjectRepo), new(MockTaskRepo),
			new(MockNotificationRepo), new(MockScheduleRepo))

		viewer := &model.User{ID: uuid.New()}
		users.On("GetByID", mock.Anything, viewer.ID).Return(viewer, nil)

		got, err := svc.Get(context.Background(), viewer, viewer.ID)
		assert.NoError(t, err)
		assert.Equal(t, viewer.ID, got.ID)
	})
}

func TestMe(t *testing.T) {
	users := new(MockUserRepo)
	projects := new(MockProjectRepo)
	tasks := new(MockTaskRepo)
	notifications := new(MockNotificationRepo)
	schedules := new(MockScheduleRepo)
	svc := newTestUserService(users, projects, tasks, notifications, schedules)

	viewer := &model.User{ID: uuid.New()}
	projects.On("ListByCreator", mock.Anything, viewer.ID).Return([]model.Project{{ID: uuid.New()}}, nil)
	tasks.On("ListByAssignee", mock.Anything, viewer.ID).Return([]model.Task{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	notifications.On("ListByUser", mock.Anything, viewer.ID, "").Return([]model.Notification{}, nil)
	schedules.On("ListByUser", mock.Anything, viewer.ID).Return([]model.Schedule{}, nil)

	out, err := svc.Me(context.Background(), viewer)
	assert.NoError(t, err)
	assert.Equal(t, viewer, out.User)
	assert.Len(t, out.Projects, 1)
	assert.Len(t, out.Tasks, 2)
	assert.Empty(t, out.Notifications)
	assert.Empty(t, out.Schedules)
}
