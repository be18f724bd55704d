package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewUserViews(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewUserView(user)})
}

type MeOutput struct {
	User          serializer.UserView           `json:"user"`
	Projects      []serializer.ProjectView      `json:"projects"`
	Tasks         []serializer.TaskView         `json:"tasks"`
	Notifications []serializer.NotificationView `json:"notifications"`
	Schedules     []serializer.ScheduleView     `json:"schedules"`
}

// GetMe returns the viewer's profile with everything they own or are
// assigned to, gathered in one round trip.
func (h *UserHandler) GetMe(c *gin.Context) {
	out, err := h.svc.Me(c.Request.Context(), currentUser(c))
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: MeOutput{
		User:          serializer.NewUserView(out.User),
		Projects:      serializer.NewProjectViews(out.Projects),
		Tasks:         serializer.NewTaskViews(out.Tasks),
		Notifications: serializer.NewNotificationViews(out.Notifications),
		Schedules:     serializer.NewScheduleViews(out.Schedules),
	}})
}
