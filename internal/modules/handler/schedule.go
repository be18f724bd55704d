package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type ScheduleHandler struct {
	svc service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: s}
}

type CreateScheduleReq struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=200"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	IsTeamEvent *bool     `json:"is_team_event"`
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	req := CreateScheduleReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	schedule, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateScheduleInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsTeamEvent: req.IsTeamEvent,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.NewScheduleView(schedule)})
}

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	schedules, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewScheduleViews(schedules)})
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := pathID(c, "schedule_id")
	if !ok {
		return
	}
	schedule, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewScheduleView(schedule)})
}

type UpdateScheduleReq struct {
	Title       string    `json:"title" binding:"required,max=200"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	IsTeamEvent *bool     `json:"is_team_event" binding:"required"`
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := pathID(c, "schedule_id")
	if !ok {
		return
	}
	req := UpdateScheduleReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	schedule, err := h.svc.Update(c.Request.Context(), currentUser(c), id, service.UpdateScheduleInput{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsTeamEvent: *req.IsTeamEvent,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewScheduleView(schedule)})
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "schedule_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
