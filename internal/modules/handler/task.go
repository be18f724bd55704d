package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

const dueDateLayout = "2006-01-02"

type CreateTaskReq struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description"`
	Priority    string    `json:"priority" binding:"required,oneof=low medium high"`
	Status      string    `json:"status" binding:"omitempty,oneof=to_do in_progress done"`
	DueDate     string    `json:"due_date" binding:"required"`
	IsPublic    *bool     `json:"is_public"`
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	req := CreateTaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	due, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("due_date must be YYYY-MM-DD", err))
		return
	}
	status := req.Status
	if status == "" {
		status = "to_do"
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	task, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      status,
		DueDate:     due,
		IsPublic:    isPublic,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.NewTaskView(task)})
}

type GetTasksReq struct {
	Status   string `form:"status" binding:"omitempty,oneof=to_do in_progress done"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high"`
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	req := GetTasksReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	tasks, err := h.svc.List(c.Request.Context(), currentUser(c), repo.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewTaskViews(tasks)})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	task, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewTaskView(task)})
}

type UpdateTaskReq struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high"`
	Status      string `json:"status" binding:"required,oneof=to_do in_progress done"`
	DueDate     string `json:"due_date" binding:"required"`
	IsPublic    *bool  `json:"is_public" binding:"required"`
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	req := UpdateTaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	due, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("due_date must be YYYY-MM-DD", err))
		return
	}

	task, err := h.svc.Update(c.Request.Context(), currentUser(c), id, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     due,
		IsPublic:    *req.IsPublic,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewTaskView(task)})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

type AssignTaskReq struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

func (h *TaskHandler) AssignTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	req := AssignTaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	msg, err := h.svc.Assign(c.Request.Context(), currentUser(c), id, req.UserID)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: msg})
}
