package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: s}
}

type CreateNotificationReq struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=reminder update mention message"`
	IsRead  *bool  `json:"is_read"`
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	req := CreateNotificationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	notification, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateNotificationInput{
		Content: req.Content,
		Type:    req.Type,
		IsRead:  req.IsRead,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.NewNotificationView(notification)})
}

type GetNotificationsReq struct {
	Type string `form:"type" binding:"omitempty,oneof=reminder update mention message"`
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	req := GetNotificationsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	notifications, err := h.svc.List(c.Request.Context(), currentUser(c), req.Type)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewNotificationViews(notifications)})
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	notification, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewNotificationView(notification)})
}

type UpdateNotificationReq struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=reminder update mention message"`
	IsRead  *bool  `json:"is_read" binding:"required"`
}

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	req := UpdateNotificationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	notification, err := h.svc.Update(c.Request.Context(), currentUser(c), id, service.UpdateNotificationInput{
		Content: req.Content,
		Type:    req.Type,
		IsRead:  *req.IsRead,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewNotificationView(notification)})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
