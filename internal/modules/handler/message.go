package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type MessageHandler struct {
	svc service.MessageService
}

func NewMessageHandler(s service.MessageService) *MessageHandler {
	return &MessageHandler{svc: s}
}

type CreateMessageReq struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	Content   string    `json:"content" binding:"required"`
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	req := CreateMessageReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	message, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateMessageInput{
		ProjectID: req.ProjectID,
		Content:   req.Content,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.NewMessageView(message)})
}

func (h *MessageHandler) GetMessages(c *gin.Context) {
	messages, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewMessageViews(messages)})
}

func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}
	message, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewMessageView(message)})
}

type UpdateMessageReq struct {
	Content string `json:"content" binding:"required"`
}

func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}
	req := UpdateMessageReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	message, err := h.svc.Update(c.Request.Context(), currentUser(c), id, req.Content)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewMessageView(message)})
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
