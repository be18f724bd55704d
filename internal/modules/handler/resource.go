package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type ResourceHandler struct {
	svc service.ResourceService
}

func NewResourceHandler(s service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: s}
}

type CreateResourceReq struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=200"`
	Filename    string    `json:"filename" binding:"required"`
	ContentType string    `json:"content_type"`
	IsPublic    *bool     `json:"is_public"`
}

type CreateResourceOutput struct {
	Resource  serializer.ResourceView `json:"resource"`
	UploadURL string                  `json:"upload_url"`
}

// CreateResource registers the file row and hands back a presigned PUT URL;
// the client uploads the bytes to the bucket directly.
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	req := CreateResourceReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	out, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateResourceInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		IsPublic:    isPublic,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: CreateResourceOutput{
		Resource:  serializer.NewResourceView(out.Resource, ""),
		UploadURL: out.UploadURL,
	}})
}

func (h *ResourceHandler) GetResources(c *gin.Context) {
	outs, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	views := make([]serializer.ResourceView, 0, len(outs))
	for _, out := range outs {
		views = append(views, serializer.NewResourceView(out.Resource, out.DownloadURL))
	}
	c.JSON(http.StatusOK, serializer.Response{Data: views})
}

func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, ok := pathID(c, "resource_id")
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewResourceView(out.Resource, out.DownloadURL)})
}

type UpdateResourceReq struct {
	Title    string `json:"title" binding:"required,max=200"`
	IsPublic *bool  `json:"is_public" binding:"required"`
}

func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	id, ok := pathID(c, "resource_id")
	if !ok {
		return
	}
	req := UpdateResourceReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	resource, err := h.svc.Update(c.Request.Context(), currentUser(c), id, service.UpdateResourceInput{
		Title:    req.Title,
		IsPublic: *req.IsPublic,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewResourceView(resource, "")})
}

func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, ok := pathID(c, "resource_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
