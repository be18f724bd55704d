package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	project, err := h.svc.Create(c.Request.Context(), currentUser(c), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    isPublic,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.NewProjectView(project)})
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewProjectViews(projects)})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	project, err := h.svc.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewProjectView(project)})
}

type UpdateProjectReq struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public" binding:"required"`
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := UpdateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), currentUser(c), id, service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    *req.IsPublic,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewProjectView(project)})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

func (h *ProjectHandler) GetMembers(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	members, err := h.svc.Members(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewUserViews(members)})
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.AddMember(c.Request.Context(), currentUser(c), id, userID); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "member added"})
}

func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveMember(c.Request.Context(), currentUser(c), id, userID); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "member removed"})
}
