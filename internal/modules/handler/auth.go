package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type RegisterReq struct {
	Username             string `json:"username" binding:"required,min=1,max=150"`
	Email                string `json:"email" binding:"required,email"`
	FirstName            string `json:"first_name" binding:"max=150"`
	LastName             string `json:"last_name" binding:"max=150"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

type AuthOutput struct {
	User  serializer.UserView `json:"user"`
	Token string              `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	req := RegisterReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Username:             req.Username,
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		abortServiceErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: AuthOutput{
		User:  serializer.NewUserView(user),
		Token: token,
	}})
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenOutput struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: TokenOutput{Token: token}})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user := currentUser(c)
	if err := h.svc.Logout(c.Request.Context(), user.ID); err != nil {
		abortServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "logged out"})
}
