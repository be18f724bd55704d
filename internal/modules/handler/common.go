package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/middleware"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
	"github.com/unicollab-io/unicollab/internal/modules/service"
)

func currentUser(c *gin.Context) *model.User {
	return c.MustGet(middleware.CurrentUserKey).(*model.User)
}

// pathID reads a UUID path parameter. An unparseable id can never name a
// record, so it reads as missing rather than malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return uuid.Nil, false
	}
	return id, true
}

// abortServiceErr maps service errors to transport responses.
func abortServiceErr(c *gin.Context, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(verr.Fields))
		return
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, serializer.ConflictErr(""))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("invalid credentials"))
	case errors.Is(err, service.ErrNoActiveToken):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("no active token"))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}
