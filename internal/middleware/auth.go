package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
)

// CurrentUserKey is the gin context key holding the authenticated *model.User.
const CurrentUserKey = "currentUser"

// UserAuth authenticates requests with an opaque bearer token. The token is
// resolved in Redis, the owning user is loaded from the database, and the
// user is set in the context. The user ID is also attached to the current
// span for telemetry filtering.
func UserAuth(tokens repo.TokenRepo, users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx, authSpan := otel.Tracer("middleware").Start(ctx, "user_auth",
			trace.WithAttributes(attribute.String("middleware", "user_auth")))

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		userID, err := tokens.Resolve(ctx, raw)
		if err != nil {
			if errors.Is(err, repo.ErrTokenNotFound) {
				authSpan.SetAttributes(attribute.Bool("authenticated", false))
				authSpan.End()
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			authSpan.RecordError(err)
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "token lookup failed", err))
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Token survived its user; treat as unauthenticated.
				authSpan.SetAttributes(attribute.Bool("authenticated", false))
				authSpan.End()
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			authSpan.RecordError(err)
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		authSpan.SetAttributes(
			attribute.Bool("authenticated", true),
			attribute.String("user_id", user.ID.String()),
		)
		authSpan.End()

		c.Set(CurrentUserKey, user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
