package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/unicollab-io/unicollab/internal/config"
	"github.com/unicollab-io/unicollab/internal/middleware"
	"github.com/unicollab-io/unicollab/internal/modules/handler"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"github.com/unicollab-io/unicollab/internal/modules/serializer"
)

type RouterDeps struct {
	Config              *config.Config
	Log                 *zap.Logger
	TokenRepo           repo.TokenRepo
	UserRepo            repo.UserRepo
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	TaskHandler         *handler.TaskHandler
	ResourceHandler     *handler.ResourceHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	ScheduleHandler     *handler.ScheduleHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	// Add OpenTelemetry middleware if enabled (using configuration system)
	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(cors.Default())

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.AuthHandler.Register)
			auth.POST("/login", d.AuthHandler.Login)
			auth.POST("/logout", middleware.UserAuth(d.TokenRepo, d.UserRepo), d.AuthHandler.Logout)
		}

		authed := v1.Group("")
		authed.Use(middleware.UserAuth(d.TokenRepo, d.UserRepo))

		users := authed.Group("/users")
		{
			users.GET("", d.UserHandler.GetUsers)
			users.GET("/me", d.UserHandler.GetMe)
			users.GET("/:user_id", d.UserHandler.GetUser)
		}

		projects := authed.Group("/projects")
		{
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("", d.ProjectHandler.GetProjects)
			projects.GET("/:project_id", d.ProjectHandler.GetProject)
			projects.PUT("/:project_id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:project_id", d.ProjectHandler.DeleteProject)

			projects.GET("/:project_id/members", d.ProjectHandler.GetMembers)
			projects.POST("/:project_id/members/:user_id", d.ProjectHandler.AddMember)
			projects.DELETE("/:project_id/members/:user_id", d.ProjectHandler.RemoveMember)
		}

		tasks := authed.Group("/tasks")
		{
			tasks.POST("", d.TaskHandler.CreateTask)
			tasks.GET("", d.TaskHandler.GetTasks)
			tasks.GET("/:task_id", d.TaskHandler.GetTask)
			tasks.PUT("/:task_id", d.TaskHandler.UpdateTask)
			tasks.DELETE("/:task_id", d.TaskHandler.DeleteTask)
			tasks.POST("/:task_id/assign", d.TaskHandler.AssignTask)
		}

		resources := authed.Group("/resources")
		{
			resources.POST("", d.ResourceHandler.CreateResource)
			resources.GET("", d.ResourceHandler.GetResources)
			resources.GET("/:resource_id", d.ResourceHandler.GetResource)
			resources.PUT("/:resource_id", d.ResourceHandler.UpdateResource)
			resources.DELETE("/:resource_id", d.ResourceHandler.DeleteResource)
		}

		messages := authed.Group("/messages")
		{
			messages.POST("", d.MessageHandler.CreateMessage)
			messages.GET("", d.MessageHandler.GetMessages)
			messages.GET("/:message_id", d.MessageHandler.GetMessage)
			messages.PUT("/:message_id", d.MessageHandler.UpdateMessage)
			messages.DELETE("/:message_id", d.MessageHandler.DeleteMessage)
		}

		notifications := authed.Group("/notifications")
		{
			notifications.POST("", d.NotificationHandler.CreateNotification)
			notifications.GET("", d.NotificationHandler.GetNotifications)
			notifications.GET("/:notification_id", d.NotificationHandler.GetNotification)
			notifications.PUT("/:notification_id", d.NotificationHandler.UpdateNotification)
			notifications.DELETE("/:notification_id", d.NotificationHandler.DeleteNotification)
		}

		schedules := authed.Group("/schedules")
		{
			schedules.POST("", d.ScheduleHandler.CreateSchedule)
			schedules.GET("", d.ScheduleHandler.GetSchedules)
			schedules.GET("/:schedule_id", d.ScheduleHandler.GetSchedule)
			schedules.PUT("/:schedule_id", d.ScheduleHandler.UpdateSchedule)
			schedules.DELETE("/:schedule_id", d.ScheduleHandler.DeleteSchedule)
		}
	}

	return r
}
