package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/unicollab-io/unicollab/internal/bootstrap"
	"github.com/unicollab-io/unicollab/internal/config"
	"github.com/unicollab-io/unicollab/internal/infra/cache"
	"github.com/unicollab-io/unicollab/internal/infra/db"
	"github.com/unicollab-io/unicollab/internal/modules/handler"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"github.com/unicollab-io/unicollab/internal/router"
	"github.com/unicollab-io/unicollab/internal/telemetry"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := do.Invoke[*zap.Logger](inj)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if _, err := telemetry.SetupTracing(cfg); err != nil {
		logger.Fatal("setup tracing", zap.Error(err))
	}

	rdb := do.MustInvoke[*redis.Client](inj)
	if cfg.Telemetry.Enabled {
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			logger.Warn("redis tracing instrumentation failed", zap.Error(err))
		}
		if err := db.RegisterOpenTelemetryPlugin(do.MustInvoke[*gorm.DB](inj)); err != nil {
			logger.Warn("gorm tracing instrumentation failed", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:              cfg,
		Log:                 logger,
		TokenRepo:           do.MustInvoke[repo.TokenRepo](inj),
		UserRepo:            do.MustInvoke[repo.UserRepo](inj),
		AuthHandler:         do.MustInvoke[*handler.AuthHandler](inj),
		UserHandler:         do.MustInvoke[*handler.UserHandler](inj),
		ProjectHandler:      do.MustInvoke[*handler.ProjectHandler](inj),
		TaskHandler:         do.MustInvoke[*handler.TaskHandler](inj),
		ResourceHandler:     do.MustInvoke[*handler.ResourceHandler](inj),
		MessageHandler:      do.MustInvoke[*handler.MessageHandler](inj),
		NotificationHandler: do.MustInvoke[*handler.NotificationHandler](inj),
		ScheduleHandler:     do.MustInvoke[*handler.ScheduleHandler](inj),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := telemetry.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown", zap.Error(err))
	}
	if err := cache.Close(rdb); err != nil {
		logger.Error("redis close", zap.Error(err))
	}
}
