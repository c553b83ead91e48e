package app

import (
	"context"
	"errors"
	"net/http"

	"am-hris/internal/bootstrap"
	"am-hris/internal/config"
	"am-hris/internal/middleware"
	"am-hris/internal/shared/apperror"
	"am-hris/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RunAPI connects infrastructure, wires every module under /api/v1 and serves
// until the process is signalled.
func RunAPI(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	log := logger.Named("app.api")

	shutdownTracing := bootstrap.SetupTracing(ctx, cfg.Otel, log)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	gormDB, err := connection.ConnectGORMWithRetry(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := connection.RunMigrations(sqlDB, log); err != nil {
			return err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer rdb.Close()

	apperror.Init()
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.ContextLogger(logger))
	router.GET("/healthz", func(c *gin.Context) {
		dbErr := sqlDB.PingContext(c.Request.Context())
		redisErr := rdb.Ping(c.Request.Context()).Err()
		if err := errors.Join(dbErr, redisErr); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	calendarLoc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}

	if err := registerModules(router, modules{
		db:          gormDB,
		rdb:         rdb,
		cfg:         cfg,
		calendarLoc: calendarLoc,
		logger:      logger,
	}); err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(router, cfg.Server)
	return bootstrap.StartHTTPServer(server, cfg.Server, log)
}
