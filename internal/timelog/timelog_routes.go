package timelog

import (
	"am-hris/internal/domain"
	"am-hris/internal/middleware"
	"am-hris/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	parser middleware.TokenParser,
	rbacService rbac.Service,
	rdb redis.Cmdable,
	logger *zap.Logger,
) {
	logs := r.Group("/timelogs")
	logs.Use(middleware.AuthMiddleware(parser))
	{
		logs.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionRead),
			handler.History,
		)
		logs.GET("/active",
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionRead),
			handler.GetActive,
		)
		logs.GET("/stats",
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionRead),
			handler.Stats,
		)
		logs.GET("/live",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionManage),
			handler.LiveFeed,
		)
		logs.POST("/clock-in",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionCreate),
			handler.ClockIn,
		)
		logs.POST("/clock-out",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionCreate),
			handler.ClockOut,
		)
		logs.POST("/manual",
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.CreateManualEntry,
		)
		logs.POST("/users/:userId/clock-out",
			middleware.RBACAuthorize(rbacService, domain.ResourceTimeLog, domain.ActionUpdate),
			handler.AdminClockOut,
		)
	}
}
