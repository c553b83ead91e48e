package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(parser))
	{
		leaves.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead),
			handler.GetMine,
		)
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		leaves.POST("/:id/cancel",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionUpdate),
			handler.Cancel,
		)
	}
}
