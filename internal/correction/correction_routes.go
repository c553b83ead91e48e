package correction

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
	corrections := r.Group("/corrections")
	corrections.Use(middleware.AuthMiddleware(parser))
	{
		corrections.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceCorrection, domain.ActionRead),
			handler.GetMine,
		)
		corrections.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceCorrection, domain.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
	}
}
