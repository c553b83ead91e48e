package approval

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
	approvals := r.Group("/approvals")
	approvals.Use(
		middleware.AuthMiddleware(parser),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleLeader),
	)
	{
		approvals.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceApproval, domain.ActionRead),
			handler.GetPending,
		)
		approvals.POST("/:kind/:id/approve",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceApproval, domain.ActionApprove),
			middleware.Idempotency(rdb, logger),
			handler.Approve,
		)
		approvals.POST("/:kind/:id/reject",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceApproval, domain.ActionApprove),
			middleware.Idempotency(rdb, logger),
			handler.Reject,
		)
	}
}
