package user

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
	r.GET("/me", middleware.AuthMiddleware(parser), handler.Me)

	staff := r.Group("/staff")
	staff.Use(middleware.AuthMiddleware(parser))
	{
		staff.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionRead),
			handler.GetAll,
		)
		staff.GET("/managers",
			middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionManage),
			handler.GetManagers,
		)
		staff.POST("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		staff.PUT("/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionUpdate),
			handler.Update,
		)
		staff.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionDelete),
			handler.Delete,
		)
		staff.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionResetPassword),
			handler.ResetPassword,
		)
	}
}
