package leavebalance

import (
	"am-hris/internal/domain"
	"am-hris/internal/middleware"
	"am-hris/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts balances under the staff resource.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, parser middleware.TokenParser, rbacService rbac.Service) {
	balances := r.Group("/staff/:id/balances")
	balances.Use(middleware.AuthMiddleware(parser))
	{
		balances.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionRead), handler.List)
		balances.PUT("/:type", middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionUpdate), handler.Set)
	}
}
