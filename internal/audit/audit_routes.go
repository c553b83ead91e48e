package audit

import (
	"am-hris/internal/domain"
	"am-hris/internal/middleware"
	"am-hris/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, parser middleware.TokenParser, rbacService rbac.Service) {
	logs := r.Group("/audit-logs")
	logs.Use(middleware.AuthMiddleware(parser))
	{
		logs.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceAudit, domain.ActionRead), handler.List)
	}
}
