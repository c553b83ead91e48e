package payroll

import (
	"am-hris/internal/domain"
	"am-hris/internal/middleware"
	"am-hris/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	parser middleware.TokenParser,
	rbacService rbac.Service,
) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(parser), middleware.RoleMiddleware(domain.RoleAdmin))
	{
		payroll.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead),
			handler.GetReport,
		)
		payroll.GET("/export",
			middleware.RateLimitByUser(1, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead),
			handler.Export,
		)
	}
}
