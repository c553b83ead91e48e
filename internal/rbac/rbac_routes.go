package rbac

import (
	"am-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, parser middleware.TokenParser) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(parser))
	{
		group.GET("/permissions", handler.MyPermissions)
	}
}
