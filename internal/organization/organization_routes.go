package organization

import (
	"am-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, parser middleware.TokenParser) {
	org := r.Group("/organization")
	org.Use(middleware.AuthMiddleware(parser))
	{
		org.GET("", middleware.RateLimitByUser(2, 10), handler.GetMine)
	}
}
