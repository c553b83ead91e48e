package auth

import (
	"am-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, parser middleware.TokenParser) {
	auth := r.Group("/auth")
	{
		auth.POST("/setup", middleware.RateLimitByIP(0.05, 2), handler.Setup)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/onboarding",
			middleware.AuthMiddleware(parser),
			middleware.RateLimitByUser(0.5, 3),
			handler.CompleteOnboarding,
		)
	}
}
