package middleware

import (
	"errors"
	"strings"

	autherrors "am-hris/internal/auth/errors"
	"am-hris/internal/domain"
	"am-hris/internal/shared/apperror"
	"am-hris/internal/shared/contextutil"
	"am-hris/internal/shared/response"
	"am-hris/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CallerKey is the gin context key holding the authenticated domain.Caller.
const CallerKey = "caller"

type TokenParser interface {
	Parse(raw string) (domain.Caller, error)
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware accepts a bearer token or the access_token cookie.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		caller, err := parser.Parse(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}
		caller.IPAddress = c.ClientIP()
		caller.UserAgent = c.Request.UserAgent()

		c.Set(CallerKey, caller)
		c.Set("user_id", caller.UserID.String())
		c.Set("organization_id", caller.OrganizationID.String())
		c.Set("role", string(caller.Role))

		ctx := contextutil.WithCaller(c.Request.Context(), caller)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, nil).With(zap.String("user_id", caller.UserID.String())))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware admits only callers holding one of allowedRoles.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CurrentCaller(c)
		if !ok {
			abortWith(c, autherrors.ErrForbidden)
			return
		}

		for _, role := range allowedRoles {
			if caller.Role == role {
				c.Next()
				return
			}
		}
		abortWith(c, autherrors.ErrForbidden)
	}
}

func CurrentCaller(c *gin.Context) (domain.Caller, bool) {
	v, exists := c.Get(CallerKey)
	if !exists {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}
