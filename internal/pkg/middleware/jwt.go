package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nebengjek-nav/internal/pkg/jwt"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/requestcontext"
	"github.com/piresc/nebengjek-nav/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)
			SetUserID(c, claims.UserID)
			c.SetRequest(c.Request().WithContext(
				requestcontext.WithDriverID(c.Request().Context(), claims.UserID)))

			return next(c)
		}
	}
}

// UserID returns the authenticated user set by JWTAuthMiddleware
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}
