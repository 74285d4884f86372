package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/hailgo/hailcore/internal/pkg/jwt"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// JWTAuthMiddleware resolves the acting user from a Bearer token. The core
// never issues tokens; it only validates the id and role claims.
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

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			roleStr, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			role, err := models.ParseRole(fmt.Sprintf("%v", roleStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: unknown role claim")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

// ActorID extracts the authenticated user id placed by JWTAuthMiddleware
func ActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

// ActorRole extracts the authenticated role placed by JWTAuthMiddleware
func ActorRole(c echo.Context) (models.Role, bool) {
	role, ok := c.Get(ContextRole).(models.Role)
	return role, ok
}
