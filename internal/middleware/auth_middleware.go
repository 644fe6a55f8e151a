package middleware

import (
	"strings"

	"rangeiq/internal/domain"
	"rangeiq/internal/logger"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
)

// UserAuth guards user-scoped routes. With auth disabled every request passes
// anonymously. With auth enabled a valid bearer token is required and its
// user id is stored for EnsureOwner.
func UserAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authService.Enabled() {
			return c.Next()
		}

		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Missing user token")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("UserAuth: JWT validation failed", zap.Error(err))
			return domain.NewUnauthorizedError("Invalid or expired token")
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// AuthenticatedUserID returns the user id set by UserAuth, or "" when auth is disabled.
func AuthenticatedUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}

// EnsureOwner rejects an authenticated caller acting on another user's data.
// It has nothing to check when auth is disabled.
func EnsureOwner(c *fiber.Ctx, userID string) error {
	if authed := AuthenticatedUserID(c); authed != "" && authed != userID {
		return domain.NewForbiddenError("Token does not belong to this user").WithContext("userId", userID)
	}
	return nil
}
