package middleware

import (
	"context"
	"errors"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userLocalKey = "current_user"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Authenticate resolves the bearer token (or the auth cookie) to a user and
// stores it on the request. Requests without a valid token continue as
// anonymous.
func Authenticate(authn Authenticator, cookieName string, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(cookieName)
		}
		if token == "" {
			return c.Next()
		}

		user, err := authn.Authenticate(c.Context(), token)
		if err != nil {
			if !errors.Is(err, services.ErrUnauthenticated) {
				logger.WithError(err).Error("Failed to authenticate request")
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to authenticate request")
			}
			logger.WithField("path", c.Path()).Debug("Ignoring invalid auth token")
			return c.Next()
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
