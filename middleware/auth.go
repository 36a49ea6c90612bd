package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"meow-notes/config"
	"meow-notes/models"
)

const requestContextKey = "requestContext"

// Resolver turns a session id into the caller's request context
type Resolver interface {
	Resolve(ctx context.Context, sessionID string) (models.RequestContext, error)
}

// Authenticate resolves the session cookie on every request. Callers without
// a live session continue as anonymous; a stale cookie is cleared.
func Authenticate(resolver Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookieName := config.AppConfig.SessionCookieName
		sessionID := c.Cookies(cookieName)

		rc, err := resolver.Resolve(c.UserContext(), sessionID)
		if err != nil {
			return err
		}
		if sessionID != "" && !rc.Authenticated() {
			c.ClearCookie(cookieName)
		}

		c.Locals(requestContextKey, rc)
		if rc.Authenticated() {
			c.Locals("userID", *rc.UserID)
			c.Locals("username", rc.Username)
		}
		return c.Next()
	}
}

// AuthRequired rejects anonymous callers. It must run after Authenticate.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetRequestContext(c).Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}
		return c.Next()
	}
}

// GetRequestContext returns the resolved caller, or an anonymous context
func GetRequestContext(c *fiber.Ctx) models.RequestContext {
	rc, ok := c.Locals(requestContextKey).(models.RequestContext)
	if !ok {
		return models.RequestContext{}
	}
	return rc
}
