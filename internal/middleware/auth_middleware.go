package middleware

import (
	"errors"
	"strings"

	"github.com/Maspur102/elokalfa/internal/service"
	"github.com/Maspur102/elokalfa/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const actorKey = "actor"

// Authenticator is the part of the auth service the middleware needs.
type Authenticator interface {
	Authenticate(tokenString string) (*service.Actor, error)
}

// RequireAuth validates the session token from the cookie or the Authorization header
// and stores the acting user in the request context.
func RequireAuth(auth Authenticator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, problem := extractToken(c, cookieName)
		if problem != "" {
			return c.Status(401).JSON(fiber.Map{"error": problem})
		}

		actor, err := auth.Authenticate(tokenString)
		switch {
		case errors.Is(err, jwt.ErrInvalidToken), errors.Is(err, jwt.ErrMissingToken):
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, service.ErrUserInactive), errors.Is(err, service.ErrSessionReplaced):
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		case err != nil:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to verify session", "details": err.Error()})
		}

		c.Locals(actorKey, *actor)
		return c.Next()
	}
}

// extractToken prefers "Authorization: Bearer <token>" and falls back to the session cookie.
// The second result is the client-facing problem when no usable token was sent.
func extractToken(c *fiber.Ctx, cookieName string) (string, string) {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", "Invalid authorization format. Use: Bearer <token>"
		}
		return parts[1], ""
	}
	if token := c.Cookies(cookieName); token != "" {
		return token, ""
	}
	return "", "Missing authorization token"
}

// ActorFrom returns the user stored by RequireAuth.
func ActorFrom(c *fiber.Ctx) (service.Actor, bool) {
	actor, ok := c.Locals(actorKey).(service.Actor)
	return actor, ok
}

// RequirePrivilege checks if the authenticated user has the required privilege
func RequirePrivilege(requiredPrivilege string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}
		if actor.HasPrivilege(requiredPrivilege) {
			return c.Next()
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires '" + requiredPrivilege + "' privilege",
		})
	}
}

// RequireAnyPrivilege checks if the user has at least one of the specified privileges
func RequireAnyPrivilege(requiredPrivileges ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		for _, reqPriv := range requiredPrivileges {
			if actor.HasPrivilege(reqPriv) {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(requiredPrivileges, ", ") + " privileges",
		})
	}
}
