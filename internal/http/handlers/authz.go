package handlers

import (
	"github.com/claretax/apartmart/internal/domain"
	applog "github.com/claretax/apartmart/internal/log"
	"github.com/claretax/apartmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthCookie carries the signed token; role and status are never trusted
// from it, the user row is re-fetched on every request.
const AuthCookie = "auth_token"

// AttachUser resolves the cookie token to a user record and stores it in
// Locals("user"). It never rejects; gating is done by RequireAuth/RequireCan.
func AttachUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := c.Cookies(AuthCookie); tok != "" {
			if u, err := auth.UserFromToken(tok); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

// RequireAuth rejects unauthenticated callers with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if currentUser(c) == nil {
			return fail(c, fiber.StatusUnauthorized, "Unauthenticated")
		}
		return c.Next()
	}
}

// RequireCan gates an operation through the role capability table:
// unauthenticated -> 401, authenticated but not permitted -> 403.
func RequireCan(op domain.Op) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if u == nil {
			return fail(c, fiber.StatusUnauthorized, "Unauthenticated")
		}
		if !u.Role.Can(op) {
			applog.Security(c, "access.denied", map[string]any{"op": string(op)})
			return fail(c, fiber.StatusForbidden, "Unauthorized")
		}
		return c.Next()
	}
}
