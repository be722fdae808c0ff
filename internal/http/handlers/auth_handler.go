package handlers

import (
	"time"

	applog "github.com/claretax/apartmart/internal/log"
	"github.com/claretax/apartmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth         *services.AuthService
	CookieSecure bool
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.CookieSecure,
		Expires:  time.Now().Add(services.TokenTTL),
	})
}

// POST /auth
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Username and password are required")
	}
	if req.Username == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Username and password are required")
	}

	u, token, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
		return failErr(c, "auth.login", err, "")
	}

	h.setAuthCookie(c, token)
	applog.Audit(c, "auth.login.success", map[string]any{"username": req.Username})
	return ok(c, fiber.Map{"user": u.Public()})
}

// GET /auth
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return ok(c, fiber.Map{"authenticated": false})
	}
	return ok(c, fiber.Map{"authenticated": true, "user": u.Public()})
}

// DELETE /auth — idempotent, always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.CookieSecure,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return ok(c, fiber.Map{})
}

// POST /auth/signup — resident self-registration; logs the new account in.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req services.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "All fields are required.")
	}

	u, err := h.Auth.Signup(req)
	if err != nil {
		applog.Security(c, "auth.signup.fail", map[string]any{"username": req.Username})
		return failErr(c, "auth.signup", err, "")
	}

	token, err := h.Auth.GenerateToken(u.ID)
	if err != nil {
		return failErr(c, "auth.signup.token", err, "")
	}
	h.setAuthCookie(c, token)

	applog.Audit(c, "auth.signup.success", map[string]any{"username": u.Username})
	return ok(c, fiber.Map{"user": u.Public()})
}
