package handlers

import (
	"github.com/claretax/apartmart/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// WebHandler serves the thin server-rendered shells; the dashboards talk to
// the JSON API from the browser.
type WebHandler struct{}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := currentUser(c); u != nil {
		data["User"] = u.Public()
	}
	return c.Render(tmpl, data)
}

// GET / — role dashboard, or the login page for anonymous visitors.
func (h *WebHandler) Home(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}
	switch u.Role {
	case domain.RoleAdmin:
		return render(c, "admin", nil)
	case domain.RoleAgent:
		return render(c, "agent", nil)
	default:
		return render(c, "resident", nil)
	}
}

// GET /login
func (h *WebHandler) LoginPage(c *fiber.Ctx) error {
	if currentUser(c) != nil {
		return c.Redirect("/")
	}
	return render(c, "login", nil)
}
