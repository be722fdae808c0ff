package handlers

import (
	"github.com/claretax/apartmart/internal/domain"
	applog "github.com/claretax/apartmart/internal/log"
	"github.com/claretax/apartmart/internal/services"
	"github.com/claretax/apartmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *services.UserService
}

// GET /users — admin only.
func (h *UserHandler) List(c *fiber.Ctx) error {
	us, err := h.Users.List()
	if err != nil {
		return failErr(c, "users.list", err, "")
	}
	out := make([]domain.PublicUser, 0, len(us))
	for i := range us {
		out = append(out, us[i].Public())
	}
	return ok(c, fiber.Map{"users": out})
}

// POST /users — admin only.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req services.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	u, err := h.Users.Create(req)
	if err != nil {
		return failErr(c, "users.create", err, "")
	}
	applog.Audit(c, "users.create", map[string]any{"user_id": u.ID, "role": string(u.Role)})
	return ok(c, fiber.Map{"user": u.Public()})
}

// GET /users/:id — admin or self.
func (h *UserHandler) Detail(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "User not found")
	}
	u, err := h.Users.Get(currentUser(c), id)
	if err != nil {
		return failErr(c, "users.get", err, "User not found")
	}
	return ok(c, fiber.Map{"user": u.Public()})
}

// PUT /users/:id — admin any field; self limited to password and apartment.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "User not found")
	}
	var req services.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	u, err := h.Users.Update(currentUser(c), id, req)
	if err != nil {
		return failErr(c, "users.update", err, "User not found")
	}
	applog.Audit(c, "users.update", map[string]any{"user_id": u.ID})
	return ok(c, fiber.Map{"user": u.Public()})
}

// DELETE /users/:id — admin only; self-delete refused.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "User not found")
	}
	u, err := h.Users.Delete(currentUser(c), id)
	if err != nil {
		return failErr(c, "users.delete", err, "User not found")
	}
	applog.Audit(c, "users.delete", map[string]any{"user_id": u.ID})
	return ok(c, fiber.Map{"user": u.Public()})
}
