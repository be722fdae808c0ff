package handlers

import (
	"database/sql"
	"errors"

	applog "github.com/claretax/apartmart/internal/log"
	"github.com/claretax/apartmart/internal/services"

	"github.com/gofiber/fiber/v2"
)

func ok(c *fiber.Ctx, body fiber.Map) error {
	body["success"] = true
	return c.JSON(body)
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// failErr maps service errors onto the HTTP taxonomy. notFoundMsg names the
// entity ("Order not found"); anything unrecognized is logged server-side and
// downgraded to a generic 500.
func failErr(c *fiber.Ctx, action string, err error, notFoundMsg string) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, ve.Msg)
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountInactive):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "Unauthorized")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return fail(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrDuplicateEmail):
		return fail(c, fiber.StatusConflict, err.Error())
	}
	applog.Error(c, action, err, nil)
	return fail(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
}
