package handlers

import (
	"github.com/claretax/apartmart/internal/domain"
	applog "github.com/claretax/apartmart/internal/log"
	"github.com/claretax/apartmart/internal/services"
	"github.com/claretax/apartmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func publicOrders(os []domain.Order) []domain.PublicOrder {
	out := make([]domain.PublicOrder, 0, len(os))
	for i := range os {
		out = append(out, os[i].Public())
	}
	return out
}

// GET /orders — role-filtered list.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	os, err := h.Orders.ListFor(currentUser(c))
	if err != nil {
		return failErr(c, "orders.list", err, "")
	}
	return ok(c, fiber.Map{"orders": publicOrders(os)})
}

// POST /orders — residents only; creates status=pending, no agent.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req services.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	o, err := h.Orders.Create(currentUser(c), req)
	if err != nil {
		return failErr(c, "orders.create", err, "")
	}

	// The client total is stored as given; log when it disagrees with the
	// snapshot sum so drift is visible.
	serverSum := o.ItemSum()
	applog.Audit(c, "orders.create", map[string]any{
		"order_id":     o.ID,
		"client_total": o.Total,
		"server_total": serverSum,
		"mismatch":     serverSum != o.Total,
	})
	return ok(c, fiber.Map{"order": o.Public(), "orderId": o.ID})
}

// GET /orders/:id — row-scoped read.
func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "Order not found")
	}
	o, err := h.Orders.Get(currentUser(c), id)
	if err != nil {
		if err == services.ErrForbidden {
			applog.Security(c, "access.denied.order", map[string]any{"order_id": id})
		}
		return failErr(c, "orders.get", err, "Order not found")
	}
	return ok(c, fiber.Map{"order": o.Public()})
}

// PUT /orders/:id — status-only mutation by agent or admin.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "Order not found")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	o, err := h.Orders.UpdateStatus(currentUser(c), id, req.Status)
	if err != nil {
		if err == services.ErrForbidden {
			applog.Security(c, "access.denied.order", map[string]any{"order_id": id, "status": req.Status})
		}
		return failErr(c, "orders.update", err, "Order not found")
	}
	applog.Audit(c, "orders.update", map[string]any{"order_id": o.ID, "status": o.Status, "agent_id": o.AgentID})
	return ok(c, fiber.Map{"order": o.Public()})
}
