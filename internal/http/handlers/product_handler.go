package handlers

import (
	"github.com/claretax/apartmart/internal/domain"
	applog "github.com/claretax/apartmart/internal/log"
	"github.com/claretax/apartmart/internal/services"
	"github.com/claretax/apartmart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func publicProducts(ps []domain.Product) []domain.PublicProduct {
	out := make([]domain.PublicProduct, 0, len(ps))
	for i := range ps {
		out = append(out, ps[i].Public())
	}
	return out
}

// GET /products — public; category/search/limit/skip query params.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.List(
		currentUser(c),
		c.Query("category"),
		validate.Search(c.Query("search")),
		validate.Limit(c.Query("limit")),
		validate.Skip(c.Query("skip")),
	)
	if err != nil {
		return failErr(c, "products.list", err, "")
	}
	return ok(c, fiber.Map{"products": publicProducts(ps)})
}

// GET /products/:id — public sees active only; agent/admin unfiltered.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	p, err := h.Catalog.Get(currentUser(c), id)
	if err != nil {
		return failErr(c, "products.get", err, "Product not found")
	}
	return ok(c, fiber.Map{"product": p.Public()})
}

// POST /products — agent/admin.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req services.CreateProductInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p, err := h.Catalog.Create(currentUser(c), req)
	if err != nil {
		return failErr(c, "products.create", err, "")
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return ok(c, fiber.Map{"product": p.Public()})
}

// PUT /products/:id — agent/admin; whitelisted fields only.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	var req services.UpdateProductInput
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p, err := h.Catalog.Update(id, req)
	if err != nil {
		return failErr(c, "products.update", err, "Product not found")
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": p.ID})
	return ok(c, fiber.Map{"product": p.Public()})
}

// DELETE /products/:id — agent/admin; hard delete.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, valid := validate.ID(c.Params("id"))
	if !valid {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	p, err := h.Catalog.Delete(id)
	if err != nil {
		return failErr(c, "products.delete", err, "Product not found")
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": p.ID})
	return ok(c, fiber.Map{"product": p.Public()})
}
