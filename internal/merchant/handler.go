package merchant

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/merchants", h.getMerchants)
	app.Get("/api/v1/merchant/:slug", h.getMerchant)
}

func (h *Handler) getMerchants(c *fiber.Ctx) error {
	if c.QueryBool("verified") {
		return c.JSON(h.service.ListVerified())
	}
	return c.JSON(h.service.ListByCategory(c.Query("category", "all")))
}

func (h *Handler) getMerchant(c *fiber.Ctx) error {
	m := h.service.GetBySlug(c.Params("slug"))
	if m == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "merchant not found"})
	}
	return c.JSON(m)
}
