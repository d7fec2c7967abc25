package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/featured", h.getFeatured)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

// RegisterAdminRoutes attaches the write endpoints behind the given guard
// (JWT + admin role, wired in cmd/app).
func (h *Handler) RegisterAdminRoutes(app *fiber.App, guard fiber.Handler) {
	app.Post("/api/v1/products", guard, h.createProduct)
	app.Put("/api/v1/product/:id<[0-9]+>", guard, h.updateProduct)
	app.Delete("/api/v1/product/:id<[0-9]+>", guard, h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	items := h.service.ListByCategory(c.Context(), queryOr(c, "category", "All"))
	out := Filter(items, FilterOptions{
		Query: c.Query("search"),
		Sort:  SortKey(c.Query("sort")),
	})
	return c.JSON(out)
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	return c.JSON(h.service.ListFeatured(c.Context()))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	p := h.service.GetByID(c.Context(), id)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if p.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created := h.service.Create(c.Context(), *p)
	if created == nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": true, "message": "product was not created"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	patch := new(Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated := h.service.Update(c.Context(), id, *patch)
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "product was not updated"})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "product not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": true, "message": "product was not deleted"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func queryOr(c *fiber.Ctx, key, def string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return def
}
