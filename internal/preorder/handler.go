package preorder

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JuelHossain/import-goods-sub000/internal/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/preorders", h.getMyPreOrders)
	app.Post("/api/v1/preorders", h.createPreOrder)
	app.Get("/api/v1/preorder/:id", h.getPreOrder)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App, guard fiber.Handler) {
	app.Get("/api/v1/admin/preorders", guard, h.listPreOrders)
	app.Put("/api/v1/admin/preorder/:id/status", guard, h.updateStatus)
	app.Delete("/api/v1/admin/preorder/:id", guard, h.deletePreOrder)
}

type preOrderResponse struct {
	PreOrder
	AmountDisplay string `json:"amountDisplay"`
}

func present(p PreOrder) preOrderResponse {
	return preOrderResponse{PreOrder: p, AmountDisplay: FormatAmount(p.Amount)}
}

func presentAll(preOrders []PreOrder) []preOrderResponse {
	out := make([]preOrderResponse, 0, len(preOrders))
	for _, p := range preOrders {
		out = append(out, present(p))
	}
	return out
}

func (h *Handler) getMyPreOrders(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(presentAll(h.service.ListByCustomer(c.Context(), userID)))
}

func (h *Handler) getPreOrder(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	p := h.service.GetByID(c.Context(), c.Params("id"))
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "pre-order not found"})
	}
	if p.CustomerID != userID && auth.RoleFromCtx(c) != auth.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}
	return c.JSON(present(*p))
}

type createPreOrderRequest struct {
	Customer            string  `json:"customer"`
	Items               []Item  `json:"items"`
	ShippingAddress     string  `json:"shippingAddress"`
	SpecialRequirements *string `json:"specialRequirements"`
}

// createPreOrder files a sourcing request for the authenticated customer.
// New requests always start Pending with an unknown shipping window.
func (h *Handler) createPreOrder(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createPreOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "items cannot be empty"})
	}

	amount := 0.0
	items := make([]Item, 0, len(payload.Items))
	for _, it := range payload.Items {
		if it.ProductName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product name is required"})
		}
		if it.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
		}
		if it.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price must be non-negative"})
		}
		item := NewItem(it.ProductID, it.ProductName, it.Quantity, it.Price)
		amount += item.TotalPrice
		items = append(items, item)
	}

	created := h.service.Create(c.Context(), PreOrder{
		Customer:            payload.Customer,
		CustomerID:          userID,
		Date:                time.Now().UTC().Format("2006-01-02"),
		Amount:              amount,
		EstimatedShipping:   EstimatedShippingTBD,
		Status:              StatusPending,
		Items:               items,
		ShippingAddress:     payload.ShippingAddress,
		SpecialRequirements: payload.SpecialRequirements,
	})
	if created == nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": true, "message": "pre-order was not created"})
	}
	return c.Status(fiber.StatusCreated).JSON(present(*created))
}

func (h *Handler) listPreOrders(c *fiber.Ctx) error {
	return c.JSON(presentAll(h.service.ListByStatus(c.Context(), c.Query("status", "all"))))
}

type updateStatusRequest struct {
	Status            Status  `json:"status"`
	EstimatedShipping *string `json:"estimatedShipping,omitempty"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !payload.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}

	patch := Patch{Status: &payload.Status, EstimatedShipping: payload.EstimatedShipping}
	updated := h.service.Update(c.Context(), c.Params("id"), patch)
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "pre-order was not updated"})
	}
	return c.JSON(present(*updated))
}

func (h *Handler) deletePreOrder(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "pre-order not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": true, "message": "pre-order was not deleted"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
