package order

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
	app.Get("/api/v1/orders", h.getMyOrders)
	app.Get("/api/v1/order/:id", h.getOrder)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App, guard fiber.Handler) {
	app.Get("/api/v1/admin/orders", guard, h.listOrders)
	app.Post("/api/v1/admin/orders", guard, h.createOrder)
	app.Put("/api/v1/admin/order/:id/status", guard, h.updateStatus)
	app.Delete("/api/v1/admin/order/:id", guard, h.deleteOrder)
}

// orderResponse carries the display form of the amount alongside the
// canonical numeric value.
type orderResponse struct {
	Order
	AmountDisplay string `json:"amountDisplay"`
}

func present(o Order) orderResponse {
	return orderResponse{Order: o, AmountDisplay: FormatAmount(o.Amount)}
}

func presentAll(orders []Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, present(o))
	}
	return out
}

// getMyOrders returns the order history of the authenticated user.
func (h *Handler) getMyOrders(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orders := h.service.ListByCustomer(c.Context(), userID)
	return c.JSON(presentAll(orders))
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	o := h.service.GetByID(c.Context(), c.Params("id"))
	if o == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	// customers may only see their own orders
	if o.CustomerID != userID && auth.RoleFromCtx(c) != auth.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}
	return c.JSON(present(*o))
}

// listOrders is the admin view: full history with search/status/sort.
func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders := h.service.ListByStatus(c.Context(), c.Query("status", "all"))
	out := Filter(orders, FilterOptions{
		Query: c.Query("search"),
		Sort:  SortKey(c.Query("sort")),
	})
	return c.JSON(presentAll(out))
}

type createOrderRequest struct {
	Customer        string `json:"customer"`
	CustomerID      int    `json:"customerId"`
	Items           []Item `json:"items"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "items cannot be empty"})
	}

	amount := 0.0
	items := make([]Item, 0, len(payload.Items))
	for _, it := range payload.Items {
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

	created := h.service.Create(c.Context(), Order{
		Customer:        payload.Customer,
		CustomerID:      payload.CustomerID,
		Date:            time.Now().UTC().Format("2006-01-02"),
		Amount:          amount,
		Status:          StatusPending,
		Items:           items,
		ShippingAddress: payload.ShippingAddress,
		PaymentMethod:   payload.PaymentMethod,
	})
	if created == nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": true, "message": "order was not created"})
	}
	return c.Status(fiber.StatusCreated).JSON(present(*created))
}

type updateStatusRequest struct {
	Status         Status  `json:"status"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !payload.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}

	patch := Patch{Status: &payload.Status, TrackingNumber: payload.TrackingNumber}
	updated := h.service.Update(c.Context(), c.Params("id"), patch)
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "order was not updated"})
	}
	return c.JSON(present(*updated))
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "order not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": true, "message": "order was not deleted"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
