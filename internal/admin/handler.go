package admin

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/JuelHossain/import-goods-sub000/internal/order"
	"github.com/JuelHossain/import-goods-sub000/internal/preorder"
	"github.com/JuelHossain/import-goods-sub000/internal/product"
)

// lowStockThreshold flags products that need a restock order.
const lowStockThreshold = 5

// Handler aggregates cross-entity numbers for the admin dashboard.
type Handler struct {
	products  *product.Service
	orders    *order.Service
	preOrders *preorder.Service
}

func NewHandler(products *product.Service, orders *order.Service, preOrders *preorder.Service) *Handler {
	return &Handler{products: products, orders: orders, preOrders: preOrders}
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App, guard fiber.Handler) {
	app.Get("/api/v1/admin/summary", guard, h.getSummary)
}

type categoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type summaryResponse struct {
	Revenue           float64         `json:"revenue"`
	RevenueDisplay    string          `json:"revenueDisplay"`
	OrderCount        int             `json:"orderCount"`
	OrdersByStatus    map[string]int  `json:"ordersByStatus"`
	PreOrderCount     int             `json:"preOrderCount"`
	PreOrdersByStatus map[string]int  `json:"preOrdersByStatus"`
	ProductCount      int             `json:"productCount"`
	LowStock          []lowStockEntry `json:"lowStock"`
	TopCategories     []categoryCount `json:"topCategories"`
}

type lowStockEntry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	ctx := c.Context()

	orders := h.orders.List(ctx)
	revenue := 0.0
	ordersByStatus := map[string]int{}
	for _, o := range orders {
		ordersByStatus[string(o.Status)]++
		// only fulfilled orders count as realized revenue
		if o.Status == order.StatusCompleted {
			revenue += o.Amount
		}
	}

	preOrders := h.preOrders.List(ctx)
	preOrdersByStatus := map[string]int{}
	for _, p := range preOrders {
		preOrdersByStatus[string(p.Status)]++
	}

	products := h.products.List(ctx)
	byCategory := map[string]int{}
	lowStock := make([]lowStockEntry, 0)
	for _, p := range products {
		byCategory[p.Category]++
		if p.Stock < lowStockThreshold {
			lowStock = append(lowStock, lowStockEntry{ID: p.ID, Name: p.Name, Stock: p.Stock})
		}
	}
	sort.Slice(lowStock, func(i, j int) bool {
		if lowStock[i].Stock != lowStock[j].Stock {
			return lowStock[i].Stock < lowStock[j].Stock
		}
		return lowStock[i].ID < lowStock[j].ID
	})

	topCategories := make([]categoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		topCategories = append(topCategories, categoryCount{Category: category, Count: count})
	}
	sort.Slice(topCategories, func(i, j int) bool {
		if topCategories[i].Count != topCategories[j].Count {
			return topCategories[i].Count > topCategories[j].Count
		}
		return topCategories[i].Category < topCategories[j].Category
	})

	return c.JSON(summaryResponse{
		Revenue:           revenue,
		RevenueDisplay:    order.FormatAmount(revenue),
		OrderCount:        len(orders),
		OrdersByStatus:    ordersByStatus,
		PreOrderCount:     len(preOrders),
		PreOrdersByStatus: preOrdersByStatus,
		ProductCount:      len(products),
		LowStock:          lowStock,
		TopCategories:     topCategories,
	})
}
