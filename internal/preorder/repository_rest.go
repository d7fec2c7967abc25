package preorder

import (
	"context"
	"strconv"

	"github.com/JuelHossain/import-goods-sub000/internal/restdb"
)

const (
	preOrdersTable     = "pre_orders"
	preOrderItemsTable = "pre_order_items"
)

// RestRepository reads pre-orders through the hosted table API.
type RestRepository struct {
	client *restdb.Client
}

func NewRestRepository(client *restdb.Client) *RestRepository {
	return &RestRepository{client: client}
}

type preOrderRow struct {
	ID                  string  `json:"id"`
	Customer            string  `json:"customer"`
	CustomerID          int     `json:"customer_id"`
	Date                string  `json:"date"`
	Amount              float64 `json:"amount"`
	EstimatedShipping   string  `json:"estimated_shipping"`
	Status              string  `json:"status"`
	ShippingAddress     string  `json:"shipping_address"`
	SpecialRequirements *string `json:"special_requirements"`
}

type preOrderItemRow struct {
	PreOrderID  string  `json:"pre_order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"total_price"`
}

func (row preOrderRow) toModel(items []Item) PreOrder {
	return PreOrder{
		ID:                  row.ID,
		Customer:            row.Customer,
		CustomerID:          row.CustomerID,
		Date:                row.Date,
		Amount:              row.Amount,
		EstimatedShipping:   row.EstimatedShipping,
		Status:              Status(row.Status),
		Items:               items,
		ShippingAddress:     row.ShippingAddress,
		SpecialRequirements: row.SpecialRequirements,
	}
}

func (row preOrderItemRow) toModel() Item {
	return Item{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		Price:       row.Price,
		TotalPrice:  row.TotalPrice,
	}
}

func (r *RestRepository) List(ctx context.Context) ([]PreOrder, error) {
	return r.selectPreOrders(ctx, nil)
}

func (r *RestRepository) ListByStatus(ctx context.Context, status Status) ([]PreOrder, error) {
	return r.selectPreOrders(ctx, restdb.Filters{"status": string(status)})
}

func (r *RestRepository) ListByCustomer(ctx context.Context, customerID int) ([]PreOrder, error) {
	return r.selectPreOrders(ctx, restdb.Filters{"customer_id": strconv.Itoa(customerID)})
}

func (r *RestRepository) selectPreOrders(ctx context.Context, filters restdb.Filters) ([]PreOrder, error) {
	var rows []preOrderRow
	if err := r.client.Select(ctx, preOrdersTable, filters, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []PreOrder{}, nil
	}

	var itemRows []preOrderItemRow
	if err := r.client.Select(ctx, preOrderItemsTable, nil, &itemRows); err != nil {
		return nil, err
	}
	itemsByPreOrder := map[string][]Item{}
	for _, it := range itemRows {
		itemsByPreOrder[it.PreOrderID] = append(itemsByPreOrder[it.PreOrderID], it.toModel())
	}

	out := make([]PreOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel(itemsByPreOrder[row.ID]))
	}
	return out, nil
}

func (r *RestRepository) GetByID(ctx context.Context, id string) (PreOrder, error) {
	var rows []preOrderRow
	if err := r.client.Select(ctx, preOrdersTable, restdb.Filters{"id": id}, &rows); err != nil {
		return PreOrder{}, err
	}
	if len(rows) == 0 {
		return PreOrder{}, ErrNotFound
	}

	var itemRows []preOrderItemRow
	if err := r.client.Select(ctx, preOrderItemsTable, restdb.Filters{"pre_order_id": id}, &itemRows); err != nil {
		return PreOrder{}, err
	}
	items := make([]Item, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, it.toModel())
	}
	return rows[0].toModel(items), nil
}

func (r *RestRepository) Create(ctx context.Context, p PreOrder) (PreOrder, error) {
	row := preOrderRow{
		ID:                  p.ID,
		Customer:            p.Customer,
		CustomerID:          p.CustomerID,
		Date:                p.Date,
		Amount:              p.Amount,
		EstimatedShipping:   p.EstimatedShipping,
		Status:              string(p.Status),
		ShippingAddress:     p.ShippingAddress,
		SpecialRequirements: p.SpecialRequirements,
	}
	var created []preOrderRow
	if err := r.client.Insert(ctx, preOrdersTable, row, &created); err != nil {
		return PreOrder{}, err
	}
	if len(created) == 0 {
		return PreOrder{}, ErrNotFound
	}

	itemRows := make([]preOrderItemRow, 0, len(p.Items))
	for _, it := range p.Items {
		itemRows = append(itemRows, preOrderItemRow{
			PreOrderID:  created[0].ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TotalPrice:  it.TotalPrice,
		})
	}
	if len(itemRows) > 0 {
		if err := r.client.Insert(ctx, preOrderItemsTable, itemRows, nil); err != nil {
			return PreOrder{}, err
		}
	}
	return created[0].toModel(p.Items), nil
}

func (r *RestRepository) Update(ctx context.Context, id string, patch Patch) (PreOrder, error) {
	cols := map[string]any{}
	if patch.Status != nil {
		cols["status"] = string(*patch.Status)
	}
	if patch.EstimatedShipping != nil {
		cols["estimated_shipping"] = *patch.EstimatedShipping
	}
	if patch.ShippingAddress != nil {
		cols["shipping_address"] = *patch.ShippingAddress
	}
	if patch.SpecialRequirements != nil {
		cols["special_requirements"] = *patch.SpecialRequirements
	}

	var rows []preOrderRow
	if err := r.client.Update(ctx, preOrdersTable, restdb.Filters{"id": id}, cols, &rows); err != nil {
		return PreOrder{}, err
	}
	if len(rows) == 0 {
		return PreOrder{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *RestRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, preOrderItemsTable, restdb.Filters{"pre_order_id": id}); err != nil {
		return err
	}
	return r.client.Delete(ctx, preOrdersTable, restdb.Filters{"id": id})
}
