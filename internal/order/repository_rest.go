package order

import (
	"context"
	"strconv"

	"github.com/JuelHossain/import-goods-sub000/internal/restdb"
)

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
)

// RestRepository reads orders through the hosted table API. Orders and line
// items live in separate tables; items are fetched with an equality filter
// and grouped per order.
type RestRepository struct {
	client *restdb.Client
}

func NewRestRepository(client *restdb.Client) *RestRepository {
	return &RestRepository{client: client}
}

type orderRow struct {
	ID              string  `json:"id"`
	Customer        string  `json:"customer"`
	CustomerID      int     `json:"customer_id"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	ShippingAddress string  `json:"shipping_address"`
	PaymentMethod   string  `json:"payment_method"`
	TrackingNumber  *string `json:"tracking_number"`
}

type orderItemRow struct {
	OrderID     string  `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"total_price"`
}

func (row orderRow) toModel(items []Item) Order {
	return Order{
		ID:              row.ID,
		Customer:        row.Customer,
		CustomerID:      row.CustomerID,
		Date:            row.Date,
		Amount:          row.Amount,
		Status:          Status(row.Status),
		Items:           items,
		ShippingAddress: row.ShippingAddress,
		PaymentMethod:   row.PaymentMethod,
		TrackingNumber:  row.TrackingNumber,
	}
}

func (row orderItemRow) toModel() Item {
	return Item{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		Price:       row.Price,
		TotalPrice:  row.TotalPrice,
	}
}

func (r *RestRepository) List(ctx context.Context) ([]Order, error) {
	return r.selectOrders(ctx, nil)
}

func (r *RestRepository) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	return r.selectOrders(ctx, restdb.Filters{"status": string(status)})
}

func (r *RestRepository) ListByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	return r.selectOrders(ctx, restdb.Filters{"customer_id": strconv.Itoa(customerID)})
}

func (r *RestRepository) selectOrders(ctx context.Context, filters restdb.Filters) ([]Order, error) {
	var rows []orderRow
	if err := r.client.Select(ctx, ordersTable, filters, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Order{}, nil
	}

	// one items fetch for the whole page; grouped client-side
	var itemRows []orderItemRow
	if err := r.client.Select(ctx, orderItemsTable, nil, &itemRows); err != nil {
		return nil, err
	}
	itemsByOrder := map[string][]Item{}
	for _, it := range itemRows {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it.toModel())
	}

	out := make([]Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel(itemsByOrder[row.ID]))
	}
	return out, nil
}

func (r *RestRepository) GetByID(ctx context.Context, id string) (Order, error) {
	var rows []orderRow
	if err := r.client.Select(ctx, ordersTable, restdb.Filters{"id": id}, &rows); err != nil {
		return Order{}, err
	}
	if len(rows) == 0 {
		return Order{}, ErrNotFound
	}

	var itemRows []orderItemRow
	if err := r.client.Select(ctx, orderItemsTable, restdb.Filters{"order_id": id}, &itemRows); err != nil {
		return Order{}, err
	}
	items := make([]Item, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, it.toModel())
	}
	return rows[0].toModel(items), nil
}

func (r *RestRepository) Create(ctx context.Context, o Order) (Order, error) {
	row := orderRow{
		ID:              o.ID,
		Customer:        o.Customer,
		CustomerID:      o.CustomerID,
		Date:            o.Date,
		Amount:          o.Amount,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		TrackingNumber:  o.TrackingNumber,
	}
	var created []orderRow
	if err := r.client.Insert(ctx, ordersTable, row, &created); err != nil {
		return Order{}, err
	}
	if len(created) == 0 {
		return Order{}, ErrNotFound
	}

	itemRows := make([]orderItemRow, 0, len(o.Items))
	for _, it := range o.Items {
		itemRows = append(itemRows, orderItemRow{
			OrderID:     created[0].ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TotalPrice:  it.TotalPrice,
		})
	}
	if len(itemRows) > 0 {
		if err := r.client.Insert(ctx, orderItemsTable, itemRows, nil); err != nil {
			return Order{}, err
		}
	}
	return created[0].toModel(o.Items), nil
}

func (r *RestRepository) Update(ctx context.Context, id string, patch Patch) (Order, error) {
	cols := map[string]any{}
	if patch.Status != nil {
		cols["status"] = string(*patch.Status)
	}
	if patch.TrackingNumber != nil {
		cols["tracking_number"] = *patch.TrackingNumber
	}
	if patch.ShippingAddress != nil {
		cols["shipping_address"] = *patch.ShippingAddress
	}
	if patch.PaymentMethod != nil {
		cols["payment_method"] = *patch.PaymentMethod
	}

	var rows []orderRow
	if err := r.client.Update(ctx, ordersTable, restdb.Filters{"id": id}, cols, &rows); err != nil {
		return Order{}, err
	}
	if len(rows) == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *RestRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, orderItemsTable, restdb.Filters{"order_id": id}); err != nil {
		return err
	}
	return r.client.Delete(ctx, ordersTable, restdb.Filters{"id": id})
}
