package order

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `id, customer, customer_id, date, amount, status, shipping_address, payment_method, tracking_number`

	listOrdersQuery = `SELECT ` + orderColumns + ` FROM orders ORDER BY date DESC, id`

	getOrderByIDQuery = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	listOrdersByStatusQuery = `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY date DESC, id`

	listOrdersByCustomerQuery = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY date DESC, id`

	insertOrderQuery = `
		INSERT INTO orders (id, customer, customer_id, date, amount, status, shipping_address, payment_method, tracking_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`

	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price, total_price)
		VALUES ($1,$2,$3,$4,$5,$6)
	`

	listItemsForOrdersQuery = `
		SELECT order_id, product_id, product_name, quantity, price, total_price
		FROM order_items
		WHERE order_id = ANY($1::text[])
		ORDER BY order_id, product_id
	`

	updateOrderQuery = `
		UPDATE orders
		SET status = $1,
			shipping_address = $2,
			payment_method = $3,
			tracking_number = $4
		WHERE id = $5
	`

	deleteOrderItemsQuery = `DELETE FROM order_items WHERE order_id = $1`
	deleteOrderQuery      = `DELETE FROM orders WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	return r.queryOrders(ctx, listOrdersQuery)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	return r.queryOrders(ctx, listOrdersByStatusQuery, string(status))
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	return r.queryOrders(ctx, listOrdersByCustomerQuery, customerID)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.attachItems(ctx, out)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, getOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	withItems, err := r.attachItems(ctx, []Order{o})
	if err != nil {
		return Order{}, err
	}
	return withItems[0], nil
}

// attachItems batch-loads line items for all orders in one query.
func (r *PostgresRepository) attachItems(ctx context.Context, orders []Order) ([]Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	rows, err := r.db.QueryContext(ctx, listItemsForOrdersQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := map[string][]Item{}
	for rows.Next() {
		var orderID string
		var it Item
		if err := rows.Scan(&orderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price, &it.TotalPrice); err != nil {
			return nil, err
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}
	return orders, nil
}

// Create inserts the order and its items in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, o Order) (Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, insertOrderQuery,
		o.ID, o.Customer, o.CustomerID, o.Date, o.Amount, string(o.Status),
		o.ShippingAddress, o.PaymentMethod, o.TrackingNumber,
	); err != nil {
		return Order{}, err
	}
	for _, it := range o.Items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery,
			o.ID, it.ProductID, it.ProductName, it.Quantity, it.Price, it.TotalPrice,
		); err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (Order, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	patch.ApplyTo(&existing)

	result, err := r.db.ExecContext(ctx, updateOrderQuery,
		string(existing.Status),
		existing.ShippingAddress,
		existing.PaymentMethod,
		existing.TrackingNumber,
		id,
	)
	if err != nil {
		return Order{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Order{}, err
	}
	if affected == 0 {
		return Order{}, ErrNotFound
	}
	return existing, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteOrderItemsQuery, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, deleteOrderQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func scanOrder(scanner interface{ Scan(dest ...any) error }) (Order, error) {
	o := Order{}
	var status string
	var tracking sql.NullString
	if err := scanner.Scan(
		&o.ID,
		&o.Customer,
		&o.CustomerID,
		&o.Date,
		&o.Amount,
		&status,
		&o.ShippingAddress,
		&o.PaymentMethod,
		&tracking,
	); err != nil {
		return Order{}, err
	}
	o.Status = Status(status)
	if tracking.Valid {
		o.TrackingNumber = &tracking.String
	}
	return o, nil
}
