package preorder

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	preOrderColumns = `id, customer, customer_id, date, amount, estimated_shipping, status, shipping_address, special_requirements`

	listPreOrdersQuery = `SELECT ` + preOrderColumns + ` FROM pre_orders ORDER BY date DESC, id`

	getPreOrderByIDQuery = `SELECT ` + preOrderColumns + ` FROM pre_orders WHERE id = $1`

	listPreOrdersByStatusQuery = `SELECT ` + preOrderColumns + ` FROM pre_orders WHERE status = $1 ORDER BY date DESC, id`

	listPreOrdersByCustomerQuery = `SELECT ` + preOrderColumns + ` FROM pre_orders WHERE customer_id = $1 ORDER BY date DESC, id`

	insertPreOrderQuery = `
		INSERT INTO pre_orders (id, customer, customer_id, date, amount, estimated_shipping, status, shipping_address, special_requirements)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`

	insertPreOrderItemQuery = `
		INSERT INTO pre_order_items (pre_order_id, product_id, product_name, quantity, price, total_price)
		VALUES ($1,$2,$3,$4,$5,$6)
	`

	listItemsForPreOrdersQuery = `
		SELECT pre_order_id, product_id, product_name, quantity, price, total_price
		FROM pre_order_items
		WHERE pre_order_id = ANY($1::text[])
		ORDER BY pre_order_id, product_id
	`

	updatePreOrderQuery = `
		UPDATE pre_orders
		SET status = $1,
			estimated_shipping = $2,
			shipping_address = $3,
			special_requirements = $4
		WHERE id = $5
	`

	deletePreOrderItemsQuery = `DELETE FROM pre_order_items WHERE pre_order_id = $1`
	deletePreOrderQuery      = `DELETE FROM pre_orders WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]PreOrder, error) {
	return r.queryPreOrders(ctx, listPreOrdersQuery)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status Status) ([]PreOrder, error) {
	return r.queryPreOrders(ctx, listPreOrdersByStatusQuery, string(status))
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID int) ([]PreOrder, error) {
	return r.queryPreOrders(ctx, listPreOrdersByCustomerQuery, customerID)
}

func (r *PostgresRepository) queryPreOrders(ctx context.Context, query string, args ...any) ([]PreOrder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PreOrder, 0)
	for rows.Next() {
		p, err := scanPreOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.attachItems(ctx, out)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (PreOrder, error) {
	p, err := scanPreOrder(r.db.QueryRowContext(ctx, getPreOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return PreOrder{}, ErrNotFound
	}
	if err != nil {
		return PreOrder{}, err
	}
	withItems, err := r.attachItems(ctx, []PreOrder{p})
	if err != nil {
		return PreOrder{}, err
	}
	return withItems[0], nil
}

func (r *PostgresRepository) attachItems(ctx context.Context, preOrders []PreOrder) ([]PreOrder, error) {
	if len(preOrders) == 0 {
		return preOrders, nil
	}
	ids := make([]string, 0, len(preOrders))
	for _, p := range preOrders {
		ids = append(ids, p.ID)
	}

	rows, err := r.db.QueryContext(ctx, listItemsForPreOrdersQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByPreOrder := map[string][]Item{}
	for rows.Next() {
		var preOrderID string
		var it Item
		if err := rows.Scan(&preOrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price, &it.TotalPrice); err != nil {
			return nil, err
		}
		itemsByPreOrder[preOrderID] = append(itemsByPreOrder[preOrderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range preOrders {
		preOrders[i].Items = itemsByPreOrder[preOrders[i].ID]
	}
	return preOrders, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p PreOrder) (PreOrder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return PreOrder{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, insertPreOrderQuery,
		p.ID, p.Customer, p.CustomerID, p.Date, p.Amount, p.EstimatedShipping,
		string(p.Status), p.ShippingAddress, p.SpecialRequirements,
	); err != nil {
		return PreOrder{}, err
	}
	for _, it := range p.Items {
		if _, err := tx.ExecContext(ctx, insertPreOrderItemQuery,
			p.ID, it.ProductID, it.ProductName, it.Quantity, it.Price, it.TotalPrice,
		); err != nil {
			return PreOrder{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PreOrder{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (PreOrder, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return PreOrder{}, err
	}
	patch.ApplyTo(&existing)

	result, err := r.db.ExecContext(ctx, updatePreOrderQuery,
		string(existing.Status),
		existing.EstimatedShipping,
		existing.ShippingAddress,
		existing.SpecialRequirements,
		id,
	)
	if err != nil {
		return PreOrder{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return PreOrder{}, err
	}
	if affected == 0 {
		return PreOrder{}, ErrNotFound
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

	if _, err := tx.ExecContext(ctx, deletePreOrderItemsQuery, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, deletePreOrderQuery, id)
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

func scanPreOrder(scanner interface{ Scan(dest ...any) error }) (PreOrder, error) {
	p := PreOrder{}
	var status string
	var special sql.NullString
	if err := scanner.Scan(
		&p.ID,
		&p.Customer,
		&p.CustomerID,
		&p.Date,
		&p.Amount,
		&p.EstimatedShipping,
		&status,
		&p.ShippingAddress,
		&special,
	); err != nil {
		return PreOrder{}, err
	}
	p.Status = Status(status)
	if special.Valid {
		p.SpecialRequirements = &special.String
	}
	return p, nil
}
