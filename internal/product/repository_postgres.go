package product

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, merchant, price, category, images, featured, in_stock, stock,
		description, features, specifications, rating, review_count, origin, shipping_estimate`

	listProductsQuery = `SELECT ` + productColumns + ` FROM products ORDER BY id`

	getProductByIDQuery = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	listProductsByCategoryQuery = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`

	insertProductQuery = `
		INSERT INTO products (name, merchant, price, category, images, featured, in_stock, stock,
			description, features, specifications, rating, review_count, origin, shipping_estimate)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id
	`

	updateProductQuery = `
		UPDATE products
		SET name = $1,
			merchant = $2,
			price = $3,
			category = $4,
			images = $5,
			featured = $6,
			in_stock = $7,
			stock = $8,
			description = $9,
			features = $10,
			specifications = $11,
			rating = $12,
			review_count = $13,
			origin = $14,
			shipping_estimate = $15
		WHERE id = $16
	`

	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsByCategoryQuery, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p Product) (Product, error) {
	specs, err := json.Marshal(p.Specifications)
	if err != nil {
		return Product{}, err
	}

	var id int
	err = r.db.QueryRowContext(ctx, insertProductQuery,
		p.Name,
		p.Merchant,
		p.Price,
		p.Category,
		pq.Array(p.Images),
		p.Featured,
		p.InStock,
		p.Stock,
		p.Description,
		pq.Array(p.Features),
		specs,
		p.Rating,
		p.ReviewCount,
		p.Origin,
		p.ShippingEstimate,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

// Update reads the current row, merges the patch and writes the full record
// back, so partial payloads keep the merge semantics of the fixture stores.
func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (Product, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	patch.ApplyTo(&existing)

	specs, err := json.Marshal(existing.Specifications)
	if err != nil {
		return Product{}, err
	}

	result, err := r.db.ExecContext(ctx, updateProductQuery,
		existing.Name,
		existing.Merchant,
		existing.Price,
		existing.Category,
		pq.Array(existing.Images),
		existing.Featured,
		existing.InStock,
		existing.Stock,
		existing.Description,
		pq.Array(existing.Features),
		specs,
		existing.Rating,
		existing.ReviewCount,
		existing.Origin,
		existing.ShippingEstimate,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return existing, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteProductQuery, id)
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
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		images   pq.StringArray
		features pq.StringArray
		specs    []byte
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Merchant,
		&p.Price,
		&p.Category,
		&images,
		&p.Featured,
		&p.InStock,
		&p.Stock,
		&p.Description,
		&features,
		&specs,
		&p.Rating,
		&p.ReviewCount,
		&p.Origin,
		&p.ShippingEstimate,
	); err != nil {
		return Product{}, err
	}
	p.Images = []string(images)
	p.Features = []string(features)
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specifications); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
