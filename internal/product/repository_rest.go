package product

import (
	"context"
	"errors"
	"strconv"

	"github.com/JuelHossain/import-goods-sub000/internal/restdb"
)

const restTable = "products"

var errEmptyWriteResult = errors.New("write returned no rows")

// RestRepository reads the catalog through the hosted table API. Rows are
// decoded into an explicit schema (productRow) and mapped to the model, so
// a malformed response surfaces as restdb.BadShapeError instead of zero
// values leaking into the UI.
type RestRepository struct {
	client *restdb.Client
}

func NewRestRepository(client *restdb.Client) *RestRepository {
	return &RestRepository{client: client}
}

type productRow struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Merchant         string            `json:"merchant"`
	Price            float64           `json:"price"`
	Category         string            `json:"category"`
	Images           []string          `json:"images"`
	Featured         bool              `json:"featured"`
	InStock          bool              `json:"in_stock"`
	Stock            int               `json:"stock"`
	Description      string            `json:"description"`
	Features         []string          `json:"features"`
	Specifications   map[string]string `json:"specifications"`
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"review_count"`
	Origin           string            `json:"origin"`
	ShippingEstimate string            `json:"shipping_estimate"`
}

func (row productRow) toModel() Product {
	return Product{
		ID:               row.ID,
		Name:             row.Name,
		Merchant:         row.Merchant,
		Price:            row.Price,
		Category:         row.Category,
		Images:           row.Images,
		Featured:         row.Featured,
		InStock:          row.InStock,
		Stock:            row.Stock,
		Description:      row.Description,
		Features:         row.Features,
		Specifications:   row.Specifications,
		Rating:           row.Rating,
		ReviewCount:      row.ReviewCount,
		Origin:           row.Origin,
		ShippingEstimate: row.ShippingEstimate,
	}
}

// insertRow omits the id column so the backend assigns it.
type insertRow struct {
	Name             string            `json:"name"`
	Merchant         string            `json:"merchant"`
	Price            float64           `json:"price"`
	Category         string            `json:"category"`
	Images           []string          `json:"images"`
	Featured         bool              `json:"featured"`
	InStock          bool              `json:"in_stock"`
	Stock            int               `json:"stock"`
	Description      string            `json:"description"`
	Features         []string          `json:"features"`
	Specifications   map[string]string `json:"specifications"`
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"review_count"`
	Origin           string            `json:"origin"`
	ShippingEstimate string            `json:"shipping_estimate"`
}

func (r *RestRepository) List(ctx context.Context) ([]Product, error) {
	var rows []productRow
	if err := r.client.Select(ctx, restTable, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

func (r *RestRepository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	var rows []productRow
	if err := r.client.Select(ctx, restTable, restdb.Filters{"category": category}, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

func (r *RestRepository) GetByID(ctx context.Context, id int) (Product, error) {
	var rows []productRow
	if err := r.client.Select(ctx, restTable, idFilter(id), &rows); err != nil {
		return Product{}, err
	}
	if len(rows) == 0 {
		return Product{}, ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (r *RestRepository) Create(ctx context.Context, p Product) (Product, error) {
	payload := insertRow{
		Name:             p.Name,
		Merchant:         p.Merchant,
		Price:            p.Price,
		Category:         p.Category,
		Images:           p.Images,
		Featured:         p.Featured,
		InStock:          p.InStock,
		Stock:            p.Stock,
		Description:      p.Description,
		Features:         p.Features,
		Specifications:   p.Specifications,
		Rating:           p.Rating,
		ReviewCount:      p.ReviewCount,
		Origin:           p.Origin,
		ShippingEstimate: p.ShippingEstimate,
	}
	var rows []productRow
	if err := r.client.Insert(ctx, restTable, payload, &rows); err != nil {
		return Product{}, err
	}
	if len(rows) == 0 {
		return Product{}, &restdb.BadShapeError{Table: restTable, Err: errEmptyWriteResult}
	}
	return rows[0].toModel(), nil
}

func (r *RestRepository) Update(ctx context.Context, id int, patch Patch) (Product, error) {
	var rows []productRow
	if err := r.client.Update(ctx, restTable, idFilter(id), patchColumns(patch), &rows); err != nil {
		return Product{}, err
	}
	if len(rows) == 0 {
		return Product{}, ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (r *RestRepository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, restTable, idFilter(id))
}

func idFilter(id int) restdb.Filters {
	return restdb.Filters{"id": strconv.Itoa(id)}
}

// patchColumns translates set patch fields into the backend's column names.
// The table API merges server-side, so only set fields are sent.
func patchColumns(patch Patch) map[string]any {
	cols := map[string]any{}
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Merchant != nil {
		cols["merchant"] = *patch.Merchant
	}
	if patch.Price != nil {
		cols["price"] = *patch.Price
	}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.Images != nil {
		cols["images"] = *patch.Images
	}
	if patch.Featured != nil {
		cols["featured"] = *patch.Featured
	}
	if patch.InStock != nil {
		cols["in_stock"] = *patch.InStock
	}
	if patch.Stock != nil {
		cols["stock"] = *patch.Stock
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Features != nil {
		cols["features"] = *patch.Features
	}
	if patch.Specifications != nil {
		cols["specifications"] = *patch.Specifications
	}
	if patch.Rating != nil {
		cols["rating"] = *patch.Rating
	}
	if patch.ReviewCount != nil {
		cols["review_count"] = *patch.ReviewCount
	}
	if patch.Origin != nil {
		cols["origin"] = *patch.Origin
	}
	if patch.ShippingEstimate != nil {
		cols["shipping_estimate"] = *patch.ShippingEstimate
	}
	return cols
}

func mapRows(rows []productRow) []Product {
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}
