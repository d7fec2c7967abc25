package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Repository is the data-access contract shared by the remote backends and
// the fixture stores. The service layer is mode-blind: it only sees this
// interface.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id int, patch Patch) (Product, error)
	Delete(ctx context.Context, id int) error
}
