package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository is implemented by the remote backends and the fixture stores.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	ListByStatus(ctx context.Context, status Status) ([]Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]Order, error)
	Create(ctx context.Context, o Order) (Order, error)
	Update(ctx context.Context, id string, patch Patch) (Order, error)
	Delete(ctx context.Context, id string) error
}
