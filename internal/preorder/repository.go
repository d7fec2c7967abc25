package preorder

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pre-order not found")

type Repository interface {
	List(ctx context.Context) ([]PreOrder, error)
	GetByID(ctx context.Context, id string) (PreOrder, error)
	ListByStatus(ctx context.Context, status Status) ([]PreOrder, error)
	ListByCustomer(ctx context.Context, customerID int) ([]PreOrder, error)
	Create(ctx context.Context, p PreOrder) (PreOrder, error)
	Update(ctx context.Context, id string, patch Patch) (PreOrder, error)
	Delete(ctx context.Context, id string) error
}
