package order

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

// Service mirrors the product service's fallback contract: reads fail open
// to the fixture store, writes fail closed.
type Service struct {
	remote   Repository // nil in demo mode
	fallback Repository
	ids      idgen.Generator
	timeout  time.Duration
}

func NewService(remote, fallback Repository, ids idgen.Generator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{remote: remote, fallback: fallback, ids: ids, timeout: timeout}
}

func (s *Service) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) List(ctx context.Context) []Order {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.List(rctx); err == nil {
			return out
		} else {
			log.Printf("warning: remote order list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.List(ctx)
	return out
}

func (s *Service) GetByID(ctx context.Context, id string) *Order {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		o, err := s.remote.GetByID(rctx, id)
		if err == nil {
			return &o
		}
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		log.Printf("warning: remote order lookup failed, serving fixtures: %v", err)
	}
	o, err := s.fallback.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return &o
}

// ListByStatus treats the key "all" (any case) as "no filter".
func (s *Service) ListByStatus(ctx context.Context, status string) []Order {
	if strings.EqualFold(status, "all") || status == "" {
		return s.List(ctx)
	}
	st := Status(status)
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.ListByStatus(rctx, st); err == nil {
			return out
		} else {
			log.Printf("warning: remote order status list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.ListByStatus(ctx, st)
	return out
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int) []Order {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.ListByCustomer(rctx, customerID); err == nil {
			return out
		} else {
			log.Printf("warning: remote customer order list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.ListByCustomer(ctx, customerID)
	return out
}

func (s *Service) Create(ctx context.Context, o Order) *Order {
	if o.ID == "" && s.ids != nil {
		o.ID = s.ids.NextID()
	}
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	created, err := repo.Create(rctx, o)
	if err != nil {
		log.Printf("warning: order create failed: %v", err)
		return nil
	}
	return &created
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) *Order {
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	updated, err := repo.Update(rctx, id, patch)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("warning: order update failed: %v", err)
		}
		return nil
	}
	return &updated
}

// Delete reports ErrNotFound distinctly so callers can tell "gone
// already" from a failed backend write.
func (s *Service) Delete(ctx context.Context, id string) error {
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	if err := repo.Delete(rctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("warning: order delete failed: %v", err)
		}
		return err
	}
	return nil
}
