package preorder

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

// Service follows the same fallback contract as the other entities: reads
// fail open to the fixture store, writes fail closed.
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

func (s *Service) List(ctx context.Context) []PreOrder {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.List(rctx); err == nil {
			return out
		} else {
			log.Printf("warning: remote pre-order list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.List(ctx)
	return out
}

func (s *Service) GetByID(ctx context.Context, id string) *PreOrder {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		p, err := s.remote.GetByID(rctx, id)
		if err == nil {
			return &p
		}
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		log.Printf("warning: remote pre-order lookup failed, serving fixtures: %v", err)
	}
	p, err := s.fallback.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return &p
}

// ListByStatus treats the key "all" (any case) as "no filter".
func (s *Service) ListByStatus(ctx context.Context, status string) []PreOrder {
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
			log.Printf("warning: remote pre-order status list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.ListByStatus(ctx, st)
	return out
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int) []PreOrder {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.ListByCustomer(rctx, customerID); err == nil {
			return out
		} else {
			log.Printf("warning: remote customer pre-order list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.ListByCustomer(ctx, customerID)
	return out
}

func (s *Service) Create(ctx context.Context, p PreOrder) *PreOrder {
	if p.ID == "" && s.ids != nil {
		p.ID = s.ids.NextID()
	}
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	created, err := repo.Create(rctx, p)
	if err != nil {
		log.Printf("warning: pre-order create failed: %v", err)
		return nil
	}
	return &created
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) *PreOrder {
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	updated, err := repo.Update(rctx, id, patch)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("warning: pre-order update failed: %v", err)
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
			log.Printf("warning: pre-order delete failed: %v", err)
		}
		return err
	}
	return nil
}
