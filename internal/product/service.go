package product

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

// Service presents a uniform data-access contract whether or not a remote
// backend is configured. Reads fail open: any remote error (including a
// timeout) degrades to the fixture store and is only logged. Writes fail
// closed: a remote failure returns nil/false rather than fabricating a
// confirmation from fixture data.
type Service struct {
	remote   Repository // nil in demo mode
	fallback Repository
	timeout  time.Duration
}

func NewService(remote, fallback Repository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{remote: remote, fallback: fallback, timeout: timeout}
}

func (s *Service) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) List(ctx context.Context) []Product {
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.List(rctx); err == nil {
			return out
		} else {
			log.Printf("warning: remote product list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.List(ctx)
	return out
}

// GetByID returns nil when no record matches in either source. A remote
// not-found is final; only transport failures fall back to fixtures.
func (s *Service) GetByID(ctx context.Context, id int) *Product {
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
		log.Printf("warning: remote product lookup failed, serving fixtures: %v", err)
	}
	p, err := s.fallback.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return &p
}

// ListByCategory treats the key "all" (any case) as "no filter".
func (s *Service) ListByCategory(ctx context.Context, category string) []Product {
	if strings.EqualFold(category, "all") {
		return s.List(ctx)
	}
	if s.remote != nil {
		rctx, cancel := s.remoteCtx(ctx)
		defer cancel()
		if out, err := s.remote.ListByCategory(rctx, category); err == nil {
			return out
		} else {
			log.Printf("warning: remote product category list failed, serving fixtures: %v", err)
		}
	}
	out, _ := s.fallback.ListByCategory(ctx, category)
	return out
}

func (s *Service) ListFeatured(ctx context.Context) []Product {
	all := s.List(ctx)
	out := make([]Product, 0)
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Create(ctx context.Context, p Product) *Product {
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	created, err := repo.Create(rctx, p)
	if err != nil {
		log.Printf("warning: product create failed: %v", err)
		return nil
	}
	return &created
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) *Product {
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	updated, err := repo.Update(rctx, id, patch)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("warning: product update failed: %v", err)
		}
		return nil
	}
	return &updated
}

// Delete reports ErrNotFound distinctly so callers can tell "gone
// already" from a failed backend write.
func (s *Service) Delete(ctx context.Context, id int) error {
	repo := s.fallback
	if s.remote != nil {
		repo = s.remote
	}
	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()
	if err := repo.Delete(rctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("warning: product delete failed: %v", err)
		}
		return err
	}
	return nil
}
