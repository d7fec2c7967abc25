package preorder

import (
	"context"
	"sync"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

// SnapshotStore serves the fixture pre-orders read-only; writes are
// simulated (create answers with a synthesized id but persists nothing,
// delete always succeeds).
type SnapshotStore struct {
	snapshot []PreOrder
	ids      idgen.Generator
}

func NewSnapshotStore(seed []PreOrder, ids idgen.Generator) *SnapshotStore {
	snap := make([]PreOrder, len(seed))
	copy(snap, seed)
	return &SnapshotStore{snapshot: snap, ids: ids}
}

func NewFixtureSnapshot() *SnapshotStore {
	return NewSnapshotStore(fixtures, idgen.NewPrefixed("PRE-", 3, len(fixtures)+1))
}

func (s *SnapshotStore) List(ctx context.Context) ([]PreOrder, error) {
	out := make([]PreOrder, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

func (s *SnapshotStore) GetByID(ctx context.Context, id string) (PreOrder, error) {
	for _, p := range s.snapshot {
		if p.ID == id {
			return p, nil
		}
	}
	return PreOrder{}, ErrNotFound
}

func (s *SnapshotStore) ListByStatus(ctx context.Context, status Status) ([]PreOrder, error) {
	out := make([]PreOrder, 0)
	for _, p := range s.snapshot {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *SnapshotStore) ListByCustomer(ctx context.Context, customerID int) ([]PreOrder, error) {
	out := make([]PreOrder, 0)
	for _, p := range s.snapshot {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *SnapshotStore) Create(ctx context.Context, p PreOrder) (PreOrder, error) {
	if p.ID == "" {
		p.ID = s.ids.NextID()
	}
	return p, nil
}

func (s *SnapshotStore) Update(ctx context.Context, id string, patch Patch) (PreOrder, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return PreOrder{}, err
	}
	patch.ApplyTo(&existing)
	return existing, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, id string) error {
	return nil
}

// MemoryStore is the mutable variant.
type MemoryStore struct {
	mu      sync.RWMutex
	storage []PreOrder
	ids     idgen.Generator
}

func NewMemoryStore(seed []PreOrder, ids idgen.Generator) *MemoryStore {
	storage := make([]PreOrder, len(seed))
	copy(storage, seed)
	return &MemoryStore{storage: storage, ids: ids}
}

func NewFixtureMemory() *MemoryStore {
	return NewMemoryStore(fixtures, idgen.NewPrefixed("PRE-", 3, len(fixtures)+1))
}

func (s *MemoryStore) List(ctx context.Context) ([]PreOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PreOrder, len(s.storage))
	copy(out, s.storage)
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (PreOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return PreOrder{}, ErrNotFound
}

func (s *MemoryStore) ListByStatus(ctx context.Context, status Status) ([]PreOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PreOrder, 0)
	for _, p := range s.storage {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByCustomer(ctx context.Context, customerID int) ([]PreOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PreOrder, 0)
	for _, p := range s.storage {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, p PreOrder) (PreOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.ids.NextID()
	}
	s.storage = append(s.storage, p)
	return p, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (PreOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.storage {
		if s.storage[i].ID == id {
			patch.ApplyTo(&s.storage[i])
			return s.storage[i], nil
		}
	}
	return PreOrder{}, ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.storage {
		if s.storage[i].ID == id {
			s.storage = append(s.storage[:i], s.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
