package order

import (
	"context"
	"sync"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

// SnapshotStore serves the fixture orders as a read-only snapshot; writes
// are simulated the same way the product SnapshotStore simulates them.
type SnapshotStore struct {
	snapshot []Order
	ids      idgen.Generator
}

func NewSnapshotStore(seed []Order, ids idgen.Generator) *SnapshotStore {
	snap := make([]Order, len(seed))
	copy(snap, seed)
	return &SnapshotStore{snapshot: snap, ids: ids}
}

// NewFixtureSnapshot serves the demo order history; synthesized ids continue
// the "ORD-%03d" sequence after the fixtures.
func NewFixtureSnapshot() *SnapshotStore {
	return NewSnapshotStore(fixtures, idgen.NewPrefixed("ORD-", 3, len(fixtures)+1))
}

func (s *SnapshotStore) List(ctx context.Context) ([]Order, error) {
	out := make([]Order, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

func (s *SnapshotStore) GetByID(ctx context.Context, id string) (Order, error) {
	for _, o := range s.snapshot {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (s *SnapshotStore) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	out := make([]Order, 0)
	for _, o := range s.snapshot {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *SnapshotStore) ListByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	out := make([]Order, 0)
	for _, o := range s.snapshot {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *SnapshotStore) Create(ctx context.Context, o Order) (Order, error) {
	if o.ID == "" {
		o.ID = s.ids.NextID()
	}
	return o, nil
}

func (s *SnapshotStore) Update(ctx context.Context, id string, patch Patch) (Order, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	patch.ApplyTo(&existing)
	return existing, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, id string) error {
	return nil
}

// MemoryStore is the mutable variant; writes persist for the process
// lifetime behind a single lock.
type MemoryStore struct {
	mu      sync.RWMutex
	storage []Order
	ids     idgen.Generator
}

func NewMemoryStore(seed []Order, ids idgen.Generator) *MemoryStore {
	storage := make([]Order, len(seed))
	copy(storage, seed)
	return &MemoryStore{storage: storage, ids: ids}
}

func NewFixtureMemory() *MemoryStore {
	return NewMemoryStore(fixtures, idgen.NewPrefixed("ORD-", 3, len(fixtures)+1))
}

func (s *MemoryStore) List(ctx context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.storage))
	copy(out, s.storage)
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.storage {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (s *MemoryStore) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range s.storage {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range s.storage {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, o Order) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = s.ids.NextID()
	}
	s.storage = append(s.storage, o)
	return o, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.storage {
		if s.storage[i].ID == id {
			patch.ApplyTo(&s.storage[i])
			return s.storage[i], nil
		}
	}
	return Order{}, ErrNotFound
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
