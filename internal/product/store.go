package product

import (
	"context"
	"sync"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

// SnapshotStore serves the fixture catalog as a read-only snapshot. Writes
// are simulated: Create and Update compute and return a plausible record
// without touching the snapshot, and Delete always succeeds without
// removing anything. A List after a Create will not contain the new record.
// This is the named demo-mode behavior; use MemoryStore when writes should
// stick for the process lifetime.
type SnapshotStore struct {
	snapshot []Product
	ids      *idgen.Sequence
}

func NewSnapshotStore(seed []Product) *SnapshotStore {
	snap := make([]Product, len(seed))
	copy(snap, seed)
	ids := make([]int, 0, len(seed))
	for _, p := range seed {
		ids = append(ids, p.ID)
	}
	return &SnapshotStore{snapshot: snap, ids: idgen.NewSequence(ids)}
}

// NewFixtureSnapshot is the SnapshotStore over the built-in demo catalog.
func NewFixtureSnapshot() *SnapshotStore {
	return NewSnapshotStore(fixtures)
}

func (s *SnapshotStore) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

func (s *SnapshotStore) GetByID(ctx context.Context, id int) (Product, error) {
	for _, p := range s.snapshot {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *SnapshotStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	out := make([]Product, 0)
	for _, p := range s.snapshot {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *SnapshotStore) Create(ctx context.Context, p Product) (Product, error) {
	p.ID = s.ids.NextInt()
	return p, nil
}

func (s *SnapshotStore) Update(ctx context.Context, id int, patch Patch) (Product, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	patch.ApplyTo(&existing)
	return existing, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, id int) error {
	return nil
}

// MemoryStore is a mutable in-memory store. Writes persist for the process
// lifetime; all mutation goes through the store under a single lock so
// concurrent readers never observe torn rows.
type MemoryStore struct {
	mu      sync.RWMutex
	storage []Product
	ids     *idgen.Sequence
}

func NewMemoryStore(seed []Product) *MemoryStore {
	storage := make([]Product, len(seed))
	copy(storage, seed)
	ids := make([]int, 0, len(seed))
	for _, p := range seed {
		ids = append(ids, p.ID)
	}
	return &MemoryStore{storage: storage, ids: idgen.NewSequence(ids)}
}

// NewFixtureMemory is the MemoryStore seeded from the built-in demo catalog.
func NewFixtureMemory() *MemoryStore {
	return NewMemoryStore(fixtures)
}

func (s *MemoryStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.storage))
	copy(out, s.storage)
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *MemoryStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range s.storage {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.ids.NextInt()
	}
	s.storage = append(s.storage, p)
	return p, nil
}

func (s *MemoryStore) Update(ctx context.Context, id int, patch Patch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.storage {
		if s.storage[i].ID == id {
			patch.ApplyTo(&s.storage[i])
			return s.storage[i], nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id int) error {
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
