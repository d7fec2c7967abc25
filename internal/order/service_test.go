package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

var errBackendDown = errors.New("backend down")

// failingRepository simulates an unreachable remote backend.
type failingRepository struct{}

func (failingRepository) List(context.Context) ([]Order, error) { return nil, errBackendDown }
func (failingRepository) GetByID(context.Context, string) (Order, error) {
	return Order{}, errBackendDown
}
func (failingRepository) ListByStatus(context.Context, Status) ([]Order, error) {
	return nil, errBackendDown
}
func (failingRepository) ListByCustomer(context.Context, int) ([]Order, error) {
	return nil, errBackendDown
}
func (failingRepository) Create(context.Context, Order) (Order, error) {
	return Order{}, errBackendDown
}
func (failingRepository) Update(context.Context, string, Patch) (Order, error) {
	return Order{}, errBackendDown
}
func (failingRepository) Delete(context.Context, string) error { return errBackendDown }

// slowRepository blocks until the context expires.
type slowRepository struct{}

func (slowRepository) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(10 * time.Second):
		return nil
	}
}
func (s slowRepository) List(ctx context.Context) ([]Order, error) { return nil, s.wait(ctx) }
func (s slowRepository) GetByID(ctx context.Context, _ string) (Order, error) {
	return Order{}, s.wait(ctx)
}
func (s slowRepository) ListByStatus(ctx context.Context, _ Status) ([]Order, error) {
	return nil, s.wait(ctx)
}
func (s slowRepository) ListByCustomer(ctx context.Context, _ int) ([]Order, error) {
	return nil, s.wait(ctx)
}
func (s slowRepository) Create(ctx context.Context, _ Order) (Order, error) {
	return Order{}, s.wait(ctx)
}
func (s slowRepository) Update(ctx context.Context, _ string, _ Patch) (Order, error) {
	return Order{}, s.wait(ctx)
}
func (s slowRepository) Delete(ctx context.Context, _ string) error { return s.wait(ctx) }

func demoService() *Service {
	return NewService(nil, NewFixtureSnapshot(), nil, time.Second)
}

func TestListServesFixturesInDemoMode(t *testing.T) {
	got := demoService().List(context.Background())
	if len(got) != len(Fixtures()) {
		t.Fatalf("expected %d orders, got %d", len(Fixtures()), len(got))
	}
}

func TestReadsFallBackToFixturesOnRemoteError(t *testing.T) {
	s := NewService(failingRepository{}, NewFixtureSnapshot(), idgen.UUID{}, time.Second)
	if got := s.List(context.Background()); len(got) != len(Fixtures()) {
		t.Fatalf("expected fixture orders, got %d", len(got))
	}
	if o := s.GetByID(context.Background(), "ORD-001"); o == nil {
		t.Fatal("expected fixture order after remote failure")
	}
	if got := s.ListByCustomer(context.Background(), 2); len(got) != 3 {
		t.Fatalf("expected 3 fixture orders for customer 2, got %d", len(got))
	}
}

func TestReadsFallBackToFixturesOnTimeout(t *testing.T) {
	s := NewService(slowRepository{}, NewFixtureSnapshot(), idgen.UUID{}, 10*time.Millisecond)
	if got := s.List(context.Background()); len(got) != len(Fixtures()) {
		t.Fatalf("expected fixture orders after timeout, got %d", len(got))
	}
}

func TestRemoteNotFoundIsFinal(t *testing.T) {
	// a remote that answers "no such order" must not be second-guessed by
	// the fixtures
	s := NewService(emptyRepository{}, NewFixtureSnapshot(), idgen.UUID{}, time.Second)
	if o := s.GetByID(context.Background(), "ORD-001"); o != nil {
		t.Fatalf("expected nil, got %v", o.ID)
	}
}

type emptyRepository struct{ failingRepository }

func (emptyRepository) GetByID(context.Context, string) (Order, error) {
	return Order{}, ErrNotFound
}

func TestWritesFailClosedOnRemoteError(t *testing.T) {
	s := NewService(failingRepository{}, NewFixtureSnapshot(), idgen.UUID{}, time.Second)
	if created := s.Create(context.Background(), Order{Customer: "X"}); created != nil {
		t.Fatal("create must fail closed when the backend is down")
	}
	st := StatusShipped
	if updated := s.Update(context.Background(), "ORD-001", Patch{Status: &st}); updated != nil {
		t.Fatal("update must fail closed when the backend is down")
	}
	if err := s.Delete(context.Background(), "ORD-001"); err == nil {
		t.Fatal("delete must fail closed when the backend is down")
	} else if errors.Is(err, ErrNotFound) {
		t.Fatal("a transport failure must not be reported as not-found")
	}
}

func TestListByStatusAllMeansNoFilter(t *testing.T) {
	s := demoService()
	for _, status := range []string{"", "all", "All"} {
		if got := s.ListByStatus(context.Background(), status); len(got) != len(Fixtures()) {
			t.Fatalf("status %q: expected all orders, got %d", status, len(got))
		}
	}
	if got := s.ListByStatus(context.Background(), "Shipped"); len(got) != 1 {
		t.Fatalf("expected 1 shipped order, got %d", len(got))
	}
}

func TestSnapshotCreateAssignsIDWithoutPersisting(t *testing.T) {
	s := demoService()
	created := s.Create(context.Background(), Order{Customer: "Amina Rahman", Status: StatusPending})
	if created == nil {
		t.Fatal("snapshot create must simulate success")
	}
	if created.ID != "ORD-006" {
		t.Fatalf("expected synthesized id ORD-006, got %q", created.ID)
	}
	if got := s.List(context.Background()); len(got) != len(Fixtures()) {
		t.Fatal("snapshot create must not persist")
	}
}

func TestServiceAssignsIDBeforeRemoteCreate(t *testing.T) {
	s := NewService(nil, NewFixtureMemory(), idgen.NewPrefixed("ORD-", 3, 100), time.Second)
	created := s.Create(context.Background(), Order{Customer: "X", Status: StatusPending})
	if created == nil || created.ID != "ORD-100" {
		t.Fatalf("expected service-assigned id ORD-100, got %+v", created)
	}
}

func TestMemoryStorePersistsWrites(t *testing.T) {
	s := NewService(nil, NewFixtureMemory(), nil, time.Second)
	created := s.Create(context.Background(), Order{Customer: "Y", Status: StatusPending})
	if created == nil {
		t.Fatal("create failed")
	}
	if got := s.GetByID(context.Background(), created.ID); got == nil {
		t.Fatal("memory store must persist creates")
	}
	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := s.GetByID(context.Background(), created.ID); got != nil {
		t.Fatal("memory store must persist deletes")
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an order that is already gone, got %v", err)
	}
}
