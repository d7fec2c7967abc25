package preorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
)

var errBackendDown = errors.New("backend down")

type failingRepository struct{}

func (failingRepository) List(context.Context) ([]PreOrder, error) { return nil, errBackendDown }
func (failingRepository) GetByID(context.Context, string) (PreOrder, error) {
	return PreOrder{}, errBackendDown
}
func (failingRepository) ListByStatus(context.Context, Status) ([]PreOrder, error) {
	return nil, errBackendDown
}
func (failingRepository) ListByCustomer(context.Context, int) ([]PreOrder, error) {
	return nil, errBackendDown
}
func (failingRepository) Create(context.Context, PreOrder) (PreOrder, error) {
	return PreOrder{}, errBackendDown
}
func (failingRepository) Update(context.Context, string, Patch) (PreOrder, error) {
	return PreOrder{}, errBackendDown
}
func (failingRepository) Delete(context.Context, string) error { return errBackendDown }

func demoService() *Service {
	return NewService(nil, NewFixtureSnapshot(), nil, time.Second)
}

func TestListServesFixturesInDemoMode(t *testing.T) {
	if got := demoService().List(context.Background()); len(got) != 3 {
		t.Fatalf("expected 3 fixture pre-orders, got %d", len(got))
	}
}

func TestReadsFallBackToFixturesOnRemoteError(t *testing.T) {
	s := NewService(failingRepository{}, NewFixtureSnapshot(), idgen.UUID{}, time.Second)
	if got := s.List(context.Background()); len(got) != 3 {
		t.Fatalf("expected fixture pre-orders, got %d", len(got))
	}
	if p := s.GetByID(context.Background(), "PRE-001"); p == nil {
		t.Fatal("expected fixture pre-order after remote failure")
	}
}

func TestWritesFailClosedOnRemoteError(t *testing.T) {
	s := NewService(failingRepository{}, NewFixtureSnapshot(), idgen.UUID{}, time.Second)
	if created := s.Create(context.Background(), PreOrder{Customer: "X"}); created != nil {
		t.Fatal("create must fail closed when the backend is down")
	}
	st := StatusApproved
	if updated := s.Update(context.Background(), "PRE-001", Patch{Status: &st}); updated != nil {
		t.Fatal("update must fail closed when the backend is down")
	}
	if err := s.Delete(context.Background(), "PRE-001"); err == nil {
		t.Fatal("delete must fail closed when the backend is down")
	} else if errors.Is(err, ErrNotFound) {
		t.Fatal("a transport failure must not be reported as not-found")
	}
}

func TestListByStatusAllMeansNoFilter(t *testing.T) {
	s := demoService()
	for _, status := range []string{"", "all", "All"} {
		if got := s.ListByStatus(context.Background(), status); len(got) != 3 {
			t.Fatalf("status %q: expected all pre-orders, got %d", status, len(got))
		}
	}
	if got := s.ListByStatus(context.Background(), "Rejected"); len(got) != 1 {
		t.Fatalf("expected 1 rejected pre-order, got %d", len(got))
	}
}

func TestSnapshotCreateAssignsIDWithoutPersisting(t *testing.T) {
	s := demoService()
	created := s.Create(context.Background(), PreOrder{Customer: "Amina Rahman", Status: StatusPending})
	if created == nil {
		t.Fatal("snapshot create must simulate success")
	}
	if created.ID != "PRE-004" {
		t.Fatalf("expected synthesized id PRE-004, got %q", created.ID)
	}
	if got := s.List(context.Background()); len(got) != 3 {
		t.Fatal("snapshot create must not persist")
	}
}

func TestSnapshotUpdateDoesNotWriteBack(t *testing.T) {
	s := demoService()
	st := StatusApproved
	window := "2026-11-01"
	updated := s.Update(context.Background(), "PRE-002", Patch{Status: &st, EstimatedShipping: &window})
	if updated == nil || updated.Status != StatusApproved || updated.EstimatedShipping != "2026-11-01" {
		t.Fatalf("unexpected merge result: %+v", updated)
	}
	// the snapshot still holds the original record
	if fresh := s.GetByID(context.Background(), "PRE-002"); fresh.Status != StatusPending {
		t.Fatalf("snapshot was mutated: %+v", fresh)
	}
}

func TestMemoryStorePersistsWrites(t *testing.T) {
	s := NewService(nil, NewFixtureMemory(), nil, time.Second)
	created := s.Create(context.Background(), PreOrder{Customer: "Y", Status: StatusPending})
	if created == nil {
		t.Fatal("create failed")
	}
	st := StatusProcessing
	if updated := s.Update(context.Background(), created.ID, Patch{Status: &st}); updated == nil {
		t.Fatal("update failed")
	}
	if got := s.GetByID(context.Background(), created.ID); got == nil || got.Status != StatusProcessing {
		t.Fatalf("memory store must persist updates: %+v", got)
	}
	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a pre-order that is already gone, got %v", err)
	}
}
