package restdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testRow struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestSelectEncodesEqualityFilters(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		w.Write([]byte(`[{"id":1,"name":"Silk Scarf"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key", srv.Client())
	var rows []testRow
	if err := c.Select(context.Background(), "products", Filters{"id": "1"}, &rows); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	if gotPath != "/rest/v1/products" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "id=eq.1" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if gotKey != "anon-key" {
		t.Fatalf("missing apikey header, got %q", gotKey)
	}
	if len(rows) != 1 || rows[0].Name != "Silk Scarf" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestSelectBadShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"not an array"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key", srv.Client())
	var rows []testRow
	err := c.Select(context.Background(), "products", nil, &rows)

	var shapeErr *BadShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected BadShapeError, got %v", err)
	}
	if shapeErr.Table != "products" {
		t.Fatalf("unexpected table %q", shapeErr.Table)
	}
}

func TestNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key", srv.Client())
	var rows []testRow
	if err := c.Select(context.Background(), "orders", nil, &rows); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestInsertSendsRepresentationPrefer(t *testing.T) {
	var gotPrefer, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotMethod = r.Method
		w.Write([]byte(`[{"id":9,"name":"Olive Oil"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key", srv.Client())
	var rows []testRow
	if err := c.Insert(context.Background(), "products", testRow{Name: "Olive Oil"}, &rows); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("unexpected method %q", gotMethod)
	}
	if gotPrefer != "return=representation" {
		t.Fatalf("unexpected Prefer header %q", gotPrefer)
	}
	if len(rows) != 1 || rows[0].ID != 9 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestContextCancellationPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "anon-key", srv.Client())
	var rows []testRow
	if err := c.Select(ctx, "products", nil, &rows); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
