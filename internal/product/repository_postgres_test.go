package product

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "merchant", "price", "category", "images", "featured", "in_stock", "stock",
		"description", "features", "specifications", "rating", "review_count", "origin", "shipping_estimate",
	})
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow(1, "Silk Scarf", "Rajasthan Textile House", 79.99, "Fashion",
			pq.StringArray{"/images/a.jpg"}, true, true, 24,
			"desc", pq.StringArray{"silk"}, []byte(`{"Material":"Silk"}`), 4.8, 132, "India", "7-10 days").
		AddRow(2, "Olive Oil", "Tuscan Groves Co.", 29.5, "Food & Beverage",
			pq.StringArray{"/images/b.jpg"}, false, true, 140,
			"desc", pq.StringArray{"cold pressed"}, []byte(`{}`), 4.9, 287, "Italy", "5-7 days")
	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY id").WillReturnRows(rows)

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 products, got %d", len(out))
	}
	if out[0].Specifications["Material"] != "Silk" {
		t.Fatalf("specifications not decoded: %+v", out[0].Specifications)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products WHERE id").WithArgs(42).WillReturnRows(productRows())

	if _, err := repo.GetByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresUpdateMergesPatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	existing := productRows().
		AddRow(1, "Silk Scarf", "Rajasthan Textile House", 79.99, "Fashion",
			pq.StringArray{}, true, true, 24,
			"desc", pq.StringArray{}, []byte(`{}`), 4.8, 132, "India", "7-10 days")
	mock.ExpectQuery("FROM products WHERE id").WithArgs(1).WillReturnRows(existing)
	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))

	price := 59.99
	updated, err := repo.Update(context.Background(), 1, Patch{Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 59.99 || updated.Name != "Silk Scarf" {
		t.Fatalf("patch merge wrong: %+v", updated)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
