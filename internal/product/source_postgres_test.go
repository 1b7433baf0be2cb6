package product

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productColumns = []string{
	"id", "slug", "name", "short_description", "long_description", "price", "original_price", "images", "category",
	"colors", "sizes", "material", "variants", "features", "in_stock", "rating", "review_count", "sku", "tags",
}

func TestPostgresSource_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	rows := sqlmock.NewRows(productColumns).
		AddRow("1", "paneel-zwart", "Paneel Zwart", "kort", "lang", "89.95", nil, "{a.jpg,b.jpg}", "wandpanelen",
			"{Zwart,Grijs}", "{60x60cm,60x120cm}", "Akoestische stof",
			[]byte(`[{"size":"60x60cm","price":"89.95"},{"size":"60x120cm","price":149.95}]`),
			`{"NRC 0.85"}`, true, "4.8", 124, "WP-ZW-001", "{kantoor}").
		AddRow("2", "plafond-wit", "Plafond Wit", "kort", "lang", "79.95", "99.95", "{c.jpg}", "plafondpanelen",
			"{Wit}", "{60x60cm}", "Minerale wol", []byte(`[]`), "{}", false, "4.7", 203, "PP-WT-001", "{}")
	mock.ExpectQuery("SELECT id, slug, name").WillReturnRows(rows)

	products, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.Slug != "paneel-zwart" || first.Category != CategoryWall {
		t.Fatalf("unexpected product %+v", first)
	}
	if len(first.Images) != 2 || first.Images[1] != "b.jpg" {
		t.Fatalf("unexpected images %v", first.Images)
	}
	if len(first.Variants) != 2 || first.PriceFor("60x120cm").String() != "149.95" {
		t.Fatalf("unexpected variants %+v", first.Variants)
	}
	if first.OriginalPrice != nil {
		t.Fatalf("expected no original price, got %v", first.OriginalPrice)
	}
	if products[1].OriginalPrice == nil || products[1].OriginalPrice.String() != "99.95" {
		t.Fatalf("expected original price 99.95, got %v", products[1].OriginalPrice)
	}
	if products[1].InStock {
		t.Fatalf("expected product 2 to be out of stock")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSource_LoadQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	mock.ExpectQuery("FROM product").WillReturnError(errors.New("no such table"))

	if _, err := src.Load(context.Background()); err == nil {
		t.Fatalf("expected error when the product table is missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSource_SeedIfEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	seed := DefaultProducts()[:2]
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for range seed {
		mock.ExpectExec("INSERT INTO product").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	n, err := src.SeedIfEmpty(context.Background(), seed)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSource_SeedSkipsPopulatedTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	n, err := src.SeedIfEmpty(context.Background(), DefaultProducts())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no inserts into a populated table, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSource_SeedRollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO product").WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	if _, err := src.SeedIfEmpty(context.Background(), DefaultProducts()[:1]); err == nil {
		t.Fatalf("expected insert error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
