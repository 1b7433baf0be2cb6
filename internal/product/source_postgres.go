package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PostgresSource loads the catalog from the `product` table.
type PostgresSource struct {
	db *sql.DB
}

const (
	createProductTableQuery = `
		CREATE TABLE IF NOT EXISTS product (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			short_description TEXT NOT NULL DEFAULT '',
			long_description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			original_price NUMERIC(10,2),
			images TEXT[] NOT NULL,
			category TEXT NOT NULL,
			colors TEXT[] NOT NULL,
			sizes TEXT[] NOT NULL,
			material TEXT NOT NULL DEFAULT '',
			variants JSONB NOT NULL DEFAULT '[]',
			features TEXT[] NOT NULL DEFAULT '{}',
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			rating NUMERIC(2,1) NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			sku TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			ord INT NOT NULL DEFAULT 0
		)
	`
	listProductsQuery = `
		SELECT id, slug, name, short_description, long_description, price, original_price, images, category,
		       colors, sizes, material, variants, features, in_stock, rating, review_count, sku, tags
		FROM product
		ORDER BY ord, id
	`
	countProductsQuery = `SELECT COUNT(*) FROM product`
	insertProductQuery = `
		INSERT INTO product (id, slug, name, short_description, long_description, price, original_price, images, category,
		                     colors, sizes, material, variants, features, in_stock, rating, review_count, sku, tags, ord)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`
)

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// EnsureSchema creates the product table when it does not exist yet.
func (s *PostgresSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createProductTableQuery); err != nil {
		return fmt.Errorf("create product table: %w", err)
	}
	return nil
}

func (s *PostgresSource) Load(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

// SeedIfEmpty inserts products in a single transaction when the table has no
// rows. It reports how many rows were inserted.
func (s *PostgresSource) SeedIfEmpty(ctx context.Context, products []Product) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, countProductsQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, p := range products {
		variants, err := json.Marshal(p.Variants)
		if err != nil {
			return 0, fmt.Errorf("marshal variants for %s: %w", p.ID, err)
		}
		var original decimal.NullDecimal
		if p.OriginalPrice != nil {
			original = decimal.NewNullDecimal(*p.OriginalPrice)
		}
		if _, err := tx.ExecContext(ctx, insertProductQuery,
			p.ID,
			p.Slug,
			p.Name,
			p.ShortDescription,
			p.LongDescription,
			p.Price,
			original,
			pq.Array(p.Images),
			string(p.Category),
			pq.Array(p.Colors),
			pq.Array(p.Sizes),
			p.Material,
			variants,
			pq.Array(p.Features),
			p.InStock,
			p.Rating,
			p.ReviewCount,
			p.SKU,
			pq.Array(p.Tags),
			i,
		); err != nil {
			return 0, fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(products), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		original decimal.NullDecimal
		category string
		variants []byte
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.ShortDescription,
		&p.LongDescription,
		&p.Price,
		&original,
		pq.Array(&p.Images),
		&category,
		pq.Array(&p.Colors),
		pq.Array(&p.Sizes),
		&p.Material,
		&variants,
		pq.Array(&p.Features),
		&p.InStock,
		&p.Rating,
		&p.ReviewCount,
		&p.SKU,
		pq.Array(&p.Tags),
	); err != nil {
		return Product{}, fmt.Errorf("scan product: %w", err)
	}

	p.Category = Category(category)
	if original.Valid {
		v := original.Decimal
		p.OriginalPrice = &v
	}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return Product{}, fmt.Errorf("decode variants for %s: %w", p.ID, err)
		}
	}
	return p, nil
}
