package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	createCartTableQuery = `
        CREATE TABLE IF NOT EXISTS cart_snapshots (
            cart_key   TEXT PRIMARY KEY,
            data       JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`
	loadCartQuery   = `SELECT data FROM cart_snapshots WHERE cart_key = $1`
	upsertCartQuery = `
        INSERT INTO cart_snapshots (cart_key, data, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (cart_key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (r *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCartTableQuery); err != nil {
		return fmt.Errorf("create cart table: %w", err)
	}
	return nil
}

func (r *PostgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var raw sql.NullString
	if err := r.db.QueryRowContext(ctx, loadCartQuery, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return nil, ErrNoSnapshot
	}
	return []byte(raw.String), nil
}

func (r *PostgresStorage) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, upsertCartQuery, key, string(data))
	return err
}
