package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	createSQLiteCartTable = `
        CREATE TABLE IF NOT EXISTS cart_snapshots (
            cart_key   TEXT PRIMARY KEY,
            data       TEXT NOT NULL,
            updated_at INTEGER NOT NULL
        )`
	loadSQLiteCartQuery   = `SELECT data FROM cart_snapshots WHERE cart_key = ?`
	upsertSQLiteCartQuery = `
        INSERT INTO cart_snapshots (cart_key, data, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(cart_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
)

// SQLiteStorage keeps cart snapshots in a local SQLite file so carts survive a
// restart without any external service.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLiteStorage opens (creating if needed) the database at path.
func OpenSQLiteStorage(path string) (*SQLiteStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer keeps upserts serialized
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(createSQLiteCartTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cart table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	if err := s.db.QueryRowContext(ctx, loadSQLiteCartQuery, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}
	return []byte(data), nil
}

func (s *SQLiteStorage) Save(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertSQLiteCartQuery, key, string(data), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("save cart %s: %w", key, err)
	}
	return nil
}
