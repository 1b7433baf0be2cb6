package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wichananm65/acoustic-shop-backend/internal/cart"
)

const (
	createOrdersTableQuery = `
        CREATE TABLE IF NOT EXISTS orders (
            id           UUID PRIMARY KEY,
            cart_id      TEXT NOT NULL,
            customer     JSONB NOT NULL,
            items        JSONB NOT NULL,
            total_items  INT NOT NULL,
            subtotal     NUMERIC(12,2) NOT NULL,
            shipping     NUMERIC(12,2) NOT NULL,
            total        NUMERIC(12,2) NOT NULL,
            status       TEXT NOT NULL,
            created_at   TIMESTAMPTZ NOT NULL
        )`
	insertOrderQuery = `
        INSERT INTO orders (id, cart_id, customer, items, total_items, subtotal, shipping, total, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	getOrderQuery = `
        SELECT id, cart_id, customer, items, total_items, subtotal, shipping, total, status, created_at
        FROM orders WHERE id = $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createOrdersTableQuery); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, ord Order) (Order, error) {
	customerJSON, err := json.Marshal(ord.Customer)
	if err != nil {
		return Order{}, err
	}
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	_, err = r.db.ExecContext(ctx, insertOrderQuery,
		ord.ID, ord.CartID, customerJSON, itemsJSON, ord.TotalItems,
		ord.Subtotal, ord.Shipping, ord.Total, ord.Status, ord.CreatedAt)
	if err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (Order, error) {
	var (
		ord          Order
		customerJSON []byte
		itemsJSON    []byte
	)
	err := r.db.QueryRowContext(ctx, getOrderQuery, id).Scan(
		&ord.ID, &ord.CartID, &customerJSON, &itemsJSON, &ord.TotalItems,
		&ord.Subtotal, &ord.Shipping, &ord.Total, &ord.Status, &ord.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	if err := json.Unmarshal(customerJSON, &ord.Customer); err != nil {
		return Order{}, fmt.Errorf("decode customer: %w", err)
	}
	ord.Items = make([]cart.CartItem, 0)
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, fmt.Errorf("decode items: %w", err)
	}
	return ord, nil
}
