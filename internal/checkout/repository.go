package checkout

import (
	"context"
	"sync"
)

// Repository persists placed orders.
type Repository interface {
	Create(ctx context.Context, ord Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
}

// InMemoryRepository is used for tests and when no database is configured.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]Order)}
}

func (r *InMemoryRepository) Create(ctx context.Context, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[ord.ID] = ord
	return ord, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ord, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}
