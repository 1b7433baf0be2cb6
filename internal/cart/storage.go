package cart

import (
	"context"
	"errors"
	"sync"
)

// Namespace is the fixed record name carts are persisted under.
const Namespace = "acoustic-cart"

// ErrNoSnapshot is returned by Storage.Load when nothing was saved under a key.
var ErrNoSnapshot = errors.New("no cart snapshot")

// Key returns the record key for a session's cart. An empty cartID maps to
// the bare namespace.
func Key(cartID string) string {
	if cartID == "" {
		return Namespace
	}
	return Namespace + ":" + cartID
}

// Storage persists serialized carts. Save overwrites; the last write wins.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// MemoryStorage keeps snapshots in a map. Used for tests and local runs.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *MemoryStorage) Save(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := make([]byte, len(data))
	copy(b, data)
	m.data[key] = b
	return nil
}
