package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// Service loads a session's cart from Storage, applies one mutation and writes
// it back before returning, so the next read always sees the new state.
type Service struct {
	storage Storage
	mu      sync.Mutex
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// load never fails: a missing, unreadable or corrupt record is an empty cart.
func (s *Service) load(ctx context.Context, key string) *Store {
	data, err := s.storage.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			log.Printf("[cart] load %s failed, starting empty: %v", key, err)
		}
		return NewStore()
	}
	store, err := Deserialize(data)
	if err != nil {
		log.Printf("[cart] discarding snapshot %s: %v", key, err)
	}
	return store
}

func (s *Service) save(ctx context.Context, key string, store *Store) error {
	data, err := store.Serialize()
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.storage.Save(ctx, key, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func (s *Service) mutate(ctx context.Context, cartID string, fn func(*Store) error) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(cartID)
	store := s.load(ctx, key)
	if err := fn(store); err != nil {
		return nil, err
	}
	if err := s.save(ctx, key, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Get returns the persisted cart for cartID.
func (s *Service) Get(ctx context.Context, cartID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, Key(cartID))
}

func (s *Service) AddItem(ctx context.Context, cartID string, item CartItem) (*Store, error) {
	return s.mutate(ctx, cartID, func(st *Store) error {
		return st.AddItem(item)
	})
}

func (s *Service) RemoveItem(ctx context.Context, cartID, productID, size, color string) (*Store, error) {
	return s.mutate(ctx, cartID, func(st *Store) error {
		st.RemoveItem(productID, size, color)
		return nil
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID, size, color string, quantity int) (*Store, error) {
	return s.mutate(ctx, cartID, func(st *Store) error {
		st.UpdateQuantity(productID, size, color, quantity)
		return nil
	})
}

func (s *Service) Clear(ctx context.Context, cartID string) error {
	_, err := s.mutate(ctx, cartID, func(st *Store) error {
		st.Clear()
		return nil
	})
	return err
}

// ClearOrdered removes the ordered quantities from the cart in one mutation.
// Anything added after the order snapshot was taken stays in the cart.
func (s *Service) ClearOrdered(ctx context.Context, cartID string, ordered []CartItem) error {
	_, err := s.mutate(ctx, cartID, func(st *Store) error {
		st.Subtract(ordered)
		return nil
	})
	return err
}
