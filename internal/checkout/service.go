package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wichananm65/acoustic-shop-backend/internal/cart"
)

// CartService is the part of cart.Service checkout needs.
type CartService interface {
	Get(ctx context.Context, cartID string) *cart.Store
	ClearOrdered(ctx context.Context, cartID string, ordered []cart.CartItem) error
}

// Service places orders. The processing delay stands in for a payment
// provider round trip.
type Service struct {
	repo      Repository
	carts     CartService
	publisher Publisher
	delay     time.Duration
	now       func() time.Time
}

func NewService(repo Repository, carts CartService, publisher Publisher, delay time.Duration) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{repo: repo, carts: carts, publisher: publisher, delay: delay, now: time.Now}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// PlaceOrder turns the session cart into an order. The order is built from the
// cart as it is after the processing delay, and only the ordered lines are
// cleared once it is stored. A cancelled ctx during the delay leaves the cart
// untouched.
func (s *Service) PlaceOrder(ctx context.Context, cartID string, customer Customer) (Order, error) {
	if err := customer.Validate(); err != nil {
		return Order{}, err
	}
	if customer.SameAddress {
		customer.Billing = nil
	}

	store := s.carts.Get(ctx, cartID)
	if store.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	if err := wait(ctx, s.delay); err != nil {
		return Order{}, fmt.Errorf("order processing interrupted: %w", err)
	}

	store = s.carts.Get(ctx, cartID)
	if store.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	summary := cart.Summarize(store)
	ord := Order{
		ID:         uuid.NewString(),
		CartID:     cartID,
		Customer:   customer,
		Items:      summary.Items,
		TotalItems: summary.TotalItems,
		Subtotal:   summary.Subtotal,
		Shipping:   summary.Shipping,
		Total:      summary.Total,
		Status:     StatusPlaced,
		CreatedAt:  s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, ord)
	if err != nil {
		return Order{}, fmt.Errorf("store order: %w", err)
	}

	if err := s.publisher.Publish(ctx, created); err != nil {
		log.Printf("[checkout] publish %s for order %s: %v", EventOrderPlaced, created.ID, err)
	}
	if err := s.carts.ClearOrdered(ctx, cartID, created.Items); err != nil {
		log.Printf("[checkout] order %s placed but cart %s not cleared: %v", created.ID, cartID, err)
	}

	log.Printf("[checkout] order %s placed for cart %s with %d items", created.ID, cartID, created.TotalItems)
	return created, nil
}

// GetOrder returns the order if it belongs to cartID.
func (s *Service) GetOrder(ctx context.Context, cartID, orderID string) (Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return Order{}, ErrNotFound
	}
	ord, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.CartID != cartID {
		return Order{}, ErrNotFound
	}
	return ord, nil
}
