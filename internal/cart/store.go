package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidItem = errors.New("invalid cart item")

// MaxLineQuantity caps the quantity of a single line, merged adds included.
const MaxLineQuantity = 999

// CartItem is one cart line. Name, Image and Price are a snapshot taken when
// the line was first added; later catalog changes do not touch them.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
}

func (i CartItem) matches(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func validateItem(item CartItem) error {
	switch {
	case strings.TrimSpace(item.ProductID) == "":
		return fmt.Errorf("%w: productId is required", ErrInvalidItem)
	case strings.TrimSpace(item.Size) == "":
		return fmt.Errorf("%w: size is required", ErrInvalidItem)
	case strings.TrimSpace(item.Color) == "":
		return fmt.Errorf("%w: color is required", ErrInvalidItem)
	case item.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
	case item.Quantity > MaxLineQuantity:
		return fmt.Errorf("%w: quantity must be at most %d", ErrInvalidItem, MaxLineQuantity)
	case item.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	}
	return nil
}

// Store holds the lines of a single cart in insertion order. Lines are keyed
// by (productID, size, color). A Store is not safe for concurrent use; Service
// serializes access to it.
type Store struct {
	items []CartItem
}

func NewStore() *Store {
	return &Store{items: make([]CartItem, 0)}
}

// AddItem appends item, or adds its quantity to the line with the same key.
// On merge the existing line keeps its price, name and image and its position.
func (s *Store) AddItem(item CartItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	for i := range s.items {
		if s.items[i].matches(item.ProductID, item.Size, item.Color) {
			if s.items[i].Quantity+item.Quantity > MaxLineQuantity {
				return fmt.Errorf("%w: line would exceed %d", ErrInvalidItem, MaxLineQuantity)
			}
			s.items[i].Quantity += item.Quantity
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

// RemoveItem deletes the matching line. It reports whether a line was removed.
func (s *Store) RemoveItem(productID, size, color string) bool {
	for i := range s.items {
		if s.items[i].matches(productID, size, color) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of the matching line as given. Values below
// one are stored too; callers clamp.
func (s *Store) UpdateQuantity(productID, size, color string, quantity int) bool {
	for i := range s.items {
		if s.items[i].matches(productID, size, color) {
			s.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Subtract takes the quantities of lines off the matching cart lines and drops
// lines that reach zero. Lines and quantities not in lines are kept.
func (s *Store) Subtract(lines []CartItem) {
	for _, l := range lines {
		for i := range s.items {
			if !s.items[i].matches(l.ProductID, l.Size, l.Color) {
				continue
			}
			if s.items[i].Quantity -= l.Quantity; s.items[i].Quantity < 1 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			break
		}
	}
}

func (s *Store) Clear() {
	s.items = make([]CartItem, 0)
}

func (s *Store) TotalItems() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums price * quantity over every line, rounded to cents.
func (s *Store) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.LineTotal())
	}
	return total.Round(2)
}

// Items returns a copy of the lines.
func (s *Store) Items() []CartItem {
	out := make([]CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}
