package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrCorruptSnapshot = errors.New("corrupt cart snapshot")

type snapshot struct {
	Items []CartItem `json:"items"`
}

// legacySnapshot is the envelope older storefront builds wrote:
// {"state":{"items":[...]},"version":0}.
type legacySnapshot struct {
	State   *snapshot `json:"state"`
	Version *int      `json:"version"`
}

// Serialize encodes the cart as {"items":[...]}.
func (s *Store) Serialize() ([]byte, error) {
	return json.Marshal(snapshot{Items: s.Items()})
}

// Deserialize restores a cart from Serialize output or a legacy envelope.
// The returned Store is never nil: empty, missing or unreadable input yields
// an empty cart, with ErrCorruptSnapshot reported for the unreadable case.
func Deserialize(data []byte) (*Store, error) {
	store := NewStore()
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return store, nil
	}

	items, err := decodeItems(data)
	if err != nil {
		return NewStore(), fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || strings.TrimSpace(it.Size) == "" ||
			strings.TrimSpace(it.Color) == "" || it.Price.IsNegative() {
			return NewStore(), fmt.Errorf("%w: line %q has missing fields", ErrCorruptSnapshot, it.ProductID)
		}
		store.restore(it)
	}
	return store, nil
}

func decodeItems(data []byte) ([]CartItem, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	if _, ok := probe["items"]; ok {
		var snap snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, err
		}
		return snap.Items, nil
	}

	if _, ok := probe["state"]; ok {
		var legacy legacySnapshot
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, err
		}
		if legacy.State == nil {
			return nil, nil
		}
		return legacy.State.Items, nil
	}

	return nil, errors.New("no items field")
}

// restore appends a persisted line as-is, merging repeated keys. Merged
// quantities are capped at MaxLineQuantity.
func (s *Store) restore(item CartItem) {
	for i := range s.items {
		if s.items[i].matches(item.ProductID, item.Size, item.Color) {
			s.items[i].Quantity = min(min(s.items[i].Quantity, MaxLineQuantity)+min(item.Quantity, MaxLineQuantity), MaxLineQuantity)
			return
		}
	}
	s.items = append(s.items, item)
}
