package cart

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID, size, color, price string, qty int) CartItem {
	return CartItem{
		ProductID: productID,
		Name:      "Paneel " + productID,
		Image:     "https://img/" + productID,
		Price:     decimal.RequireFromString(price),
		Size:      size,
		Color:     color,
		Quantity:  qty,
	}
}

func TestStore_AddItemScenarios(t *testing.T) {
	s := NewStore()
	require.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())

	// first add
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 1)))
	assert.Equal(t, 1, s.TotalItems())
	assert.Equal(t, "89.95", s.TotalPrice().StringFixed(2))

	// same key merges
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 2)))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 3, s.Items()[0].Quantity)
	assert.Equal(t, "269.85", s.TotalPrice().StringFixed(2))

	// different size is a new line
	require.NoError(t, s.AddItem(line("1", "60x120cm", "Zwart", "149.95", 1)))
	assert.Len(t, s.Items(), 2)
	assert.False(t, s.IsEmpty())
}

func TestStore_MergeKeepsFirstSnapshotAndPosition(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 1)))
	require.NoError(t, s.AddItem(line("2", "90x90cm", "Walnoot", "149.95", 1)))

	later := line("1", "60x60cm", "Zwart", "10.00", 4)
	later.Name = "renamed"
	later.Image = "other.jpg"
	require.NoError(t, s.AddItem(later))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "89.95", items[0].Price.String())
	assert.Equal(t, "Paneel 1", items[0].Name)
	assert.Equal(t, "https://img/1", items[0].Image)
	assert.Equal(t, "2", items[1].ProductID)
}

func TestStore_AddItemRejectsInvalidLines(t *testing.T) {
	cases := map[string]CartItem{
		"missing product":   line("", "60x60cm", "Zwart", "1", 1),
		"missing size":      line("1", "", "Zwart", "1", 1),
		"missing color":     line("1", "60x60cm", " ", "1", 1),
		"zero quantity":     line("1", "60x60cm", "Zwart", "1", 0),
		"negative price":    line("1", "60x60cm", "Zwart", "-1", 1),
		"negative quantity": line("1", "60x60cm", "Zwart", "1", -3),
	}
	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			assert.ErrorIs(t, s.AddItem(item), ErrInvalidItem)
			assert.True(t, s.IsEmpty())
		})
	}
}

func TestStore_AddItemQuantityCap(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", math.MaxInt)), ErrInvalidItem)
	assert.ErrorIs(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", MaxLineQuantity+1)), ErrInvalidItem)

	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", MaxLineQuantity)))
	assert.ErrorIs(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 1)), ErrInvalidItem)
	assert.Equal(t, MaxLineQuantity, s.TotalItems())
	assert.True(t, s.TotalPrice().IsPositive())
}

func TestStore_SubtractKeepsUnorderedQuantities(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 3)))
	require.NoError(t, s.AddItem(line("2", "60x120cm", "Walnoot", "129.95", 1)))
	require.NoError(t, s.AddItem(line("3", "60x60cm", "Wit", "79.95", 1)))

	s.Subtract([]CartItem{
		line("1", "60x60cm", "Zwart", "89.95", 2),
		line("2", "60x120cm", "Walnoot", "129.95", 1),
		line("9", "60x60cm", "Zwart", "1.00", 1),
	})

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "3", items[1].ProductID)
}

func TestStore_RemoveAndUpdateMissingKeyAreNoops(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 2)))
	before := s.Items()

	assert.False(t, s.RemoveItem("1", "60x60cm", "Wit"))
	assert.False(t, s.UpdateQuantity("9", "60x60cm", "Zwart", 7))
	assert.Equal(t, before, s.Items())
}

func TestStore_UpdateQuantityIsVerbatim(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "10.00", 2)))
	require.NoError(t, s.AddItem(line("2", "60x60cm", "Zwart", "5.00", 1)))

	assert.True(t, s.UpdateQuantity("1", "60x60cm", "Zwart", 0))
	assert.Len(t, s.Items(), 2, "zero quantity does not remove the line")
	assert.Equal(t, 1, s.TotalItems())
	assert.Equal(t, "5.00", s.TotalPrice().StringFixed(2))

	assert.True(t, s.UpdateQuantity("1", "60x60cm", "Zwart", -1))
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, "-5.00", s.TotalPrice().StringFixed(2))
}

func TestStore_TotalsAfterInterleavedMutations(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 1)))
	require.NoError(t, s.AddItem(line("3", "60x60cm", "Wit", "79.95", 3)))
	require.NoError(t, s.AddItem(line("4", "Hexagon 40cm", "Mosterd", "59.95", 2)))
	s.UpdateQuantity("3", "60x60cm", "Wit", 1)
	s.RemoveItem("1", "60x60cm", "Zwart")
	require.NoError(t, s.AddItem(line("4", "Hexagon 40cm", "Mosterd", "59.95", 1)))

	sum := 0
	total := decimal.Zero
	for _, it := range s.Items() {
		sum += it.Quantity
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.Equal(t, sum, s.TotalItems())
	assert.Equal(t, 4, s.TotalItems())
	assert.True(t, total.Round(2).Equal(s.TotalPrice()))
	assert.Equal(t, "259.80", s.TotalPrice().StringFixed(2))
}

func TestStore_ClearAndItemsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 1)))

	items := s.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, s.TotalItems())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.TotalItems())
}
