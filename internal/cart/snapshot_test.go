package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem(line("1", "60x60cm", "Zwart", "89.95", 3)))
	require.NoError(t, s.AddItem(line("6", "Ø150cm", "Wit", "349.95", 1)))

	data, err := s.Serialize()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[`)
	assert.Contains(t, string(data), `"productId":"1"`)

	restored, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, s.Items(), restored.Items())
	assert.True(t, s.TotalPrice().Equal(restored.TotalPrice()))
}

func TestSnapshot_EmptyCartSerializesEmptyItems(t *testing.T) {
	data, err := NewStore().Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(data))
}

func TestDeserialize_LegacyEnvelopeWithNumericPrices(t *testing.T) {
	raw := `{"state":{"items":[{"productId":"3","name":"Akoestisch Plafondpaneel Wit","image":"x.jpg","price":79.95,"size":"60x60cm","color":"Wit","quantity":2}]},"version":0}`

	s, err := Deserialize([]byte(raw))
	require.NoError(t, err)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 2, s.TotalItems())
	assert.Equal(t, "159.90", s.TotalPrice().StringFixed(2))
}

func TestDeserialize_MergesRepeatedKeys(t *testing.T) {
	raw := `{"items":[
		{"productId":"1","price":"89.95","size":"60x60cm","color":"Zwart","quantity":1},
		{"productId":"2","price":"129.95","size":"60x120cm","color":"Walnoot","quantity":1},
		{"productId":"1","price":"1.00","size":"60x60cm","color":"Zwart","quantity":2}
	]}`

	s, err := Deserialize([]byte(raw))
	require.NoError(t, err)
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "89.95", items[0].Price.String())
}

func TestDeserialize_MergeIsCapped(t *testing.T) {
	raw := `{"items":[
		{"productId":"1","price":"89.95","size":"60x60cm","color":"Zwart","quantity":9223372036854775807},
		{"productId":"1","price":"89.95","size":"60x60cm","color":"Zwart","quantity":1}
	]}`

	s, err := Deserialize([]byte(raw))
	require.NoError(t, err)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, MaxLineQuantity, s.Items()[0].Quantity)
}

func TestDeserialize_FallsBackToEmpty(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":        `{"items":[`,
		"wrong shape":     `{"lines":[]}`,
		"array":           `[1,2,3]`,
		"bad price":       `{"items":[{"productId":"1","price":"abc","size":"a","color":"b","quantity":1}]}`,
		"missing size":    `{"items":[{"productId":"1","price":"1","color":"b","quantity":1}]}`,
		"items not array": `{"items":"nope"}`,
	} {
		t.Run(name, func(t *testing.T) {
			s, err := Deserialize([]byte(raw))
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
			require.NotNil(t, s)
			assert.True(t, s.IsEmpty())
		})
	}

	for _, raw := range []string{"", "  ", "null", `{"state":null,"version":0}`} {
		s, err := Deserialize([]byte(raw))
		assert.NoError(t, err)
		assert.True(t, s.IsEmpty())
	}
}
