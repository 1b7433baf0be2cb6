package checkout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOrderMessage(t *testing.T) {
	ord := sampleOrder()

	body, err := encodeOrderMessage(ord)
	require.NoError(t, err)

	var msg OrderMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, EventOrderPlaced, msg.Event)
	assert.Equal(t, ord.ID, msg.Order.ID)
	assert.Equal(t, "179.90", msg.Order.Total.StringFixed(2))
	assert.Contains(t, string(body), `"productId":"1"`)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), sampleOrder()))
}
