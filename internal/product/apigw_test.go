package product

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayHandler(t *testing.T) *APIGatewayHandler {
	t.Helper()
	return NewAPIGatewayHandler(NewService(defaultCatalog(t)))
}

func TestAPIGatewayHandler_ListWithQuery(t *testing.T) {
	h := newGatewayHandler(t)

	res, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/products",
		QueryStringParameters: map[string]string{"category": "plafondpanelen", "sort": "price-asc"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Headers["Content-Type"])

	var got []Product
	require.NoError(t, json.Unmarshal([]byte(res.Body), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "79.95", got[0].Price.String())
	assert.Equal(t, "249.95", got[2].Price.String())
}

func TestAPIGatewayHandler_Slug(t *testing.T) {
	h := newGatewayHandler(t)

	res, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodGet,
		PathParameters: map[string]string{"slug": "houten-wandpaneel-naturel"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var p Product
	require.NoError(t, json.Unmarshal([]byte(res.Body), &p))
	assert.Equal(t, "2", p.ID)

	res, err = h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodGet,
		PathParameters: map[string]string{"slug": "nope"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAPIGatewayHandler_Errors(t *testing.T) {
	h := newGatewayHandler(t)

	res, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		QueryStringParameters: map[string]string{"sort": "random"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
