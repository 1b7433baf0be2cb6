package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// APIGatewayHandler serves the read-only catalog endpoints behind API Gateway.
// It understands the same query parameters as the fiber handler.
type APIGatewayHandler struct {
	service *Service
}

func NewAPIGatewayHandler(service *Service) *APIGatewayHandler {
	return &APIGatewayHandler{service: service}
}

func (h *APIGatewayHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Printf("[catalog-lambda] %s %s", req.HTTPMethod, req.Path)

	if req.HTTPMethod != http.MethodGet && req.HTTPMethod != "" {
		return gatewayJSON(http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"}), nil
	}

	if slug := req.PathParameters["slug"]; slug != "" {
		p, ok := h.service.GetBySlug(slug)
		if !ok {
			return gatewayJSON(http.StatusNotFound, map[string]string{"message": "Product not found"}), nil
		}
		return gatewayJSON(http.StatusOK, p), nil
	}

	q, err := parseQueryValues(req.QueryStringParameters)
	if err != nil {
		return gatewayJSON(http.StatusBadRequest, map[string]string{"message": err.Error()}), nil
	}
	return gatewayJSON(http.StatusOK, h.service.Query(q)), nil
}

func gatewayJSON(status int, body any) events.APIGatewayProxyResponse {
	b, err := json.Marshal(body)
	if err != nil {
		log.Printf("[catalog-lambda] marshal response: %v", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"Failed to format response"}`,
		}
	}
	headers := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET",
	}
	if status == http.StatusOK {
		headers["Cache-Control"] = "public, max-age=300"
	}
	return events.APIGatewayProxyResponse{StatusCode: status, Headers: headers, Body: string(b)}
}
