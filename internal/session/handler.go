package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	issuer *Issuer
}

func NewHandler(issuer *Issuer) *Handler {
	return &Handler{issuer: issuer}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/session", h.create)
}

type sessionRequest struct {
	CartID string `json:"cartId"`
}

// create issues a token. Clients holding an expired token can pass their old
// cartId to keep the same cart.
func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(sessionRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}

	token, cartID, err := h.issuer.Issue(payload.CartID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	resp := fiber.Map{"token": token, "cartId": cartID}
	if h.issuer.ttl > 0 {
		resp["expiresAt"] = h.issuer.now().Add(h.issuer.ttl).UTC().Format(time.RFC3339)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
