package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/acoustic-shop-backend/internal/session"
)

// Handler delegates order operations to the checkout service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
	app.Get("/api/v1/orders/:id", h.getOrder)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(Customer)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.PlaceOrder(c.UserContext(), cartID, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCustomer):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart is empty"})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "order was not placed"})
		default:
			log.Printf("[checkout] place order for cart %s: %v", cartID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to place order"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.GetOrder(c.UserContext(), cartID, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ord)
}
