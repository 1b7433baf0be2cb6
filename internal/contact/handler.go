package contact

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/contact", h.submit)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(Message)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	msg, err := h.service.Submit(c.UserContext(), *payload)
	if err != nil {
		if errors.Is(err, ErrInvalidMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "message was not sent"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Bericht verzonden", "id": msg.ID})
}
