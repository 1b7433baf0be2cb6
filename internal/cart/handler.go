package cart

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/acoustic-shop-backend/internal/product"
	"github.com/wichananm65/acoustic-shop-backend/internal/session"
)

var (
	ErrUnknownSize  = errors.New("size not offered for product")
	ErrUnknownColor = errors.New("color not offered for product")
	ErrOutOfStock   = errors.New("product is out of stock")
)

// CatalogResolver turns an add-to-cart request into a priced line using the
// catalog. The Store never sees the catalog.
type CatalogResolver struct {
	products product.ServiceInterface
}

func NewCatalogResolver(products product.ServiceInterface) *CatalogResolver {
	return &CatalogResolver{products: products}
}

// Resolve checks that the product exists, is in stock and offers size and
// color, then snapshots name, first image and the variant price.
func (r *CatalogResolver) Resolve(productID, size, color string, quantity int) (CartItem, error) {
	if size == "" || color == "" {
		return CartItem{}, fmt.Errorf("%w: size and color must be selected", ErrInvalidItem)
	}
	if quantity < 1 || quantity > MaxLineQuantity {
		return CartItem{}, fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidItem, MaxLineQuantity)
	}
	p, err := r.products.GetByID(productID)
	if err != nil {
		return CartItem{}, err
	}
	if !p.InStock {
		return CartItem{}, ErrOutOfStock
	}
	if !p.HasSize(size) {
		return CartItem{}, ErrUnknownSize
	}
	if !p.HasColor(color) {
		return CartItem{}, ErrUnknownColor
	}
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.PrimaryImage(),
		Price:     p.PriceFor(size),
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	}, nil
}

// Handler exposes the session cart over HTTP.
type Handler struct {
	service  *Service
	resolver *CatalogResolver
}

func NewHandler(s *Service, resolver *CatalogResolver) *Handler {
	return &Handler{service: s, resolver: resolver}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Delete("/api/v1/cart", h.clearCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items", h.updateQuantity)
	app.Delete("/api/v1/cart/items", h.removeItem)
}

type lineRequest struct {
	ProductID string `json:"productId" query:"productId"`
	Size      string `json:"size" query:"size"`
	Color     string `json:"color" query:"color"`
	Quantity  *int   `json:"quantity,omitempty" query:"quantity"`
}

func parseLine(c *fiber.Ctx) (*lineRequest, error) {
	payload := new(lineRequest)
	var err error
	if len(c.Body()) > 0 {
		err = c.BodyParser(payload)
	} else {
		err = c.QueryParser(payload)
	}
	if err != nil {
		return nil, err
	}
	if payload.ProductID == "" {
		return nil, errors.New("productId is required")
	}
	return payload, nil
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(Summarize(h.service.Get(c.UserContext(), cartID)))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.service.Clear(c.UserContext(), cartID); err != nil {
		log.Printf("[cart] clear %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to clear cart"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload, err := parseLine(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	item, err := h.resolver.Resolve(payload.ProductID, payload.Size, payload.Color, qty)
	if err != nil {
		return writeError(c, err)
	}
	store, err := h.service.AddItem(c.UserContext(), cartID, item)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(Summarize(store))
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload, err := parseLine(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// the store takes any value; the bounds are enforced here
	if payload.Quantity == nil || *payload.Quantity < 1 || *payload.Quantity > MaxLineQuantity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": fmt.Sprintf("quantity must be between 1 and %d", MaxLineQuantity)})
	}

	store, err := h.service.UpdateQuantity(c.UserContext(), cartID, payload.ProductID, payload.Size, payload.Color, *payload.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(Summarize(store))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	cartID, err := session.CartIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload, err := parseLine(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	store, err := h.service.RemoveItem(c.UserContext(), cartID, payload.ProductID, payload.Size, payload.Color)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(Summarize(store))
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, product.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	case errors.Is(err, ErrInvalidItem), errors.Is(err, ErrUnknownSize), errors.Is(err, ErrUnknownColor):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrOutOfStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		log.Printf("[cart] %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to update cart"})
	}
}
