package product

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const defaultFeaturedCount = 6

// unboundedPrice stands in for a missing maxPrice.
var unboundedPrice = decimal.New(1, 12)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/featured", h.getFeatured)
	app.Get("/api/v1/products/search", h.search)
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/categories/:category/products", h.getCategoryProducts)
	app.Get("/api/v1/product/:slug", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.Query(q))
}

func (h *Handler) getCategoryProducts(c *fiber.Ctx) error {
	category := Category(c.Params("category"))
	if !category.Valid() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
	}
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	q.Category = &category
	return c.JSON(h.service.Query(q))
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	count := defaultFeaturedCount
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "count must be a non-negative integer"})
		}
		count = n
	}
	return c.JSON(h.service.Featured(count))
}

func (h *Handler) search(c *fiber.Ctx) error {
	limit := DefaultSearchLimit
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return c.JSON(h.service.Search(c.Query("q"), limit))
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, ok := h.service.GetBySlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(p)
}

type queryError string

func (e queryError) Error() string { return string(e) }

func parseQuery(c *fiber.Ctx) (Query, error) {
	return parseQueryValues(c.Queries())
}

// parseQueryValues reads category, minPrice, maxPrice, colors, materials and
// sort. Colors and materials are comma separated.
func parseQueryValues(values map[string]string) (Query, error) {
	var q Query

	if v := values["category"]; v != "" {
		cat := Category(v)
		if !cat.Valid() {
			return Query{}, queryError("invalid category")
		}
		q.Category = &cat
	}

	minRaw, maxRaw := values["minPrice"], values["maxPrice"]
	if minRaw != "" || maxRaw != "" {
		r := PriceRange{Min: decimal.Zero, Max: unboundedPrice}
		if minRaw != "" {
			v, err := decimal.NewFromString(minRaw)
			if err != nil || v.IsNegative() {
				return Query{}, queryError("minPrice must be a non-negative number")
			}
			r.Min = v
		}
		if maxRaw != "" {
			v, err := decimal.NewFromString(maxRaw)
			if err != nil || v.IsNegative() {
				return Query{}, queryError("maxPrice must be a non-negative number")
			}
			r.Max = v
		}
		if r.Min.GreaterThan(r.Max) {
			return Query{}, queryError("minPrice must not exceed maxPrice")
		}
		q.Filter.PriceRange = &r
	}

	q.Filter.Colors = splitList(values["colors"])
	q.Filter.Materials = splitList(values["materials"])

	sort, ok := ParseSortKey(values["sort"])
	if !ok {
		return Query{}, queryError("unknown sort key")
	}
	q.Sort = sort
	return q, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
