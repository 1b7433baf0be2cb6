package product

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrNotFound       = errors.New("product not found")
	ErrDuplicateID    = errors.New("duplicate product id")
	ErrDuplicateSlug  = errors.New("duplicate product slug")
	ErrInvalidProduct = errors.New("invalid product")
)

// Catalog is the read-only product collection. It is built once from a Source
// and never mutated, so it is safe for concurrent readers without locking.
// Products go in and come out as deep copies.
type Catalog struct {
	products []Product
	bySlug   map[string]int
	byID     map[string]int
}

// NewCatalog validates products and indexes them by id and slug. Catalog order
// is the order of the input slice.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		bySlug:   make(map[string]int, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		if _, ok := c.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		c.byID[p.ID] = len(c.products)
		c.bySlug[p.Slug] = len(c.products)
		c.products = append(c.products, p.clone())
	}
	return c, nil
}

func validateProduct(p Product) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	case strings.TrimSpace(p.Slug) == "":
		return fmt.Errorf("%w: slug is required for %s", ErrInvalidProduct, p.ID)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q for %s", ErrInvalidProduct, p.Category, p.ID)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: negative price for %s", ErrInvalidProduct, p.ID)
	case len(p.Images) == 0 || len(p.Colors) == 0 || len(p.Sizes) == 0:
		return fmt.Errorf("%w: images, colors and sizes must be non-empty for %s", ErrInvalidProduct, p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: rating %.1f out of range for %s", ErrInvalidProduct, p.Rating, p.ID)
	}
	for _, size := range p.Sizes {
		if !slices.ContainsFunc(p.Variants, func(v Variant) bool { return v.Size == size }) {
			return fmt.Errorf("%w: size %q of %s has no variant", ErrInvalidProduct, size, p.ID)
		}
	}
	for _, v := range p.Variants {
		if v.Price.IsNegative() {
			return fmt.Errorf("%w: negative variant price for %s", ErrInvalidProduct, p.ID)
		}
	}
	return nil
}

// List returns a copy of every product in catalog order.
func (c *Catalog) List() []Product {
	return cloneAll(c.products)
}

func cloneAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// GetBySlug is an exact-match lookup. A miss is reported through ok, not an error.
func (c *Catalog) GetBySlug(slug string) (Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return c.products[i].clone(), true
}

func (c *Catalog) GetByID(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.products[i].clone(), nil
}

// ByCategory returns products of the given category in catalog order.
func (c *Catalog) ByCategory(category Category) []Product {
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p.clone())
		}
	}
	return out
}

// Featured returns the first count products in catalog order.
func (c *Catalog) Featured(count int) []Product {
	if count <= 0 {
		return []Product{}
	}
	if count > len(c.products) {
		count = len(c.products)
	}
	return cloneAll(c.products[:count])
}

// Categories lists every allowed category with its product count.
func (c *Catalog) Categories() []CategoryItem {
	out := make([]CategoryItem, 0, len(AllowedCategories))
	for _, cat := range AllowedCategories {
		out = append(out, CategoryItem{
			Category:     cat,
			Name:         categoryNames[cat],
			ProductCount: len(c.ByCategory(cat)),
		})
	}
	return out
}
