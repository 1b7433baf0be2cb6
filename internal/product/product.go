package product

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Category groups products by where the panel is mounted.
type Category string

const (
	CategoryWall    Category = "wandpanelen"
	CategoryCeiling Category = "plafondpanelen"
)

// AllowedCategories contains the supported product categories in display order.
var AllowedCategories = []Category{CategoryWall, CategoryCeiling}

var categoryNames = map[Category]string{
	CategoryWall:    "Wandpanelen",
	CategoryCeiling: "Plafondpanelen",
}

// Valid reports whether c is one of AllowedCategories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Variant pairs a selectable size with its unit price.
type Variant struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Product is a single catalog entry. JSON tags follow the camelCase names the
// storefront client already uses.
type Product struct {
	ID               string           `json:"id"`
	Slug             string           `json:"slug"`
	Name             string           `json:"name"`
	ShortDescription string           `json:"shortDescription"`
	LongDescription  string           `json:"longDescription"`
	Price            decimal.Decimal  `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice,omitempty"`
	Images           []string         `json:"images"`
	Category         Category         `json:"category"`
	Colors           []string         `json:"colors"`
	Sizes            []string         `json:"sizes"`
	Material         string           `json:"material"`
	Variants         []Variant        `json:"variants"`
	Features         []string         `json:"features"`
	InStock          bool             `json:"inStock"`
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"reviewCount"`
	SKU              string           `json:"sku"`
	Tags             []string         `json:"tags"`
}

// clone returns p with its own copies of every slice and pointer field.
func (p Product) clone() Product {
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		p.OriginalPrice = &op
	}
	p.Images = slices.Clone(p.Images)
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	p.Variants = slices.Clone(p.Variants)
	p.Features = slices.Clone(p.Features)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// PriceFor returns the variant price for size, falling back to the base price
// when no variant matches.
func (p Product) PriceFor(size string) decimal.Decimal {
	for _, v := range p.Variants {
		if v.Size == size {
			return v.Price
		}
	}
	return p.Price
}

func (p Product) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

func (p Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

// PrimaryImage is the image snapshotted into cart lines.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// CategoryItem is the public DTO returned by the category listing.
type CategoryItem struct {
	Category     Category `json:"category"`
	Name         string   `json:"name"`
	ProductCount int      `json:"productCount"`
}
