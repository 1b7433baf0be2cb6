package product

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// PriceRange is an inclusive bound on the base price.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Contains reports whether min <= v <= max.
func (r PriceRange) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max)
}

// FilterConfig is the listing filter selected by the client. Zero value keeps
// every product.
type FilterConfig struct {
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Colors     []string    `json:"colors,omitempty"`
	Materials  []string    `json:"materials,omitempty"`
}

// ContainsFold reports whether substr appears anywhere in s, ignoring case.
// Color and material filters are deliberately loose: "grijs" matches
// "Lichtgrijs" and "hout" matches "Hout met akoestische achterzijde".
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

func containsAnyFold(s string, terms []string) bool {
	for _, t := range terms {
		if ContainsFold(s, t) {
			return true
		}
	}
	return false
}

// Matches reports whether p passes every active filter.
func (f FilterConfig) Matches(p Product) bool {
	// base price only; variant prices are not considered
	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}
	if len(f.Colors) > 0 {
		matched := false
		for _, c := range p.Colors {
			if containsAnyFold(c, f.Colors) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(f.Materials) > 0 && !containsAnyFold(p.Material, f.Materials) {
		return false
	}
	return true
}

// ApplyFilters returns the products matching cfg, preserving input order.
// The input slice is not modified.
func ApplyFilters(products []Product, cfg FilterConfig) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if cfg.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortKey selects the listing order.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortNewest     SortKey = "newest"
)

// ParseSortKey maps a query value to a SortKey. Empty input selects popularity.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case "":
		return SortPopularity, true
	case SortPopularity, SortPriceAsc, SortPriceDesc, SortNewest:
		return k, true
	default:
		return SortPopularity, false
	}
}

// SortProducts returns a sorted copy of products. Sorting is stable, so equal
// keys keep their input order. SortNewest has no timestamp to work with and
// reverses the input instead. Unknown keys sort by popularity.
func SortProducts(products []Product, key SortKey) []Product {
	out := slices.Clone(products)
	if out == nil {
		out = []Product{}
	}

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return b.Price.Cmp(a.Price) })
	case SortNewest:
		slices.Reverse(out)
	default:
		slices.SortStableFunc(out, func(a, b Product) int { return b.ReviewCount - a.ReviewCount })
	}
	return out
}

// Query is a full listing request: category scope, filters and order.
type Query struct {
	Category *Category
	Filter   FilterConfig
	Sort     SortKey
}

const (
	DefaultSearchLimit = 6
	searchPreviewSize  = 4
)

// Search matches query against name and short description. Queries shorter
// than two characters return a preview of the first products instead. The
// query is used as typed, surrounding spaces included.
func Search(products []Product, query string, limit int) []Product {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if len([]rune(query)) <= 1 {
		n := min(searchPreviewSize, len(products))
		return slices.Clone(products[:n])
	}

	out := make([]Product, 0, limit)
	for _, p := range products {
		if ContainsFold(p.Name, query) || ContainsFold(p.ShortDescription, query) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
