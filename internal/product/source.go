package product

import (
	"context"
	"fmt"
)

// Source supplies the product sequence the catalog is built from at startup.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// StaticSource serves a fixed product list, DefaultProducts when empty.
type StaticSource struct {
	products []Product
}

func NewStaticSource(products []Product) *StaticSource {
	if len(products) == 0 {
		products = DefaultProducts()
	}
	return &StaticSource{products: products}
}

func (s *StaticSource) Load(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// LoadCatalog reads src once and builds the immutable catalog.
func LoadCatalog(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewCatalog(products)
}
