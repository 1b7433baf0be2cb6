package product

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

const catalogCacheKey = "acoustic-shop:catalog"

// CachedSource reads the product list from Redis and falls back to the
// wrapped source on a miss or a Redis error, repopulating the cache after a
// successful fallback. Concurrent misses share a single fallback load.
type CachedSource struct {
	client *redis.Client
	next   Source
	ttl    time.Duration
	group  singleflight.Group
}

func NewCachedSource(client *redis.Client, next Source, ttl time.Duration) *CachedSource {
	return &CachedSource{client: client, next: next, ttl: ttl}
}

func (s *CachedSource) Load(ctx context.Context) ([]Product, error) {
	products, err := s.fromCache(ctx)
	if err == nil {
		return products, nil
	}
	if err != redis.Nil {
		log.Printf("[catalog] redis read failed (%v), falling back to source", err)
	}

	v, err, _ := s.group.Do(catalogCacheKey, func() (any, error) {
		products, err := s.next.Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.populate(ctx, products); err != nil {
			log.Printf("[catalog] failed to populate cache: %v", err)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

func (s *CachedSource) fromCache(ctx context.Context) ([]Product, error) {
	raw, err := s.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode cached catalog: %w", err)
	}
	return products, nil
}

func (s *CachedSource) populate(ctx context.Context, products []Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return s.client.Set(ctx, catalogCacheKey, payload, s.ttl).Err()
}

// Invalidate drops the cached catalog so the next Load reads the source.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, catalogCacheKey).Err()
}
