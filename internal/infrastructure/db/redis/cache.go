package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

const defaultFeaturedTTL = 5 * time.Minute

// FeaturedCache caches the home view's featured paintings strip in Redis.
// Entries are keyed by requested limit and invalidated on any painting write.
type FeaturedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeaturedCache creates a FeaturedCache. A non-positive ttl falls back to
// the default.
func NewFeaturedCache(client *redis.Client, ttl time.Duration) *FeaturedCache {
	if ttl <= 0 {
		ttl = defaultFeaturedTTL
	}
	return &FeaturedCache{client: client, ttl: ttl}
}

// GetFeatured returns the cached strip for limit, or nil on a miss.
func (c *FeaturedCache) GetFeatured(ctx context.Context, limit int) ([]domain.Painting, error) {
	raw, err := c.client.Get(ctx, c.key(limit)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("featured cache get: %w", err)
	}

	var paintings []domain.Painting
	if err := json.Unmarshal(raw, &paintings); err != nil {
		return nil, fmt.Errorf("featured cache decode: %w", err)
	}
	return paintings, nil
}

// SetFeatured stores the strip for limit with the configured TTL.
func (c *FeaturedCache) SetFeatured(ctx context.Context, limit int, paintings []domain.Painting) error {
	raw, err := json.Marshal(paintings)
	if err != nil {
		return fmt.Errorf("featured cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(limit), raw, c.ttl).Err()
}

// InvalidateFeatured drops every cached strip.
func (c *FeaturedCache) InvalidateFeatured(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "featured:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("featured cache invalidate: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("featured cache scan: %w", err)
	}
	return nil
}

func (c *FeaturedCache) key(limit int) string {
	return fmt.Sprintf("featured:%d", limit)
}
