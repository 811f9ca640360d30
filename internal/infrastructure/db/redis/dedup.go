package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// RatingDedup suppresses duplicate rating submissions backed by Redis.
// Key format: rating:<painting_id>:<user_id>:<score>
type RatingDedup struct {
	client *redis.Client
}

// NewRatingDedup creates a RatingDedup wrapping the given Redis client.
func NewRatingDedup(client *redis.Client) *RatingDedup {
	return &RatingDedup{client: client}
}

// IsDuplicate reports whether this exact submission was seen recently.
func (d *RatingDedup) IsDuplicate(ctx context.Context, paintingID, userID, score int) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(paintingID, userID, score)).Result()
	if err != nil {
		return false, fmt.Errorf("rating dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission has been processed (expires after dedupTTL).
func (d *RatingDedup) Mark(ctx context.Context, paintingID, userID, score int) error {
	return d.client.Set(ctx, d.key(paintingID, userID, score), "1", dedupTTL).Err()
}

func (d *RatingDedup) key(paintingID, userID, score int) string {
	return fmt.Sprintf("rating:%d:%d:%d", paintingID, userID, score)
}
