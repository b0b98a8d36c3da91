package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type idempotencyRepository struct {
	redis *redis.Client
}

// NewIdempotencyRepository creates a Redis-backed idempotency key store
func NewIdempotencyRepository(rdb *redis.Client) *idempotencyRepository {
	return &idempotencyRepository{
		redis: rdb,
	}
}

// Claim atomically claims a key for the given TTL.
// Returns false when the key is already held by an in-flight operation.
func (r *idempotencyRepository) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.redis.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	return ok, nil
}

// Release frees a previously claimed key
func (r *idempotencyRepository) Release(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
