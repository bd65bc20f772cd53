package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "0"

// RedisIdempotencyCache remembers which order an Idempotency-Key produced.
type RedisIdempotencyCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisIdempotencyCache(client *redis.Client, ttl time.Duration) *RedisIdempotencyCache {
	return &RedisIdempotencyCache{Client: client, TTL: ttl}
}

func (c *RedisIdempotencyCache) OrderKey(key string) string {
	return "order:idempotency:" + key
}

// Reserve claims key for a new order. When the key is already taken it
// returns the order id recorded for it, or 0 while that order is still
// being created.
func (c *RedisIdempotencyCache) Reserve(ctx context.Context, key string) (existingID int, reserved bool, err error) {
	ok, err := c.Client.SetNX(ctx, c.OrderKey(key), pendingMarker, c.TTL).Result()
	if err != nil {
		return 0, false, err
	}
	if ok {
		return 0, true, nil
	}

	val, err := c.Client.Get(ctx, c.OrderKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency key %q holds %q: %w", key, val, err)
	}
	return id, false, nil
}

func (c *RedisIdempotencyCache) Complete(ctx context.Context, key string, orderID int) error {
	return c.Client.Set(ctx, c.OrderKey(key), strconv.Itoa(orderID), c.TTL).Err()
}

// Release frees a reservation whose order was never stored.
func (c *RedisIdempotencyCache) Release(ctx context.Context, key string) error {
	return c.Client.Del(ctx, c.OrderKey(key)).Err()
}
