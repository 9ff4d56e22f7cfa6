package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Redis miss detection
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache keys of the list responses
const (
	UsersListKey    = "agri:users:list"
	ProductsListKey = "agri:products:list"
	OrdersListKey   = "agri:orders:list"
	PaymentsListKey = "agri:payments:list"
)

// Cache stores JSON-encoded responses in Redis.
// A nil *Cache is valid and never hits, so handlers work without Redis.
type Cache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Lifetime of every entry
}

// NewCache returns a Cache writing entries with the given TTL
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func (c *Cache) GetCache(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with the cache TTL
func (c *Cache) SetCache(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes keys from Redis
func (c *Cache) DeleteCache(ctx context.Context, keys ...string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err() // Delete keys from Redis
}
