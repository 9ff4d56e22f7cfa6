package middleware

import (
	"context"  // Context for Redis operations
	"fmt"      // Key formatting
	"net/http" // HTTP status codes
	"sync"     // Guards the in-memory counters
	"time"     // Window arithmetic

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// MsgTooManyRequests is returned when a client exceeds its window quota
const MsgTooManyRequests = "Trop de requêtes, veuillez réessayer plus tard."

// Limiter counts requests per key in fixed windows
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// windowCount is the counter of one key in one window
type windowCount struct {
	start time.Time // Start of the window
	count int       // Requests seen in the window
}

// MemoryLimiter is a fixed-window limiter local to one process
type MemoryLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	now       func() time.Time
	counters  map[string]*windowCount
	lastSweep time.Time
}

// NewMemoryLimiter allows max requests per key in each window
func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	return &MemoryLimiter{
		window:   window,
		max:      max,
		now:      time.Now,
		counters: make(map[string]*windowCount),
	}
}

// Allow records one request for key and reports whether it is within quota
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	start := now.Truncate(l.window)
	// Drop counters of past windows at most once per window
	if now.Sub(l.lastSweep) >= l.window {
		for k, c := range l.counters {
			if c.start.Before(start) {
				delete(l.counters, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.counters[key]
	if !ok || !c.start.Equal(start) {
		c = &windowCount{start: start}
		l.counters[key] = c
	}
	c.count++
	return c.count <= l.max, nil
}

// RedisLimiter is a fixed-window limiter shared by every instance using the same Redis
type RedisLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int
	now    func() time.Time
}

// NewRedisLimiter allows max requests per key in each window
func NewRedisLimiter(rdb *redis.Client, window time.Duration, max int) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, window: window, max: max, now: time.Now}
}

// Allow increments the counter of key in the current window
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	start := l.now().Truncate(l.window)
	redisKey := fmt.Sprintf("agri:ratelimit:%s:%d", key, start.Unix())
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.max), nil
}

// RateLimitMiddleware rejects clients that exceed the limiter's quota.
// Clients are keyed by IP. A failing limiter lets the request through.
func RateLimitMiddleware(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			}).Warn("Rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": MsgTooManyRequests})
			return
		}
		c.Next()
	}
}
