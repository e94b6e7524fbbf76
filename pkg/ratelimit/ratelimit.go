package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"caresync/pkg/redis"

	"github.com/gin-gonic/gin"
)

// CounterStore increments a counter and returns its new value. The counter
// must expire once the window closes.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// redisStore implements CounterStore on Redis with INCR + EXPIRE.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed counter store.
func NewRedisStore(client *redis.Client) CounterStore {
	return &redisStore{client: client}
}

func (s *redisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		// First hit in the window sets the expiry.
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Middleware limits each client IP to limit requests per fixed window.
// Store failures let the request through: an unavailable limiter must not
// take the API down with it. A non-positive window disables limiting.
func Middleware(store CounterStore, limit int, window time.Duration) gin.HandlerFunc {
	windowMs := window.Milliseconds()
	return func(c *gin.Context) {
		if windowMs <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().UnixMilli()/windowMs)

		n, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			c.Next()
			return
		}

		if n > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
