package middleware

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter throttles credential endpoints per client IP. With Redis
// configured the window is shared across instances; otherwise a
// per-process token bucket stands in.
type Limiter struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter builds a Limiter. rdb may be nil.
func NewLimiter(rdb *redis.Client) *Limiter {
	return &Limiter{
		rdb:   rdb,
		local: make(map[string]*rate.Limiter),
	}
}

// PerMinute returns middleware allowing n requests per minute per
// client IP for the route it is mounted on.
func (l *Limiter) PerMinute(n int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		allowed, err := l.allow(c, key, n)
		if err != nil {
			// Never let a limiter outage block sign-in traffic.
			log.Printf("[ratelimit] check failed for %s: %v", key, err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (l *Limiter) allow(c *gin.Context, key string, n int) (bool, error) {
	if l.rdb == nil {
		return l.allowLocal(key, n), nil
	}

	ctx := c.Request.Context()
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, time.Minute).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(n), nil
}

func (l *Limiter) allowLocal(key string, n int) bool {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
		l.local[key] = lim
	}
	l.mu.Unlock()

	return lim.Allow()
}
