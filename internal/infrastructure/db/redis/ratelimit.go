package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window counter backed by Redis.
// Key format: ratelimit:<client_ip>
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

// NewRateLimiter creates a limiter allowing max requests per window.
func NewRateLimiter(client *redis.Client, window time.Duration, max int) *RateLimiter {
	return &RateLimiter{client: client, window: window, max: max}
}

// Allow increments the caller's counter and reports whether the request is
// within the limit. The first hit in a window sets the expiry, so the window
// starts at the first request rather than on a fixed clock boundary.
func (l *RateLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	key := l.key(clientIP)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.max), nil
}

func (l *RateLimiter) key(clientIP string) string {
	return fmt.Sprintf("ratelimit:%s", clientIP)
}
