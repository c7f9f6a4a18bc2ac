package goPassCheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var errLookupLimiterUnavailable = errors.New("lookup limiter unavailable")

// lookupLimiter enforces a fixed window of outbound hash-range lookups per
// caller IP. Callers without an IP in context share a single global window.
type lookupLimiter struct {
	redis  *redis.Client
	config SecurityConfig
}

func newLookupLimiter(redisClient *redis.Client, cfg SecurityConfig) *lookupLimiter {
	return &lookupLimiter{
		redis:  redisClient,
		config: cfg,
	}
}

func (l *lookupLimiter) Check(ctx context.Context, ip string) error {
	return l.enforceFixedWindow(ctx, lookupWindowKey(ip))
}

func (l *lookupLimiter) enforceFixedWindow(ctx context.Context, key string) error {
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", errLookupLimiterUnavailable, err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.config.LookupWindow).Err(); err != nil {
			return fmt.Errorf("%w: %v", errLookupLimiterUnavailable, err)
		}
	}

	if count > int64(l.config.MaxLookupsPerWindow) {
		return ErrLookupRateLimited
	}

	return nil
}

func lookupWindowKey(ip string) string {
	if ip == "" {
		return "pcl:global"
	}
	return "pcl:" + ip
}
