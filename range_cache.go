package goPassCheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var (
	errRangeCacheMiss        = errors.New("range cache miss")
	errRangeCacheUnavailable = errors.New("range cache unavailable")
)

// rangeCache stores raw hash-range response bodies keyed by the 5-character
// hash prefix. Only prefixes and suffix lists ever touch Redis; full hashes
// and plaintext passwords never do.
type rangeCache struct {
	redis  *redis.Client
	config CacheConfig
}

func newRangeCache(redisClient *redis.Client, cfg CacheConfig) *rangeCache {
	return &rangeCache{
		redis:  redisClient,
		config: cfg,
	}
}

func (c *rangeCache) key(prefix string) string {
	return c.config.RedisPrefix + ":" + prefix
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *rangeCache) Get(ctx context.Context, prefix string) ([]byte, error) {
	data, err := c.redis.Get(ctx, c.key(prefix)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errRangeCacheMiss
		}
		return nil, fmt.Errorf("%w: %v", errRangeCacheUnavailable, err)
	}

	return data, nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *rangeCache) Set(ctx context.Context, prefix string, body []byte) error {
	if err := c.redis.Set(ctx, c.key(prefix), body, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", errRangeCacheUnavailable, err)
	}

	return nil
}
