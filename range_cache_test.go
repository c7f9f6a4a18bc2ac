package goPassCheck

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestRangeCacheRoundTrip(t *testing.T) {
	cache := newRangeCache(newTestRedis(t), CacheConfig{
		Enabled:     true,
		RedisPrefix: "pcr",
		TTL:         time.Minute,
	})

	ctx := context.Background()
	body := []byte("0018A45C4D1DEF81644B54AB7F969B88D65:1\r\nFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF:3")

	if _, err := cache.Get(ctx, "5BAA6"); !errors.Is(err, errRangeCacheMiss) {
		t.Fatalf("expected miss before Set, got %v", err)
	}

	if err := cache.Set(ctx, "5BAA6", body); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "5BAA6")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("cache returned different body: %q", got)
	}
}

func TestRangeCacheKeysByPrefix(t *testing.T) {
	cache := newRangeCache(newTestRedis(t), CacheConfig{
		Enabled:     true,
		RedisPrefix: "pcr",
		TTL:         time.Minute,
	})

	ctx := context.Background()
	if err := cache.Set(ctx, "5BAA6", []byte("a")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := cache.Get(ctx, "00000"); !errors.Is(err, errRangeCacheMiss) {
		t.Fatalf("expected miss for different prefix, got %v", err)
	}
}

func TestRangeCacheUnavailableRedis(t *testing.T) {
	client := newTestRedis(t)
	_ = client.Close()

	cache := newRangeCache(client, CacheConfig{
		Enabled:     true,
		RedisPrefix: "pcr",
		TTL:         time.Minute,
	})

	if _, err := cache.Get(context.Background(), "5BAA6"); !errors.Is(err, errRangeCacheUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if err := cache.Set(context.Background(), "5BAA6", []byte("a")); !errors.Is(err, errRangeCacheUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}
