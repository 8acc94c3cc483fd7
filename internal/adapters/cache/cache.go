package cache

import (
	"context"
	"time"
)

// Cache stores hosted-API responses for their TTL. Lookups and writes
// are best-effort: a failing backend degrades to cache misses, never to
// request failures. Implementations are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Close() error
}

// NoOp is the fallback when caching is disabled or unreachable.
type NoOp struct{}

func (NoOp) Get(ctx context.Context, key string) (string, bool) {
	return "", false
}

func (NoOp) Set(ctx context.Context, key, value string, ttl time.Duration) {}

func (NoOp) Close() error {
	return nil
}
