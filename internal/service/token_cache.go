package service

import (
	"context"
	"time"
)

// TokenCache stores serialized accounts keyed by a digest of their secret
// token. It is an optimization only: every implementation may miss, and the
// authenticator falls back to the database.
type TokenCache interface {
	Get(ctx context.Context, tokenDigest string) ([]byte, bool, error)
	Set(ctx context.Context, tokenDigest string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, tokenDigest string) error
}

type NoopTokenCache struct{}

func NewNoopTokenCache() *NoopTokenCache { return &NoopTokenCache{} }

func (c *NoopTokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *NoopTokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (c *NoopTokenCache) Invalidate(context.Context, string) error {
	return nil
}
