package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisTokenCache struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisTokenCache(client redis.UniversalClient, prefix string) *RedisTokenCache {
	if prefix == "" {
		prefix = "token_cache"
	}
	return &RedisTokenCache{client: client, prefix: prefix}
}

func (c *RedisTokenCache) Get(ctx context.Context, tokenDigest string) ([]byte, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}
	val, err := c.client.Get(ctx, c.key(tokenDigest)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, tokenDigest string, value []byte, ttl time.Duration) error {
	if c.client == nil || ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, c.key(tokenDigest), value, ttl).Err()
}

func (c *RedisTokenCache) Invalidate(ctx context.Context, tokenDigest string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(tokenDigest)).Err()
}

func (c *RedisTokenCache) key(tokenDigest string) string {
	return c.prefix + ":" + tokenDigest
}
