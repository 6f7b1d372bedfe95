package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisTokenCacheForTest(t *testing.T) (*RedisTokenCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTokenCache(client, ""), mr
}

func TestRedisTokenCacheSetGetInvalidate(t *testing.T) {
	cache, _ := newRedisTokenCacheForTest(t)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "digest-1"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := cache.Set(ctx, "digest-1", []byte(`{"id":7}`), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := cache.Get(ctx, "digest-1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(val) != `{"id":7}` {
		t.Fatalf("unexpected cached value: %s", val)
	}

	if err := cache.Invalidate(ctx, "digest-1"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "digest-1"); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestRedisTokenCacheEntriesExpire(t *testing.T) {
	cache, mr := newRedisTokenCacheForTest(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "digest-1", []byte("v"), time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	if _, ok, _ := cache.Get(ctx, "digest-1"); ok {
		t.Fatal("expected entry expired after ttl")
	}
}

func TestRedisTokenCacheZeroTTLIsNoop(t *testing.T) {
	cache, _ := newRedisTokenCacheForTest(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "digest-1", []byte("v"), 0); err != nil {
		t.Fatalf("set with zero ttl: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "digest-1"); ok {
		t.Fatal("zero ttl must not store an entry")
	}
}
