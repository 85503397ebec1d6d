package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/arvhem/foyer/internal/adapters/redis"
	"github.com/arvhem/foyer/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisCache_Contract(t *testing.T) {
	cache := redis.NewFromClient(newTestClient(t))
	ports.RunPageCacheContract(t, cache)
}

func TestRedisCache_TTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := redis.NewFromClient(client, redis.WithTTL(time.Minute), redis.WithPrefix("test:page:"))

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "/chatbot", "<html></html>"))

	got, err := cache.Get(ctx, "/chatbot")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", got)

	// Expire the entry and verify it is gone.
	mr.FastForward(2 * time.Minute)
	_, err = cache.Get(ctx, "/chatbot")
	assert.ErrorIs(t, err, ports.ErrNotCached)
}
