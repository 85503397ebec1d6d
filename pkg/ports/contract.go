package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPageCacheContract runs a suite of tests to verify that a PageCache
// implementation adheres to the defined interface contract.
func RunPageCacheContract(t *testing.T, cache PageCache) {
	ctx := context.Background()
	path := "/contract-test-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		err := cache.Set(ctx, path, "<html>cached</html>")
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, path)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, "<html>cached</html>", got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, "/never-cached"+path)
		assert.ErrorIs(t, err, ErrNotCached)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, path, "v1"))
		require.NoError(t, cache.Set(ctx, path, "v2"))

		got, err := cache.Get(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "v2", got)
	})

	t.Run("Invalidate", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, path, "doomed"))

		err := cache.Invalidate(ctx, path)
		require.NoError(t, err, "Invalidate should not return error")

		_, err = cache.Get(ctx, path)
		assert.ErrorIs(t, err, ErrNotCached, "Get after Invalidate should return ErrNotCached")
	})

	t.Run("Invalidate Missing", func(t *testing.T) {
		assert.NoError(t, cache.Invalidate(ctx, "/missing"+path))
	})

	t.Run("Clear", func(t *testing.T) {
		p1 := path + "-1"
		p2 := path + "-2"
		require.NoError(t, cache.Set(ctx, p1, "a"))
		require.NoError(t, cache.Set(ctx, p2, "b"))

		require.NoError(t, cache.Clear(ctx))

		_, err := cache.Get(ctx, p1)
		assert.ErrorIs(t, err, ErrNotCached)
		_, err = cache.Get(ctx, p2)
		assert.ErrorIs(t, err, ErrNotCached)
	})
}
