package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestMemorySearchCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns results", func(t *testing.T) {
		// Given: an empty cache
		cache, err := NewMemorySearchCache(8)
		require.NoError(t, err)

		// When: a result is saved
		result := &entity.Result{Move: &entity.Move{Row: 1, Col: 1}, Score: entity.DrawScore}
		require.NoError(t, cache.Save(ctx, "key", result))

		// Then: it is returned for the same key
		cached, err := cache.GetByKey(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, result, cached)
	})

	t.Run("Returned move is a copy", func(t *testing.T) {
		cache, err := NewMemorySearchCache(8)
		require.NoError(t, err)

		require.NoError(t, cache.Save(ctx, "key", &entity.Result{Move: &entity.Move{Row: 0, Col: 0}}))

		cached, err := cache.GetByKey(ctx, "key")
		require.NoError(t, err)
		cached.Move.Row = 2

		again, err := cache.GetByKey(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, 0, again.Move.Row)
	})

	t.Run("Evicts the least recently used entry", func(t *testing.T) {
		// Given: a cache with room for one result
		cache, err := NewMemorySearchCache(1)
		require.NoError(t, err)

		// When: two results are saved
		require.NoError(t, cache.Save(ctx, "first", &entity.Result{}))
		require.NoError(t, cache.Save(ctx, "second", &entity.Result{}))

		// Then: only the newest one is kept
		_, err = cache.GetByKey(ctx, "first")
		require.ErrorIs(t, err, apperror.ErrCacheMiss)

		_, err = cache.GetByKey(ctx, "second")
		require.NoError(t, err)
	})

	t.Run("Delete reports misses", func(t *testing.T) {
		cache, err := NewMemorySearchCache(4)
		require.NoError(t, err)

		require.NoError(t, cache.Save(ctx, "key", &entity.Result{}))
		require.NoError(t, cache.DeleteByKey(ctx, "key"))
		require.ErrorIs(t, cache.DeleteByKey(ctx, "key"), apperror.ErrCacheMiss)
	})

	t.Run("Rejects a non-positive size", func(t *testing.T) {
		_, err := NewMemorySearchCache(0)
		require.Error(t, err)
	})
}
