package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("SetGetDelete", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache := NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)

		var dest []string
		found, err := cache.GetCache(ctx, UsersListKey, &dest)
		require.NoError(t, err)
		require.False(t, found)

		require.NoError(t, cache.SetCache(ctx, UsersListKey, []string{"a", "b"}))
		found, err = cache.GetCache(ctx, UsersListKey, &dest)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []string{"a", "b"}, dest)

		require.NoError(t, cache.DeleteCache(ctx, UsersListKey))
		found, err = cache.GetCache(ctx, UsersListKey, &dest)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("EntriesExpire", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache := NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)

		require.NoError(t, cache.SetCache(ctx, OrdersListKey, 1))
		mr.FastForward(2 * time.Minute)

		var dest int
		found, err := cache.GetCache(ctx, OrdersListKey, &dest)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("NilCacheIsNoop", func(t *testing.T) {
		var cache *Cache
		var dest int
		found, err := cache.GetCache(ctx, PaymentsListKey, &dest)
		require.NoError(t, err)
		require.False(t, found)
		require.NoError(t, cache.SetCache(ctx, PaymentsListKey, 1))
		require.NoError(t, cache.DeleteCache(ctx, PaymentsListKey))
	})

	t.Run("RedisDown", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache := NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
		mr.Close()

		var dest int
		_, err := cache.GetCache(ctx, ProductsListKey, &dest)
		require.Error(t, err)
	})
}
