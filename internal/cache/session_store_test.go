package cache_test

import (
	"context"
	"testing"
	"time"

	"go-gin-attendance-log/internal/cache"
	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	user := model.CurrentUser{ID: uuid.New(), Email: "fan@example.com", EmailVerified: true}

	t.Run("Success - create, get, delete", func(t *testing.T) {
		store := cache.NewRedisSessionStore(setupRedis(t))

		session, err := store.Create(ctx, user, time.Minute)
		require.NoError(t, err)
		assert.Len(t, session.Token, 64)

		got, err := store.Get(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, user, got.User)
		assert.WithinDuration(t, session.ExpiresAt, got.ExpiresAt, time.Second)

		require.NoError(t, store.Delete(ctx, session.Token))
		_, err = store.Get(ctx, session.Token)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("Success - session expires with its ttl", func(t *testing.T) {
		rdb := setupRedis(t)
		store := cache.NewRedisSessionStore(rdb)

		session, err := store.Create(ctx, user, time.Minute)
		require.NoError(t, err)

		ttl, err := rdb.TTL(ctx, "session:"+session.Token).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Second)
	})

	t.Run("Failed - unknown token", func(t *testing.T) {
		store := cache.NewRedisSessionStore(setupRedis(t))

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}
