package cache_test

import (
	"context"
	"testing"
	"time"

	"go-gin-attendance-log/internal/cache"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - token is single use", func(t *testing.T) {
		store := cache.NewRedisTokenStore(setupRedis(t))

		token, err := store.Issue(ctx, cache.PurposePasswordReset, userID, time.Minute)
		require.NoError(t, err)

		got, err := store.Consume(ctx, cache.PurposePasswordReset, token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)

		_, err = store.Consume(ctx, cache.PurposePasswordReset, token)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("Failed - purposes do not mix", func(t *testing.T) {
		store := cache.NewRedisTokenStore(setupRedis(t))

		token, err := store.Issue(ctx, cache.PurposeVerifyEmail, userID, time.Minute)
		require.NoError(t, err)

		_, err = store.Consume(ctx, cache.PurposePasswordReset, token)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})
}
