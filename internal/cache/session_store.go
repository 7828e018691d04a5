package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type SessionStore interface {
	// Create opens a session for user that expires after ttl.
	Create(ctx context.Context, user model.CurrentUser, ttl time.Duration) (*model.Session, error)
	Get(ctx context.Context, token string) (*model.Session, error)
	// Delete ends the session; deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

type RedisSessionStoreImpl struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &RedisSessionStoreImpl{
		client: client,
	}
}

func (s *RedisSessionStoreImpl) getSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisSessionStoreImpl) Create(ctx context.Context, user model.CurrentUser, ttl time.Duration) (*model.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	key := s.getSessionKey(token)
	expiresAt := time.Now().Add(ttl).UTC()

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"user_id":        user.ID.String(),
		"email":          user.Email,
		"email_verified": strconv.FormatBool(user.EmailVerified),
		"expires_at":     expiresAt.Unix(),
	})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return &model.Session{Token: token, User: user, ExpiresAt: expiresAt}, nil
}

func (s *RedisSessionStoreImpl) Get(ctx context.Context, token string) (*model.Session, error) {
	result, err := s.client.HGetAll(ctx, s.getSessionKey(token)).Result()
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, apperrors.ErrSessionNotFound
	}

	userID, err := uuid.Parse(result["user_id"])
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %v", err)
	}
	verified, err := strconv.ParseBool(result["email_verified"])
	if err != nil {
		return nil, fmt.Errorf("invalid email_verified: %v", err)
	}
	expires, err := strconv.ParseInt(result["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid expires_at: %v", err)
	}

	return &model.Session{
		Token: token,
		User: model.CurrentUser{
			ID:            userID,
			Email:         result["email"],
			EmailVerified: verified,
		},
		ExpiresAt: time.Unix(expires, 0).UTC(),
	}, nil
}

func (s *RedisSessionStoreImpl) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.getSessionKey(token)).Err()
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
