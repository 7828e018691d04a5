package cache

import (
	"context"
	"fmt"
	"time"

	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type TokenPurpose string

const (
	PurposePasswordReset TokenPurpose = "reset"
	PurposeVerifyEmail   TokenPurpose = "verify"
)

// TokenStore keeps single-use tokens for password reset and email verification.
type TokenStore interface {
	Issue(ctx context.Context, purpose TokenPurpose, userID uuid.UUID, ttl time.Duration) (string, error)
	// Consume returns the owner of token and invalidates it.
	Consume(ctx context.Context, purpose TokenPurpose, token string) (uuid.UUID, error)
}

type RedisTokenStoreImpl struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &RedisTokenStoreImpl{
		client: client,
	}
}

func (s *RedisTokenStoreImpl) getTokenKey(purpose TokenPurpose, token string) string {
	return fmt.Sprintf("token:%s:%s", purpose, token)
}

func (s *RedisTokenStoreImpl) Issue(ctx context.Context, purpose TokenPurpose, userID uuid.UUID, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.getTokenKey(purpose, token), userID.String(), ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStoreImpl) Consume(ctx context.Context, purpose TokenPurpose, token string) (uuid.UUID, error) {
	val, err := s.client.GetDel(ctx, s.getTokenKey(purpose, token)).Result()
	if err == redis.Nil {
		return uuid.Nil, apperrors.ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token owner: %v", err)
	}
	return userID, nil
}
