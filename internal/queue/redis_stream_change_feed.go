package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const ChangeStreamKey = "events:changes"

// RedisStreamChangeFeedConfig holds tunables; nil or zero fields use defaults.
type RedisStreamChangeFeedConfig struct {
	ReadBlockTime time.Duration // XREAD block time
	MaxLen        int64         // approximate stream length cap
}

func defaultRedisStreamChangeFeedConfig() RedisStreamChangeFeedConfig {
	return RedisStreamChangeFeedConfig{
		ReadBlockTime: 2 * time.Second,
		MaxLen:        10000,
	}
}

// RedisStreamChangeFeedImpl shares changes between server instances. Every
// listener reads the whole stream and keeps only its user's entries.
type RedisStreamChangeFeedImpl struct {
	client    *redis.Client
	streamKey string
	cfg       RedisStreamChangeFeedConfig
}

func NewRedisStreamChangeFeed(client *redis.Client, config *RedisStreamChangeFeedConfig) ChangeFeed {
	cfg := defaultRedisStreamChangeFeedConfig()
	if config != nil {
		if config.ReadBlockTime > 0 {
			cfg.ReadBlockTime = config.ReadBlockTime
		}
		if config.MaxLen > 0 {
			cfg.MaxLen = config.MaxLen
		}
	}
	return &RedisStreamChangeFeedImpl{
		client:    client,
		streamKey: ChangeStreamKey,
		cfg:       cfg,
	}
}

func (f *RedisStreamChangeFeedImpl) Publish(ctx context.Context, change model.EventChange) error {
	changeJSON, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	_, err = f.client.XAdd(ctx, &redis.XAddArgs{
		Stream: f.streamKey,
		MaxLen: f.cfg.MaxLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"user_id": change.UserID.String(),
			"change":  string(changeJSON),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (f *RedisStreamChangeFeedImpl) Listen(ctx context.Context, userID uuid.UUID) (<-chan model.EventChange, error) {
	lastID, err := f.tailID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stream tail: %w", err)
	}

	out := make(chan model.EventChange, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				lastID = f.readAndDeliver(ctx, userID, lastID, out)
			}
		}
	}()
	return out, nil
}

// tailID is the newest entry ID, so a listener only sees changes made after it started.
func (f *RedisStreamChangeFeedImpl) tailID(ctx context.Context) (string, error) {
	msgs, err := f.client.XRevRangeN(ctx, f.streamKey, "+", "-", 1).Result()
	if err != nil && err != redis.Nil {
		return "", err
	}
	if len(msgs) == 0 {
		return "0-0", nil
	}
	return msgs[0].ID, nil
}

// readAndDeliver runs one blocking XREAD and returns the ID to continue from.
func (f *RedisStreamChangeFeedImpl) readAndDeliver(ctx context.Context, userID uuid.UUID, lastID string, out chan<- model.EventChange) string {
	streams, err := f.client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{f.streamKey, lastID},
		Count:   100,
		Block:   f.cfg.ReadBlockTime,
	}).Result()

	if err == redis.Nil {
		return lastID
	}
	if err != nil {
		if ctx.Err() != nil {
			return lastID
		}
		logger.WithComponent("feed").Error("XRead failed", zap.Error(err))
		time.Sleep(time.Second)
		return lastID
	}

	for _, stream := range streams {
		if stream.Stream != f.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			lastID = msg.ID
			change, ok := f.decode(msg)
			if !ok || change.UserID != userID {
				continue
			}
			select {
			case out <- change:
			default:
			}
		}
	}
	return lastID
}

func (f *RedisStreamChangeFeedImpl) decode(msg redis.XMessage) (model.EventChange, bool) {
	changeJSON, ok := msg.Values["change"].(string)
	if !ok {
		logger.WithComponent("feed").Warn("invalid message: missing change field", zap.String("message_id", msg.ID))
		return model.EventChange{}, false
	}
	var change model.EventChange
	if err := json.Unmarshal([]byte(changeJSON), &change); err != nil {
		logger.WithComponent("feed").Warn("unmarshal change failed", zap.String("message_id", msg.ID), zap.Error(err))
		return model.EventChange{}, false
	}
	return change, true
}
