package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-gin-attendance-log/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventSnapshotCache holds each user's collection as one JSON array under a
// fixed key. It is read before the database and rewritten on every change.
//
// Writers read Generation before loading from the database and pass it to
// Put; Invalidate bumps the generation, so a load that raced a newer
// change is refused instead of overwriting it.
type EventSnapshotCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, userID uuid.UUID) (events []*model.EventRecord, ok bool, err error)
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	// Put reports false without writing when generation is no longer current.
	Put(ctx context.Context, userID uuid.UUID, generation int64, events []*model.EventRecord) (bool, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type RedisEventSnapshotCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventSnapshotCache(client *redis.Client, ttl time.Duration) EventSnapshotCache {
	return &RedisEventSnapshotCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisEventSnapshotCacheImpl) getSnapshotKey(userID uuid.UUID) string {
	return fmt.Sprintf("events:%s:snapshot", userID)
}

func (c *RedisEventSnapshotCacheImpl) getGenerationKey(userID uuid.UUID) string {
	return fmt.Sprintf("events:%s:generation", userID)
}

func (c *RedisEventSnapshotCacheImpl) Get(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, bool, error) {
	raw, err := c.client.Get(ctx, c.getSnapshotKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	events := make([]*model.EventRecord, 0)
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return events, true, nil
}

func (c *RedisEventSnapshotCacheImpl) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, c.getGenerationKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

func (c *RedisEventSnapshotCacheImpl) Put(ctx context.Context, userID uuid.UUID, generation int64, events []*model.EventRecord) (bool, error) {
	if events == nil {
		events = []*model.EventRecord{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return false, fmt.Errorf("marshal snapshot: %w", err)
	}

	// 世代不一致時放棄寫入，避免舊資料覆蓋新快照
	script := `
		local snapshot_key = KEYS[1]
		local generation_key = KEYS[2]
		local ttl = tonumber(ARGV[3])

		local current = redis.call('GET', generation_key) or '0'
		if current ~= ARGV[1] then
			return 0
		end

		if ttl > 0 then
			redis.call('SET', snapshot_key, ARGV[2], 'PX', ttl)
		else
			redis.call('SET', snapshot_key, ARGV[2])
		end
		return 1
	`

	result, err := c.client.Eval(ctx, script,
		[]string{c.getSnapshotKey(userID), c.getGenerationKey(userID)},
		generation, raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

func (c *RedisEventSnapshotCacheImpl) Invalidate(ctx context.Context, userID uuid.UUID) error {
	script := `
		local snapshot_key = KEYS[1]
		local generation_key = KEYS[2]
		local ttl = tonumber(ARGV[1])

		redis.call('INCR', generation_key)
		if ttl > 0 then
			redis.call('PEXPIRE', generation_key, ttl)
		end
		redis.call('DEL', snapshot_key)
		return 1
	`

	return c.client.Eval(ctx, script,
		[]string{c.getSnapshotKey(userID), c.getGenerationKey(userID)},
		c.ttl.Milliseconds(),
	).Err()
}
