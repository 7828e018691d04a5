package database

import (
	"context"
	"fmt"
	"time"

	"go-gin-attendance-log/config"

	"github.com/redis/go-redis/v9"
)

const redisClientName = "attendance-log"

// InitRedis connects the client shared by sessions, tokens, snapshots and the
// change feed. Each open live socket parks one pooled connection on XREAD, so
// PoolSize caps how many can be served alongside regular requests.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		ClientName:  redisClientName,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout+time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", rdb.Options().Addr, err)
	}

	return rdb, nil
}
