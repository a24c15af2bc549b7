package database

import (
	"context"
	"fmt"
	"time"

	"chatlog_service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewRedisClient init redis connection, single node or sentinel
func NewRedisClient(ctx context.Context, c RedisConnection) (*redis.Client, error) {
	var rdb *redis.Client
	if c.MasterName != "" && len(c.SentinelAddrs) > 0 {
		rdb = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    c.MasterName,    // 哨兵主节点名称
			SentinelAddrs: c.SentinelAddrs, // 哨兵地址列表
			Password:      c.Password,
			DB:            c.DB,
		})
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     c.Addr,
			Password: c.Password,
			DB:       c.DB,
		})
	}

	var err error
	for i := 0; i <= c.RetryCount; i++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			return rdb, nil
		}
		logger.Log.Warn(
			"Failed to connect to redis, retrying...",
			zap.Int("attempt", i+1),
			zap.String("address", c.Addr),
			zap.Strings("sentinels", c.SentinelAddrs),
			zap.Error(err),
		)
		if i < c.RetryCount {
			time.Sleep(c.RetryInterval)
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect to redis: %w", err)
}
