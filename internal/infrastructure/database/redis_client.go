package database

import (
	"context"
	"time"

	"inspection_billing/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis when REDIS_ADDR is set. It returns nil
// without error when Redis is not configured.
func NewRedisClient(ctx context.Context, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Info("[database] redis not configured; ledger lock disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		_ = rdb.Close()
		log.Error("[database] could not connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return nil, err
	}
	log.Info("[database] redis client initialized", zap.String("addr", cfg.RedisAddr))
	return rdb, nil
}
