package database

import (
	"context"
	"fmt"
	"konsulin-admin-console/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects the shared lock store. It only runs when the
// locker driver is redis.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}

	log.Info("Successfully connected to Redis", zap.String("addr", addr))
	return rdb, nil
}
