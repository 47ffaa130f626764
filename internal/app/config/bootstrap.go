package config

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	Locker         contracts.LockerService
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	b.Logger.Info("Successfully closing Logger")
	_ = b.Logger.Sync()
	return nil
}
