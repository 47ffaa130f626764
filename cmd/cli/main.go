package main

import (
	"context"
	"fmt"
	"konsulin-admin-console/internal/app/config"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/app/delivery/cli"
	"konsulin-admin-console/internal/app/drivers/database"
	"konsulin-admin-console/internal/app/drivers/logger"
	"konsulin-admin-console/internal/app/services/shared/apiclient"
	"konsulin-admin-console/internal/app/services/shared/locker"
	"konsulin-admin-console/internal/app/services/shared/redis"
	"konsulin-admin-console/internal/app/services/shared/token"
	"konsulin-admin-console/internal/app/services/specializations"
	"konsulin-admin-console/internal/pkg/constvars"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewCLILogger(driverConfig.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	if err := internalConfig.Validate(); err != nil {
		log.Error("Invalid configuration", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A shared redis lock keeps the CLI from racing the console on one record.
	var lockerService contracts.LockerService = locker.NewMemoryLocker(log)
	if internalConfig.Locker.Driver == constvars.LockerDriverRedis {
		redisClient, err := database.NewRedisClient(ctx, driverConfig, log)
		if err != nil {
			log.Error("Could not connect to Redis", zap.Error(err))
			return 1
		}
		defer redisClient.Close()
		lockerService = locker.NewLockService(redis.NewRedisRepository(redisClient), log)
	}

	requestTimeout := time.Duration(internalConfig.API.RequestTimeoutInSeconds) * time.Second
	tokenProvider := token.NewStaticProvider(internalConfig.Session.StaticToken)
	apiClient := apiclient.NewAPIClient(apiclient.Options{
		BaseUrl:              internalConfig.API.BaseUrl,
		Timeout:              requestTimeout,
		MaxRequestsPerSecond: internalConfig.API.MaxRequestsPerSecond,
		RequestBurst:         internalConfig.API.RequestBurst,
	}, tokenProvider, log)

	specializationUsecase := specializations.NewSpecializationUsecase(
		specializations.NewSpecializationAPIClient(apiClient, log),
		tokenProvider,
		token.NewJWTInspector(),
		lockerService,
		time.Duration(internalConfig.Locker.TTLInSeconds)*time.Second,
		log,
	)

	root := cli.NewRootCommand(cli.Dependencies{
		SpecializationUsecase: specializationUsecase,
		APIClient:             apiClient,
		Log:                   log,
		In:                    os.Stdin,
		Out:                   os.Stdout,
		Timeout:               requestTimeout,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "specctl: %v\n", err)
		return 1
	}
	return 0
}
