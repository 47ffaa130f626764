package main

import (
	"context"
	"konsulin-admin-console/internal/app/config"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/app/delivery/http/controllers"
	"konsulin-admin-console/internal/app/delivery/http/middlewares"
	"konsulin-admin-console/internal/app/delivery/http/render"
	"konsulin-admin-console/internal/app/delivery/http/routers"
	"konsulin-admin-console/internal/app/drivers/database"
	"konsulin-admin-console/internal/app/drivers/logger"
	"konsulin-admin-console/internal/app/services/shared/apiclient"
	"konsulin-admin-console/internal/app/services/shared/locker"
	"konsulin-admin-console/internal/app/services/shared/redis"
	"konsulin-admin-console/internal/app/services/shared/token"
	"konsulin-admin-console/internal/app/services/specializations"
	"konsulin-admin-console/internal/pkg/constvars"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		stdlog.Fatalf("Error while initializing zap logger: %v", err)
	}

	if err := internalConfig.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	var redisClient *goredis.Client
	if internalConfig.Locker.Driver == constvars.LockerDriverRedis {
		redisClient, err = database.NewRedisClient(context.Background(), driverConfig, log)
		if err != nil {
			log.Fatal("Could not connect to Redis", zap.Error(err))
		}
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Error bootstrapping the console", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Console listening",
			zap.String("addr", internalConfig.App.Port),
			zap.String("api_base_url", internalConfig.API.BaseUrl),
			zap.String("locker_driver", internalConfig.Locker.Driver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	stdlog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Locker
	var lockerService contracts.LockerService = locker.NewMemoryLocker(log)
	if bootstrap.Redis != nil {
		lockerService = locker.NewLockService(redis.NewRedisRepository(bootstrap.Redis), log)
	}
	bootstrap.Locker = lockerService

	// Backend
	tokenProvider := token.NewContextProvider()
	apiClient := apiclient.NewAPIClient(apiclient.Options{
		BaseUrl:              internalConfig.API.BaseUrl,
		Timeout:              time.Duration(internalConfig.API.RequestTimeoutInSeconds) * time.Second,
		MaxRequestsPerSecond: internalConfig.API.MaxRequestsPerSecond,
		RequestBurst:         internalConfig.API.RequestBurst,
	}, tokenProvider, log)

	// Specializations
	specializationAPIClient := specializations.NewSpecializationAPIClient(apiClient, log)
	specializationUsecase := specializations.NewSpecializationUsecase(
		specializationAPIClient,
		tokenProvider,
		token.NewJWTInspector(),
		lockerService,
		time.Duration(internalConfig.Locker.TTLInSeconds)*time.Second,
		log,
	)

	renderer, err := render.New()
	if err != nil {
		return err
	}
	specializationController := controllers.NewSpecializationController(
		log,
		specializationUsecase,
		apiClient,
		renderer,
		time.Duration(internalConfig.API.RequestTimeoutInSeconds)*time.Second,
	)

	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, specializationController)
	return nil
}
