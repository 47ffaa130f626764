package config

import (
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "console.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "console_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                      utils.GetEnvString("APP_PORT", ":3000"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			CORSAllowedOrigins:        utils.GetEnvCSV("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		API: API{
			BaseUrl:                 strings.TrimRight(utils.GetEnvString("API_BASE_URL", constvars.DefaultAPIBaseURL), "/"),
			RequestTimeoutInSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvFloat("API_MAX_REQUESTS_PER_SECOND", 0),
			RequestBurst:            utils.GetEnvInt("API_REQUEST_BURST", 5),
		},
		Locker: Locker{
			Driver:       utils.GetEnvString("LOCKER_DRIVER", constvars.LockerDriverMemory),
			TTLInSeconds: utils.GetEnvInt("LOCKER_TTL_IN_SECONDS", 30),
		},
		Session: Session{
			TokenCookieName: utils.GetEnvString("SESSION_TOKEN_COOKIE_NAME", "adminToken"),
			StaticToken:     utils.GetEnvString("ADMIN_TOKEN", ""),
		},
	}
}

// Validate checks the assembled configuration before anything is wired.
func (c *InternalConfig) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return exceptions.BuildNewCustomError(err, exceptions.KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigValidation+": "+exceptions.FormatValidationErrors(err))
	}
	return nil
}
