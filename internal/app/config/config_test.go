package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("LOCKER_DRIVER", "")
	t.Setenv("SESSION_TOKEN_COOKIE_NAME", "")

	cfg := NewInternalConfig()

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseUrl)
	assert.Equal(t, "memory", cfg.Locker.Driver)
	assert.Equal(t, "adminToken", cfg.Session.TokenCookieName)
	require.NoError(t, cfg.Validate())
}

func TestNewInternalConfig_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.konsulin.care/")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://admin.konsulin.care, https://ops.konsulin.care")
	t.Setenv("LOCKER_DRIVER", "redis")
	t.Setenv("ADMIN_TOKEN", "cli-token")

	cfg := NewInternalConfig()

	assert.Equal(t, "https://api.konsulin.care", cfg.API.BaseUrl)
	assert.Equal(t, []string{"https://admin.konsulin.care", "https://ops.konsulin.care"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "redis", cfg.Locker.Driver)
	assert.Equal(t, "cli-token", cfg.Session.StaticToken)
	require.NoError(t, cfg.Validate())
}

func TestInternalConfig_Validate(t *testing.T) {
	t.Setenv("LOCKER_DRIVER", "etcd")
	t.Setenv("API_BASE_URL", "not a url")

	err := NewInternalConfig().Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}
