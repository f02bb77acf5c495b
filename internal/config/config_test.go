package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAuthEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AUTH_JWT_SECRET", "SECRET_KEY", "APP_ENV", "AUTH_DEV_INSECURE_SECRET"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Auth.InsecureDevSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, time.Duration(0), cfg.Auth.TokenLeeway())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.False(t, cfg.App.IsDevelopment())
}

func TestLoad_SecretKeyFallback(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("SECRET_KEY", "from-secret-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-secret-key", cfg.Auth.JWTSecret)
}

func TestLoad_MissingSecretIsFatalOutsideDevelopment(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_DEV_INSECURE_SECRET", "true")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_MissingSecretInDevelopmentWithoutFlag(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("APP_ENV", "development")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_DevelopmentInsecureSecret(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_DEV_INSECURE_SECRET", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.InsecureDevSecret)
	assert.Equal(t, devInsecureSecret, cfg.Auth.JWTSecret)
}

func TestLoad_CORSOrigins(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "x")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSOrigins)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	clearAuthEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "x")
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	require.Error(t, err)
}
