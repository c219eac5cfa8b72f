package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todos")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.False(t, cfg.IsProduction())
	require.Equal(t, 24*time.Hour, cfg.TokenTTL())
	require.Equal(t, 10*time.Second, cfg.RequestTimeout())
	require.NotEmpty(t, cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todos")
	t.Setenv("PORT", "3001")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRE_HOURS", "1")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "3001", cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, time.Hour, cfg.TokenTTL())
	require.Equal(t, 3*time.Second, cfg.RequestTimeout())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todos")
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}
