package config_test

import (
	"testing"

	"github.com/Houeta/staff-api/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("POSTGRES_HOST", "testHost")
	t.Setenv("POSTGRES_PORT", "12345")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "adminpass")
	t.Setenv("POSTGRES_DB", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "testHost", cfg.Postgres.Host)
	assert.Equal(t, "12345", cfg.Postgres.Port)
	assert.Equal(t, "admin", cfg.Postgres.User)
	assert.Equal(t, "adminpass", cfg.Postgres.Password)
	assert.Equal(t, "testName", cfg.Postgres.Dbname)
}

func TestMustLoad_Defaults(t *testing.T) {
	// viper's AllowEmptyEnv is off by default, so empty values fall through
	// to the registered defaults.
	for _, key := range []string{
		"APP_ENV", "APP_HOST", "APP_PORT",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	} {
		t.Setenv(key, "")
	}

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "appuser", cfg.Postgres.User)
	assert.Equal(t, "apppass", cfg.Postgres.Password)
	assert.Equal(t, "appdb", cfg.Postgres.Dbname)
}
