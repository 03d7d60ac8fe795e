package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "127.0.0.1", cfg.BindAddr)
	assert.Equal(t, "3443", cfg.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "public", cfg.Database.Schema)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Empty(t, cfg.Redis.Host, "caching is off unless configured")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DBTYPE", "sqlserver")
	t.Setenv("DBSCHEMA", "sales")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("SCHEMA_CACHE_TTL_SECONDS", "60")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "sqlserver", cfg.Database.Type)
	assert.Equal(t, "sales", cfg.Database.Schema)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "secret", Database: "app", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=app sslmode=disable",
		cfg.ConnectionString())
}

func TestConnectionString_URLOverride(t *testing.T) {
	cfg := DatabaseConfig{
		URL:  "postgres://u:p@db:5432/app",
		Host: "ignored",
	}
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.ConnectionString())
}
