package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for schema-engine.
// Configuration can come from a YAML file (config.yaml) or environment
// variables; environment variables override YAML values. Secrets
// (passwords) must only come from environment variables.
type Config struct {
	// Server configuration (MCP transport)
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"3443"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database holds catalog connection settings.
	Database DatabaseConfig `yaml:"database"`

	// Redis holds optional cache backend settings.
	Redis RedisConfig `yaml:"redis"`

	// Cache holds schema-context cache behavior.
	Cache CacheConfig `yaml:"cache"`
}

// DatabaseConfig holds catalog database configuration.
type DatabaseConfig struct {
	// URL, when set, overrides the discrete fields below
	// (same contract as the DATABASE_URL the original tooling used).
	URL      string `yaml:"-" env:"DATABASE_URL"`
	Type     string `yaml:"type" env:"DBTYPE" env-default:"postgres"`
	Host     string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User     string `yaml:"user" env:"PGUSER" env-default:"postgres"`
	Password string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database string `yaml:"database" env:"PGDATABASE" env-default:"postgres"`
	SSLMode  string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	// Schema is the namespace searched for base tables.
	Schema string `yaml:"schema" env:"DBSCHEMA" env-default:"public"`
	// MaxConnections bounds the pgx pool size.
	MaxConnections int32 `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
}

// RedisConfig holds optional Redis cache configuration.
// An empty Host means caching is disabled and the engine degrades to
// compute-on-every-request.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// CacheConfig controls schema-context cache entries.
type CacheConfig struct {
	// TTLSeconds is how long a cached schema context stays valid.
	TTLSeconds int `yaml:"ttl_seconds" env:"SCHEMA_CACHE_TTL_SECONDS" env-default:"3600"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When config.yaml does not exist, configuration comes from the
// environment alone. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	return cfg, nil
}

// ConnectionString returns the catalog connection string, preferring the
// explicit URL override when present.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
