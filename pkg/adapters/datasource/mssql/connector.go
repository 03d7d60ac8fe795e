package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/microsoft/go-mssqldb" // register sqlserver driver
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/config"
	"github.com/dbagent-inc/schema-engine/pkg/logging"
)

// Connector owns a database/sql pool for SQL Server and hands out one
// dedicated connection per pipeline run.
type Connector struct {
	db     *sql.DB
	schema string
	logger *zap.Logger
}

// NewConnector connects to the configured SQL Server catalog.
// If logger is nil, a no-op logger is used.
func NewConnector(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*Connector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dsn := connectionString(cfg)
	logger.Debug("connecting to sqlserver catalog",
		zap.String("target", logging.SanitizeConnectionString(dsn)))

	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlserver: %s", logging.SanitizeError(err))
	}
	if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConnections))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlserver: %w", err)
	}

	schema := cfg.Schema
	if schema == "" || schema == "public" {
		schema = "dbo"
	}

	return &Connector{db: db, schema: schema, logger: logger}, nil
}

// connectionString prefers an explicit URL, otherwise builds a
// sqlserver:// URL from the discrete fields.
func connectionString(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		RawQuery: url.Values{"database": []string{cfg.Database}}.Encode(),
	}
	return u.String()
}

// Type identifies this connector as the sqlserver driver.
func (c *Connector) Type() string { return "sqlserver" }

// OpenCatalog acquires a dedicated connection scoped to one pipeline run.
func (c *Connector) OpenCatalog(ctx context.Context) (datasource.CatalogReader, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire sqlserver connection: %w", err)
	}
	return &Catalog{conn: conn, schema: c.schema, logger: c.logger}, nil
}

// Close releases the pool.
func (c *Connector) Close() {
	_ = c.db.Close()
}

// Ensure Connector implements datasource.Connector at compile time.
var _ datasource.Connector = (*Connector)(nil)
