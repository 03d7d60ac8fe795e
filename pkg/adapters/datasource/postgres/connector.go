package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/config"
	"github.com/dbagent-inc/schema-engine/pkg/database"
	"github.com/dbagent-inc/schema-engine/pkg/logging"
)

// Connector owns a pgx pool and hands out one pooled connection per
// pipeline run. Queries run in autocommit mode rather than a shared
// transaction: a failed per-column probe must not abort the queries
// that follow it.
type Connector struct {
	pool   *pgxpool.Pool
	schema string
	logger *zap.Logger
}

// NewConnector connects to the configured PostgreSQL catalog.
// If logger is nil, a no-op logger is used.
func NewConnector(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*Connector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("connecting to postgres catalog",
		zap.String("target", logging.SanitizeConnectionString(cfg.ConnectionString())))

	pool, err := database.NewPostgresPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %s", logging.SanitizeError(err))
	}

	return &Connector{pool: pool, schema: cfg.Schema, logger: logger}, nil
}

// Type identifies this connector as the postgres driver.
func (c *Connector) Type() string { return "postgres" }

// OpenCatalog acquires a pooled connection scoped to one pipeline run.
func (c *Connector) OpenCatalog(ctx context.Context) (datasource.CatalogReader, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire catalog connection: %w", err)
	}

	catalog := NewCatalog(conn, c.schema, c.logger)
	catalog.release = func(context.Context) error {
		conn.Release()
		return nil
	}
	return catalog, nil
}

// Close releases the pool.
func (c *Connector) Close() {
	c.pool.Close()
}

// Ensure Connector implements datasource.Connector at compile time.
var _ datasource.Connector = (*Connector)(nil)
