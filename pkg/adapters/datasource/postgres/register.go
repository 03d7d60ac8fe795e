package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/config"
)

func init() {
	datasource.Register(datasource.AdapterRegistration{
		Info: datasource.AdapterInfo{
			Type:        "postgres",
			DisplayName: "PostgreSQL",
			Description: "PostgreSQL 12+ catalog introspection",
		},
		Factory: func(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (datasource.Connector, error) {
			return NewConnector(ctx, cfg, logger)
		},
	})
}
