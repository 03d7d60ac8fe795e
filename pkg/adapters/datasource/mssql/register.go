package mssql

import (
	"context"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/config"
)

func init() {
	datasource.Register(datasource.AdapterRegistration{
		Info: datasource.AdapterInfo{
			Type:        "sqlserver",
			DisplayName: "Microsoft SQL Server",
			Description: "SQL Server 2017+ catalog introspection",
		},
		Factory: func(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (datasource.Connector, error) {
			return NewConnector(ctx, cfg, logger)
		},
	})
}
