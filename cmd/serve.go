package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	_ "github.com/dbagent-inc/schema-engine/pkg/adapters/datasource/mssql"
	_ "github.com/dbagent-inc/schema-engine/pkg/adapters/datasource/postgres"
	"github.com/dbagent-inc/schema-engine/pkg/cache"
	"github.com/dbagent-inc/schema-engine/pkg/database"
	"github.com/dbagent-inc/schema-engine/pkg/handlers"
	"github.com/dbagent-inc/schema-engine/pkg/mcp"
	"github.com/dbagent-inc/schema-engine/pkg/mcp/tools"
	"github.com/dbagent-inc/schema-engine/pkg/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schema context over HTTP and MCP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		ctx := context.Background()

		connector, err := datasource.NewConnector(ctx, &cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer connector.Close()

		schemaCache := cache.New(database.NewRedisClient(&cfg.Redis), logger)
		svc := services.NewSchemaContextService(connector, schemaCache,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second, logger)

		mcpServer := mcp.NewServer("schema-engine", cfg.Version)
		tools.RegisterSchemaContextTools(mcpServer.MCP(), &tools.SchemaContextDeps{
			Service: svc,
			Logger:  logger,
		})

		mux := http.NewServeMux()
		handlers.NewHealthHandler(cfg, schemaCache, logger).RegisterRoutes(mux)
		handlers.NewSchemaContextHandler(svc, logger).RegisterRoutes(mux)
		mux.Handle("/mcp", mcpServer.NewStreamableHTTPServer())

		addr := fmt.Sprintf("%s:%s", cfg.BindAddr, cfg.Port)
		logger.Info("starting schema-engine",
			zap.String("addr", addr),
			zap.String("version", cfg.Version),
			zap.String("database_type", cfg.Database.Type),
			zap.Bool("cache_connected", schemaCache.IsConnected()))

		if err := http.ListenAndServe(addr, mux); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}
