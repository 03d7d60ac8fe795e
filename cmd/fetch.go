package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	_ "github.com/dbagent-inc/schema-engine/pkg/adapters/datasource/mssql"
	_ "github.com/dbagent-inc/schema-engine/pkg/adapters/datasource/postgres"
	"github.com/dbagent-inc/schema-engine/pkg/cache"
	"github.com/dbagent-inc/schema-engine/pkg/database"
	"github.com/dbagent-inc/schema-engine/pkg/services"
)

var (
	fetchTables         []string
	fetchIncludeSamples bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the assembled schema context and print it as JSON",
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

		result := svc.FetchSchemaContext(ctx, fetchTables, fetchIncludeSamples)

		green := color.New(color.FgGreen, color.Bold)
		yellow := color.New(color.FgYellow, color.Bold)
		red := color.New(color.FgRed, color.Bold)

		switch {
		case result.Status == "error":
			red.Fprintf(os.Stderr, "❌ %s\n", result.Message)
			os.Exit(1)
		case result.Cached:
			green.Fprintln(os.Stderr, "✅ Schema context served from cache")
		case !schemaCache.IsConnected():
			yellow.Fprintln(os.Stderr, "⚠️  Cache unavailable, schema context built from database")
		default:
			green.Fprintln(os.Stderr, "✅ Schema context built from database")
		}

		out, err := json.MarshalIndent(result.SchemaContext, "", "  ")
		if err != nil {
			return fmt.Errorf("encode schema context: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringSliceVar(&fetchTables, "tables", nil, "Restrict the context to these tables (default: all tables)")
	fetchCmd.Flags().BoolVar(&fetchIncludeSamples, "include-samples", false, "Include sample values for non-categorical text columns")
}
