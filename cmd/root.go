package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "schema-engine",
	Short: "Assemble semantically enriched database schema context for SQL agents",
	Long: `schema-engine introspects a relational database and assembles a schema
context enriched with semantic annotations: inferred column types,
categorical value inventories, entity-to-filter mappings, and a natural
language guide for query generation.

Examples:

  schema-engine fetch
  schema-engine fetch --tables users,orders --include-samples
  schema-engine serve
`,
}

// Execute runs the CLI.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads .env (when present) then the layered configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load(rootCmd.Version)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if cfg.Env != "production" {
		logConfig = zap.NewDevelopmentConfig()
	}
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return logConfig.Build()
}
