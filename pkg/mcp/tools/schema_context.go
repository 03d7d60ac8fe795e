package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/services"
)

// SchemaContextDeps contains dependencies for the schema context tool.
type SchemaContextDeps struct {
	Service services.SchemaContextService
	Logger  *zap.Logger
}

// RegisterSchemaContextTools registers tools for schema context assembly.
func RegisterSchemaContextTools(s *server.MCPServer, deps *SchemaContextDeps) {
	registerFetchSchemaContextTool(s, deps)
}

// registerFetchSchemaContextTool exposes the assembled schema context for text2sql.
func registerFetchSchemaContextTool(s *server.MCPServer, deps *SchemaContextDeps) {
	tool := mcp.NewTool(
		"fetch_schema_context",
		mcp.WithDescription(
			"Get database schema enriched with semantic annotations for intelligent query generation. "+
				"Includes per-column semantic types (email, identifier, timestamp), categorical value inventories, "+
				"entity-to-filter mappings (e.g. 'actives' -> \"status\" = 'active'), and a natural language guide. "+
				"Use this to resolve business terms to concrete WHERE clauses and generate accurate SQL.",
		),
		mcp.WithArray(
			"table_names",
			mcp.Description("Optional: restrict the context to these tables (default: all tables in the schema)"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean(
			"include_samples",
			mcp.Description("If true, include sample values for non-categorical text columns (default: false)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tableNames := getStringSlice(req, "table_names")

		includeSamples := false
		if val, ok := getOptionalBool(req, "include_samples"); ok {
			includeSamples = val
		}

		result := deps.Service.FetchSchemaContext(ctx, tableNames, includeSamples)
		if result.Status == "error" {
			deps.Logger.Warn("schema context request failed", zap.String("message", result.Message))
		}

		jsonResult, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}

// getOptionalBool extracts an optional boolean parameter from the request.
func getOptionalBool(req mcp.CallToolRequest, key string) (bool, bool) {
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		if val, ok := args[key].(bool); ok {
			return val, true
		}
	}
	return false, false
}

// getStringSlice extracts an optional string array parameter, skipping
// non-string elements.
func getStringSlice(req mcp.CallToolRequest, key string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
