package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/services"
)

// SchemaContextHandler exposes the assembled schema context over REST.
type SchemaContextHandler struct {
	svc    services.SchemaContextService
	logger *zap.Logger
}

// NewSchemaContextHandler creates a new SchemaContextHandler.
func NewSchemaContextHandler(svc services.SchemaContextService, logger *zap.Logger) *SchemaContextHandler {
	return &SchemaContextHandler{svc: svc, logger: logger}
}

// RegisterRoutes registers the schema context routes on the given mux.
func (h *SchemaContextHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/schema-context", h.Get)
}

// Get handles GET /api/schema-context requests.
// Query parameters: tables (comma-separated list), include_samples (bool).
func (h *SchemaContextHandler) Get(w http.ResponseWriter, r *http.Request) {
	var tableNames []string
	if raw := r.URL.Query().Get("tables"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				tableNames = append(tableNames, name)
			}
		}
	}
	includeSamples := r.URL.Query().Get("include_samples") == "true"

	result := h.svc.FetchSchemaContext(r.Context(), tableNames, includeSamples)
	if result.Status == "error" {
		if err := ErrorResponse(w, http.StatusBadGateway, "schema_context_failed", result.Message); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to encode schema context response", zap.Error(err))
	}
}
