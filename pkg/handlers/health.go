package handlers

import (
	"net/http"
	"runtime"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/cache"
	"github.com/dbagent-inc/schema-engine/pkg/config"
)

// PingResponse reports service identity plus the wiring the pipeline
// depends on: the active catalog adapter and whether a cache backend is
// reachable right now.
type PingResponse struct {
	Status         string   `json:"status"`
	Service        string   `json:"service"`
	Version        string   `json:"version"`
	GoVersion      string   `json:"go_version"`
	Environment    string   `json:"environment"`
	DatabaseType   string   `json:"database_type"`
	CacheConnected bool     `json:"cache_connected"`
	Adapters       []string `json:"adapters"`
}

// HealthHandler handles liveness and ping endpoints.
type HealthHandler struct {
	cfg    *config.Config
	cache  cache.SchemaCache
	logger *zap.Logger
}

// NewHealthHandler creates a HealthHandler over the given configuration and
// cache backend.
func NewHealthHandler(cfg *config.Config, schemaCache cache.SchemaCache, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, cache: schemaCache, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ping", h.Ping)
}

// Health handles GET /health requests with a bare liveness answer.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ping handles GET /ping requests. Cache connectivity is probed per
// request: the backend is allowed to come and go without a restart.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	adapters := []string{}
	for _, info := range datasource.RegisteredAdapters() {
		adapters = append(adapters, info.Type)
	}

	response := PingResponse{
		Status:         "ok",
		Service:        "schema-engine",
		Version:        h.cfg.Version,
		GoVersion:      runtime.Version(),
		Environment:    h.cfg.Env,
		DatabaseType:   h.cfg.Database.Type,
		CacheConnected: h.cache.IsConnected(),
		Adapters:       adapters,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode ping response", zap.Error(err))
	}
}
