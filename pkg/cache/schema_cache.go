// Package cache provides the fail-open schema-context cache backend.
//
// The backend is modeled as a capability interface with two variants:
// a Redis-backed cache and an Unavailable no-op. Every method on both
// variants is non-throwing; backend failures degrade to cache misses so the
// pipeline's output never depends on the cache being reachable.
package cache

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// SchemaCache is the capability surface the orchestrator requires from a
// cache backend. Implementations must never return errors: a failed read is
// a miss, a failed write reports false.
type SchemaCache interface {
	// IsConnected reports whether a backend is reachable right now.
	IsConnected() bool

	// Get returns the cached schema context for key, or ok=false on miss,
	// corrupt entry, or unreachable backend.
	Get(ctx context.Context, key string) (*models.SchemaContext, bool)

	// Set stores the schema context under key with the given TTL and
	// reports whether the write succeeded.
	Set(ctx context.Context, key string, sc *models.SchemaContext, ttl time.Duration) bool

	// GenerateKey computes the deterministic cache key for a request.
	GenerateKey(tableNames []string, includeSamples bool) string
}

// GenerateKey computes the cache key for a schema-context request. The key
// is a pure function of the parameters: table names are sorted before
// joining so caller-supplied ordering never changes the key.
func GenerateKey(tableNames []string, includeSamples bool) string {
	key := "schema:all_tables"
	if len(tableNames) > 0 {
		sorted := make([]string, len(tableNames))
		copy(sorted, tableNames)
		sort.Strings(sorted)
		key = "schema:" + strings.Join(sorted, "_")
	}
	if includeSamples {
		key += ":with_samples"
	}
	return key
}
