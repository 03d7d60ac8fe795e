package cache

import (
	"context"
	"time"

	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// Unavailable is the no-backend variant of SchemaCache: every lookup
// misses and every write reports failure. It stands in when Redis is not
// configured or could not be reached at startup, degrading the orchestrator
// to compute-on-every-request with no behavior change beyond latency.
type Unavailable struct{}

// IsConnected always reports false.
func (Unavailable) IsConnected() bool { return false }

// Get always misses.
func (Unavailable) Get(context.Context, string) (*models.SchemaContext, bool) {
	return nil, false
}

// Set always reports failure.
func (Unavailable) Set(context.Context, string, *models.SchemaContext, time.Duration) bool {
	return false
}

// GenerateKey still yields the canonical key so metadata stays consistent
// whether or not a backend exists.
func (Unavailable) GenerateKey(tableNames []string, includeSamples bool) string {
	return GenerateKey(tableNames, includeSamples)
}
