package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/config"
)

type stubConnector struct{ dsType string }

func (s *stubConnector) Type() string { return s.dsType }
func (s *stubConnector) OpenCatalog(context.Context) (CatalogReader, error) {
	return nil, nil
}
func (s *stubConnector) Close() {}

func TestRegistry(t *testing.T) {
	Register(AdapterRegistration{
		Info: AdapterInfo{Type: "stubdb", DisplayName: "Stub DB"},
		Factory: func(_ context.Context, _ *config.DatabaseConfig, _ *zap.Logger) (Connector, error) {
			return &stubConnector{dsType: "stubdb"}, nil
		},
	})

	assert.True(t, IsRegistered("stubdb"))
	assert.False(t, IsRegistered("oracle"))

	var found bool
	for _, info := range RegisteredAdapters() {
		if info.Type == "stubdb" {
			found = true
		}
	}
	assert.True(t, found)

	connector, err := NewConnector(context.Background(), &config.DatabaseConfig{Type: "stubdb"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "stubdb", connector.Type())
}

func TestNewConnector_UnknownType(t *testing.T) {
	_, err := NewConnector(context.Background(), &config.DatabaseConfig{Type: "nosuchdb"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown datasource type")
}
