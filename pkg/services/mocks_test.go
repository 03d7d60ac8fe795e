package services

import (
	"context"
	"time"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/cache"
	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// columnProbe holds canned profiling results for one (table, column) pair.
type columnProbe struct {
	values      []any
	distinct    int64
	valuesErr   error
	distinctErr error
}

type mockCatalogReader struct {
	columns     []datasource.TableColumn
	columnsErr  error
	primaryKeys []datasource.PrimaryKey
	pksErr      error
	foreignKeys []datasource.ForeignKeyMetadata
	fksErr      error
	probes      map[string]columnProbe // "table.column"

	closed bool
}

func (m *mockCatalogReader) ListTableColumns(_ context.Context, _ []string) ([]datasource.TableColumn, error) {
	return m.columns, m.columnsErr
}

func (m *mockCatalogReader) ListPrimaryKeys(_ context.Context, _ []string) ([]datasource.PrimaryKey, error) {
	return m.primaryKeys, m.pksErr
}

func (m *mockCatalogReader) ListForeignKeys(_ context.Context, _ []string) ([]datasource.ForeignKeyMetadata, error) {
	return m.foreignKeys, m.fksErr
}

func (m *mockCatalogReader) DistinctValues(_ context.Context, table, column string, limit int) ([]any, error) {
	probe := m.probes[table+"."+column]
	if probe.valuesErr != nil {
		return nil, probe.valuesErr
	}
	values := probe.values
	if len(values) > limit {
		values = values[:limit]
	}
	return values, nil
}

func (m *mockCatalogReader) CountDistinct(_ context.Context, table, column string) (int64, error) {
	probe := m.probes[table+"."+column]
	if probe.distinctErr != nil {
		return 0, probe.distinctErr
	}
	return probe.distinct, nil
}

func (m *mockCatalogReader) Close(_ context.Context) error {
	m.closed = true
	return nil
}

type mockConnector struct {
	reader  *mockCatalogReader
	openErr error
	opens   int
	closed  bool
}

func (m *mockConnector) Type() string { return "mock" }

func (m *mockConnector) OpenCatalog(_ context.Context) (datasource.CatalogReader, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	m.opens++
	return m.reader, nil
}

func (m *mockConnector) Close() { m.closed = true }

// mockCache is an in-memory SchemaCache with failure toggles.
type mockCache struct {
	entries   map[string]*models.SchemaContext
	connected bool
	setFails  bool

	gets, sets int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]*models.SchemaContext), connected: true}
}

func (m *mockCache) IsConnected() bool { return m.connected }

func (m *mockCache) Get(_ context.Context, key string) (*models.SchemaContext, bool) {
	m.gets++
	sc, ok := m.entries[key]
	return sc, ok
}

func (m *mockCache) Set(_ context.Context, key string, sc *models.SchemaContext, _ time.Duration) bool {
	m.sets++
	if m.setFails {
		return false
	}
	m.entries[key] = sc
	return true
}

func (m *mockCache) GenerateKey(tableNames []string, includeSamples bool) string {
	return cache.GenerateKey(tableNames, includeSamples)
}
