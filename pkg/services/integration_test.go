package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource/postgres"
	"github.com/dbagent-inc/schema-engine/pkg/cache"
	"github.com/dbagent-inc/schema-engine/pkg/testhelpers"
)

// poolConnector adapts the shared test pool to the Connector seam without
// going through configuration.
type poolConnector struct {
	testDB *testhelpers.TestDB
}

func (p *poolConnector) Type() string { return "postgres" }

func (p *poolConnector) OpenCatalog(context.Context) (datasource.CatalogReader, error) {
	return postgres.NewCatalog(p.testDB.Pool, "public", nil), nil
}

func (p *poolConnector) Close() {}

func TestFetchSchemaContextAgainstPostgres(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	svc := NewSchemaContextService(&poolConnector{testDB: testDB}, cache.Unavailable{}, time.Minute, nil)

	result := svc.FetchSchemaContext(context.Background(), nil, false)
	require.Equal(t, "success", result.Status, result.Message)
	sc := result.SchemaContext

	assert.Equal(t, []string{"orders", "users"}, sc.TableNames())
	assert.Equal(t, []string{"id"}, sc.Tables["users"].PrimaryKeys)

	// Categorical detection against live data
	usersStatus := sc.ColumnValueAnalysis["users"]["status"]
	require.NotNil(t, usersStatus)
	assert.True(t, usersStatus.IsCategorical)
	assert.ElementsMatch(t, []any{"active", "inactive"}, usersStatus.UniqueValues)
	assert.Equal(t, "status", usersStatus.SemanticType)

	// Entity mappings from both tables' categorical columns
	for _, term := range []string{"actives", "inactives", "admins", "members", "pendings", "shippeds", "cancelleds"} {
		assert.Contains(t, sc.EntityMappings, term)
	}
	assert.Equal(t, `"status" = 'active'`, sc.EntityMappings["actives"].FilterCondition)

	// Purpose heuristics and relationships
	assert.Equal(t, "User authentication and profile data", sc.SemanticContext.TablePurposes["users"])
	assert.Equal(t, "Stores orders information", sc.SemanticContext.TablePurposes["orders"])
	require.Len(t, sc.Relationships, 1)
	assert.Equal(t, "Each order references a user via user_id", sc.Relationships[0].Description)

	// Guide entries are executable against the same database
	resolution := sc.NaturalLanguageGuide.EntityResolution["actives"]
	assert.Equal(t, `SELECT * FROM "users" WHERE "status" = 'active'`, resolution.MapsTo)

	rows, err := testDB.Pool.Query(context.Background(), resolution.MapsTo)
	require.NoError(t, err)
	defer rows.Close()
	var matched int
	for rows.Next() {
		matched++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 2, matched)
}

func TestFetchSchemaContext_TableSubsetAgainstPostgres(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	svc := NewSchemaContextService(&poolConnector{testDB: testDB}, cache.Unavailable{}, time.Minute, nil)

	result := svc.FetchSchemaContext(context.Background(), []string{"users"}, false)
	require.Equal(t, "success", result.Status, result.Message)
	sc := result.SchemaContext

	assert.Equal(t, []string{"users"}, sc.TableNames())
	assert.Empty(t, sc.Relationships, "foreign keys leaving the subset are excluded")
	assert.NotContains(t, sc.EntityMappings, "pendings")
	assert.Equal(t, "schema:users", sc.Metadata.CacheKey)
}
