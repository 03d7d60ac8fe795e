package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/models"
)

type stubSchemaContextService struct {
	result         *models.SchemaContextResult
	gotTables      []string
	gotSamples     bool
	fetchCallCount int
}

func (s *stubSchemaContextService) FetchSchemaContext(_ context.Context, tableNames []string, includeSamples bool) *models.SchemaContextResult {
	s.fetchCallCount++
	s.gotTables = tableNames
	s.gotSamples = includeSamples
	return s.result
}

func (s *stubSchemaContextService) Close() {}

func newTestMux(svc *stubSchemaContextService) *http.ServeMux {
	mux := http.NewServeMux()
	NewSchemaContextHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestSchemaContextHandler_Get(t *testing.T) {
	sc := models.NewSchemaContext("schema:all_tables")
	svc := &stubSchemaContextService{result: models.SuccessResult(sc)}
	mux := newTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/schema-context", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.SchemaContextResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Nil(t, svc.gotTables)
	assert.False(t, svc.gotSamples)
}

func TestSchemaContextHandler_ParsesQueryParameters(t *testing.T) {
	svc := &stubSchemaContextService{result: models.SuccessResult(models.NewSchemaContext("k"))}
	mux := newTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/schema-context?tables=users,%20orders&include_samples=true", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"users", "orders"}, svc.gotTables)
	assert.True(t, svc.gotSamples)
}

func TestSchemaContextHandler_PipelineError(t *testing.T) {
	svc := &stubSchemaContextService{result: models.ErrorResult("Database error: connection refused")}
	mux := newTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/schema-context", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "schema_context_failed", body["error"])
	assert.Equal(t, "Database error: connection refused", body["message"])
}

func TestSchemaContextHandler_RejectsNonGet(t *testing.T) {
	svc := &stubSchemaContextService{result: models.SuccessResult(models.NewSchemaContext("k"))}
	mux := newTestMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/schema-context", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, svc.fetchCallCount)
}
