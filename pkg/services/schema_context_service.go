package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/apperrors"
	"github.com/dbagent-inc/schema-engine/pkg/cache"
	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// SchemaContextService assembles enriched schema contexts for AI SQL
// agents. One instance serves many concurrent requests; each request runs
// the pipeline on its own catalog connection.
type SchemaContextService interface {
	// FetchSchemaContext returns the enriched schema context for the given
	// table subset (nil means all base tables). It never returns an error:
	// fatal failures are reported inside the result envelope.
	FetchSchemaContext(ctx context.Context, tableNames []string, includeSamples bool) *models.SchemaContextResult

	// Close releases the catalog connector.
	Close()
}

type schemaContextService struct {
	connector datasource.Connector
	cache     cache.SchemaCache
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewSchemaContextService wires the pipeline with an explicit connector and
// cache backend. Pass cache.Unavailable{} to disable caching. If logger is
// nil, a no-op logger is used.
func NewSchemaContextService(connector datasource.Connector, schemaCache cache.SchemaCache, cacheTTL time.Duration, logger *zap.Logger) SchemaContextService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &schemaContextService{
		connector: connector,
		cache:     schemaCache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// FetchSchemaContext implements the cache-aside orchestration: key, lookup,
// pipeline on miss, opportunistic write-back. Cache failures degrade to
// misses; catalog failures and panics surface as error results.
func (s *schemaContextService) FetchSchemaContext(ctx context.Context, tableNames []string, includeSamples bool) (result *models.SchemaContextResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("schema context pipeline panicked", zap.Any("panic", r))
			result = models.ErrorResult(fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	cacheKey := s.cache.GenerateKey(tableNames, includeSamples)

	if s.cache.IsConnected() {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			s.logger.Debug("serving schema context from cache", zap.String("key", cacheKey))
			return &models.SchemaContextResult{
				Status:        "success",
				SchemaContext: cached,
				Cached:        true,
			}
		}
	}

	s.logger.Info("fetching schema from database",
		zap.Strings("tables", tableNames),
		zap.Bool("include_samples", includeSamples))

	sc, err := s.buildSchemaContext(ctx, cacheKey, tableNames, includeSamples)
	if err != nil {
		s.logger.Error("schema context pipeline failed", zap.Error(err))
		if apperrors.IsDatabase(err) {
			return models.ErrorResult("Database error: " + err.Error())
		}
		return models.ErrorResult("Unexpected error: " + err.Error())
	}

	if s.cache.IsConnected() {
		if s.cache.Set(ctx, cacheKey, sc, s.cacheTTL) {
			// The flag reports write-back success: the next identical
			// request will be served from cache.
			sc.Metadata.Cached = true
		}
	}

	return models.SuccessResult(sc)
}

// buildSchemaContext runs the five pipeline stages over one catalog
// connection. Catalog discovery failures are fatal; profiling and
// relationship extraction are best-effort.
func (s *schemaContextService) buildSchemaContext(ctx context.Context, cacheKey string, tableNames []string, includeSamples bool) (*models.SchemaContext, error) {
	reader, err := s.connector.OpenCatalog(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	defer func() {
		if cerr := reader.Close(ctx); cerr != nil {
			s.logger.Warn("failed to release catalog connection", zap.Error(cerr))
		}
	}()

	sc := models.NewSchemaContext(cacheKey)

	columns, err := reader.ListTableColumns(ctx, tableNames)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	for _, col := range columns {
		sc.Table(col.TableName).AddColumn(col.ColumnName, models.ColumnInfo{
			DataType:   col.DataType,
			IsNullable: col.IsNullable,
		})
	}

	primaryKeys, err := reader.ListPrimaryKeys(ctx, tableNames)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	for _, pk := range primaryKeys {
		if table, ok := sc.Tables[pk.TableName]; ok {
			table.PrimaryKeys = append(table.PrimaryKeys, pk.ColumnName)
		}
	}

	s.extractRelationships(ctx, reader, sc, tableNames)
	s.analyzeColumnValues(ctx, reader, sc, includeSamples)
	s.buildEntityMappings(sc)
	applyTablePurposes(sc)
	buildNaturalLanguageGuide(sc)

	return sc, nil
}

// Close releases the connector's pool.
func (s *schemaContextService) Close() {
	s.connector.Close()
}
