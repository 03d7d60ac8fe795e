package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/apperrors"
	"github.com/dbagent-inc/schema-engine/pkg/jsonutil"
	"github.com/dbagent-inc/schema-engine/pkg/models"
)

const (
	// distinctSampleLimit bounds how many distinct values one probe fetches.
	distinctSampleLimit = 20
	// categoricalThreshold is the exact distinct-count cutoff for flagging
	// a column categorical.
	categoricalThreshold = 10
	// sampleValueLimit bounds sample values recorded for non-categorical
	// columns when the request asks for samples.
	sampleValueLimit = 5
)

// isTextType reports whether a declared type belongs to the text family
// eligible for categorical detection.
func isTextType(dataType string) bool {
	switch strings.ToLower(dataType) {
	case "text", "varchar", "character varying":
		return true
	}
	return false
}

// inferSemanticType classifies a column by name and declared type.
// Matching is case-insensitive substring matching in fixed priority order;
// the order matters because names can satisfy multiple patterns (valid_at
// contains both "_at" and "id" and must resolve to timestamp).
func inferSemanticType(columnName, dataType string) string {
	_ = dataType // no current rule discriminates on the declared type
	name := strings.ToLower(columnName)
	switch {
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "phone"):
		return "phone"
	case strings.Contains(name, "password"):
		return "password"
	case strings.Contains(name, "status"):
		return "status"
	case strings.Contains(name, "role"):
		return "role"
	case strings.Contains(name, "_at"):
		return "timestamp"
	case strings.Contains(name, "id"):
		return "identifier"
	case strings.Contains(name, "name"):
		return "name"
	default:
		return "unknown"
	}
}

// analyzeColumnValues profiles every discovered column. Profiling is
// best-effort: a failed probe drops that column from the analysis and moves
// on, leaving tables and every other analysis untouched.
func (s *schemaContextService) analyzeColumnValues(ctx context.Context, reader datasource.CatalogReader, sc *models.SchemaContext, includeSamples bool) {
	for _, tableName := range sc.TableNames() {
		table := sc.Tables[tableName]
		for _, columnName := range table.ColumnNames() {
			info := table.Columns[columnName]
			analysis, err := s.profileColumn(ctx, reader, tableName, columnName, info, includeSamples)
			if err != nil {
				s.logger.Debug("omitting column from value analysis",
					zap.String("table", tableName),
					zap.String("column", columnName),
					zap.Error(err))
				continue
			}

			if sc.ColumnValueAnalysis[tableName] == nil {
				sc.ColumnValueAnalysis[tableName] = make(map[string]*models.ColumnAnalysis)
			}
			sc.ColumnValueAnalysis[tableName][columnName] = analysis
		}
	}
}

// profileColumn produces the analysis for one column. Text-family columns
// get a bounded distinct sample plus an exact distinct count; the column is
// categorical iff the exact count is at or below the threshold. The
// two-query design keeps the threshold decision exact without materializing
// unbounded distinct sets.
func (s *schemaContextService) profileColumn(ctx context.Context, reader datasource.CatalogReader, tableName, columnName string, info models.ColumnInfo, includeSamples bool) (*models.ColumnAnalysis, error) {
	analysis := &models.ColumnAnalysis{
		UniqueValues: []any{},
		SemanticType: inferSemanticType(columnName, info.DataType),
	}

	if !isTextType(info.DataType) {
		return analysis, nil
	}

	values, err := reader.DistinctValues(ctx, tableName, columnName, distinctSampleLimit)
	if err != nil {
		return nil, apperrors.Profiling(err)
	}
	distinctCount, err := reader.CountDistinct(ctx, tableName, columnName)
	if err != nil {
		return nil, apperrors.Profiling(err)
	}

	normalized := jsonutil.NormalizeSlice(values)
	if distinctCount <= categoricalThreshold {
		analysis.IsCategorical = true
		analysis.UniqueValues = normalized
	} else if includeSamples {
		n := len(normalized)
		if n > sampleValueLimit {
			n = sampleValueLimit
		}
		analysis.SampleValues = normalized[:n]
	}

	return analysis, nil
}
