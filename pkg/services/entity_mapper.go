package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/models"
	"github.com/dbagent-inc/schema-engine/pkg/sql"
)

// buildEntityMappings derives natural-language entity terms from the
// values of categorical columns. A term is the lowercased value with a
// trailing "s" unless it already ends in one. Terms are advisory lookups,
// not identifiers: when two (table, column, value) triples collide on a
// term, the later one in table-then-column order wins.
//
// Values are embedded into filter-condition literals, so they are screened
// with libinjection and SQL-escaped first; suspect values are dropped.
func (s *schemaContextService) buildEntityMappings(sc *models.SchemaContext) {
	for _, tableName := range sc.TableNames() {
		table := sc.Tables[tableName]
		for _, columnName := range table.ColumnNames() {
			analysis := sc.ColumnValueAnalysis[tableName][columnName]
			if analysis == nil || !analysis.IsCategorical {
				continue
			}

			for _, raw := range analysis.UniqueValues {
				value, ok := raw.(string)
				if !ok || value == "" {
					continue
				}
				if sql.IsSuspectValue(value) {
					s.logger.Warn("skipping suspect categorical value",
						zap.String("table", tableName),
						zap.String("column", columnName))
					continue
				}

				term := strings.ToLower(value)
				if !strings.HasSuffix(term, "s") {
					term += "s"
				}

				sc.EntityMappings[term] = models.EntityMapping{
					Table:           tableName,
					FilterCondition: fmt.Sprintf("%s = %s", sql.QuoteIdentifier(columnName), sql.QuoteLiteral(value)),
					Description:     fmt.Sprintf("All %ss from %s table", value, tableName),
				}
			}
		}
	}
}
