package services

import (
	"context"
	"fmt"

	"github.com/jinzhu/inflection"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// extractRelationships populates the aggregate's relationships from
// foreign-key constraints. Relationship extraction is enrichment, not
// discovery: a failed FK query leaves relationships empty and the rest of
// the pipeline unaffected.
func (s *schemaContextService) extractRelationships(ctx context.Context, reader datasource.CatalogReader, sc *models.SchemaContext, tableNames []string) {
	fks, err := reader.ListForeignKeys(ctx, tableNames)
	if err != nil {
		s.logger.Warn("skipping relationship extraction", zap.Error(err))
		return
	}

	for _, fk := range fks {
		sc.Relationships = append(sc.Relationships, models.Relationship{
			FromTable:      fk.FromTable,
			FromColumn:     fk.FromColumn,
			ToTable:        fk.ToTable,
			ToColumn:       fk.ToColumn,
			ConstraintName: fk.ConstraintName,
			Description: fmt.Sprintf("Each %s references a %s via %s",
				inflection.Singular(fk.FromTable), inflection.Singular(fk.ToTable), fk.FromColumn),
		})

		if table, ok := sc.Tables[fk.FromTable]; ok {
			table.ForeignKeys = append(table.ForeignKeys, models.ForeignKeyRef{
				Column:           fk.FromColumn,
				ReferencedTable:  fk.ToTable,
				ReferencedColumn: fk.ToColumn,
			})
		}
	}
}
