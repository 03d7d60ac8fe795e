package services

import (
	"fmt"

	"github.com/dbagent-inc/schema-engine/pkg/models"
	"github.com/dbagent-inc/schema-engine/pkg/sql"
)

// buildNaturalLanguageGuide compiles entity mappings into a lookup guide:
// each entity term maps to a ready-to-execute query template. This stage is
// a pure transformation of the aggregate and issues no database queries.
func buildNaturalLanguageGuide(sc *models.SchemaContext) {
	sc.NaturalLanguageGuide.AvailableTables = sc.TableNames()

	for term, mapping := range sc.EntityMappings {
		sc.NaturalLanguageGuide.EntityResolution[term] = models.EntityResolution{
			MapsTo: fmt.Sprintf("SELECT * FROM %s WHERE %s",
				sql.QuoteIdentifier(mapping.Table), mapping.FilterCondition),
			Description: mapping.Description,
		}
	}
}
