package services

import (
	"fmt"
	"strings"

	"github.com/dbagent-inc/schema-engine/pkg/models"
)

// purposeRule matches a table against a structural heuristic.
// Rules are evaluated in slice order; the first match wins. New heuristics
// are added as additional entries, never by replacing the fallback.
type purposeRule struct {
	matches func(t *models.TableInfo) bool
	purpose string
}

var purposeRules = []purposeRule{
	{
		matches: func(t *models.TableInfo) bool {
			return hasColumnNamed(t, "email") && hasColumnNamed(t, "password")
		},
		purpose: "User authentication and profile data",
	},
}

func hasColumnNamed(t *models.TableInfo, name string) bool {
	for _, col := range t.ColumnNames() {
		if strings.ToLower(col) == name {
			return true
		}
	}
	return false
}

// applyTablePurposes assigns exactly one human-readable purpose string per
// table.
func applyTablePurposes(sc *models.SchemaContext) {
	for _, tableName := range sc.TableNames() {
		purpose := fmt.Sprintf("Stores %s information", tableName)
		for _, rule := range purposeRules {
			if rule.matches(sc.Tables[tableName]) {
				purpose = rule.purpose
				break
			}
		}
		sc.SemanticContext.TablePurposes[tableName] = purpose
	}
}
