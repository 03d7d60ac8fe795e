package sql

import "strings"

// QuoteLiteral renders s as a single-quoted SQL string literal, doubling
// embedded quotes per the SQL standard.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteIdentifier renders name as a double-quoted SQL identifier.
// Callers must only pass names validated against the discovered catalog.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
