package mssql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbagent-inc/schema-engine/pkg/config"
)

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "[status]", quoteIdent("status"))
	assert.Equal(t, "[we]]ird]", quoteIdent("we]ird"))
}

func TestTableRef(t *testing.T) {
	c := &Catalog{schema: "dbo"}
	assert.Equal(t, "[dbo].[users]", c.tableRef("users"))
}

func TestTableFilter(t *testing.T) {
	filter, args := tableFilter("t.TABLE_NAME", nil, 2)
	assert.Empty(t, filter)
	assert.Empty(t, args)

	filter, args = tableFilter("t.TABLE_NAME", []string{"users", "orders"}, 2)
	assert.Equal(t, " AND t.TABLE_NAME IN (@p2, @p3)", filter)
	assert.Equal(t, []any{"users", "orders"}, args)

	// Offsets continue from previous parameters.
	filter, _ = tableFilter("x", []string{"a"}, 4)
	assert.Equal(t, " AND x IN (@p4)", filter)
}

func TestConnectionString(t *testing.T) {
	cs := connectionString(&config.DatabaseConfig{
		Host: "sql.example.com", Port: 1433,
		User: "reader", Password: "secret", Database: "sales",
	})
	assert.Contains(t, cs, "sqlserver://")
	assert.Contains(t, cs, "sql.example.com:1433")
	assert.Contains(t, cs, "database=sales")

	assert.Equal(t, "sqlserver://u@h?database=d",
		connectionString(&config.DatabaseConfig{URL: "sqlserver://u@h?database=d"}))
}
