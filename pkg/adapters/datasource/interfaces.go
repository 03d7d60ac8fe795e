// Package datasource defines the catalog access seam between the
// schema-context pipeline and database-specific drivers.
package datasource

import "context"

// TableColumn is one (table, column) row from the catalog, in catalog
// ordinal order. Only base tables in the configured schema appear.
type TableColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	IsNullable bool
}

// PrimaryKey marks one column of a table's primary key.
type PrimaryKey struct {
	TableName  string
	ColumnName string
}

// ForeignKeyMetadata describes one foreign-key constraint column pair.
type ForeignKeyMetadata struct {
	ConstraintName string
	FromTable      string
	FromColumn     string
	ToTable        string
	ToColumn       string
}

// CatalogReader issues read-only queries against one catalog connection.
// A reader is scoped to a single pipeline run: acquired at the start,
// used for all catalog and profiling queries, and released via Close.
//
// When tables is non-empty, every List method restricts its results to
// that set, so primary-key and foreign-key rows never reference tables
// outside the requested subset.
type CatalogReader interface {
	// ListTableColumns returns all columns of all base tables, ordered by
	// table name then ordinal position.
	ListTableColumns(ctx context.Context, tables []string) ([]TableColumn, error)

	// ListPrimaryKeys returns primary-key columns per table.
	ListPrimaryKeys(ctx context.Context, tables []string) ([]PrimaryKey, error)

	// ListForeignKeys returns foreign-key constraints between base tables.
	ListForeignKeys(ctx context.Context, tables []string) ([]ForeignKeyMetadata, error)

	// DistinctValues returns up to limit distinct values of a column.
	// Table and column names must come from the discovered catalog set.
	DistinctValues(ctx context.Context, table, column string, limit int) ([]any, error)

	// CountDistinct returns the exact distinct-value count of a column.
	CountDistinct(ctx context.Context, table, column string) (int64, error)

	// Close releases the underlying connection, rolling back any in-flight
	// transaction. Safe to call after a failed query.
	Close(ctx context.Context) error
}

// Connector owns a long-lived connection pool and hands out per-request
// catalog readers. One connector serves many concurrent requests; each
// OpenCatalog call yields an independent reader.
type Connector interface {
	// Type identifies the driver ("postgres", "sqlserver").
	Type() string

	// OpenCatalog acquires a connection scoped to one pipeline run.
	OpenCatalog(ctx context.Context) (CatalogReader, error)

	// Close releases the pool.
	Close()
}
