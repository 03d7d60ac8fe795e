package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
)

// Querier is the subset of pgx query methods the catalog reader needs.
// Satisfied by pgx.Tx, *pgxpool.Pool, and pgxmock pools.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Catalog reads the PostgreSQL system catalog over a single connection.
// All identifier interpolation goes through pgx.Identifier sanitization and
// callers are expected to pass only names discovered from the catalog.
type Catalog struct {
	db      Querier
	schema  string
	logger  *zap.Logger
	release func(ctx context.Context) error
}

// NewCatalog wraps an existing queryable connection. If logger is nil, a
// no-op logger is used. Intended for tests and direct instantiation; the
// Connector is the production entry point.
func NewCatalog(db Querier, schema string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	if schema == "" {
		schema = "public"
	}
	return &Catalog{db: db, schema: schema, logger: logger}
}

// ListTableColumns returns columns of all base tables in the configured
// schema, ordered by table name then ordinal position. Views are excluded.
// The optional table filter is applied as a parameterized predicate, never
// interpolated.
func (c *Catalog) ListTableColumns(ctx context.Context, tables []string) ([]datasource.TableColumn, error) {
	const query = `
		SELECT t.table_name, c.column_name, c.data_type, c.is_nullable = 'YES' AS is_nullable
		FROM information_schema.tables t
		JOIN information_schema.columns c
			ON t.table_schema = c.table_schema AND t.table_name = c.table_name
		WHERE t.table_schema = $1
		  AND t.table_type = 'BASE TABLE'
		  AND ($2::text[] IS NULL OR t.table_name = ANY($2))
		ORDER BY t.table_name, c.ordinal_position
	`

	rows, err := c.db.Query(ctx, query, c.schema, nilIfEmpty(tables))
	if err != nil {
		return nil, fmt.Errorf("query table columns: %w", err)
	}
	defer rows.Close()

	var columns []datasource.TableColumn
	for rows.Next() {
		var tc datasource.TableColumn
		if err := rows.Scan(&tc.TableName, &tc.ColumnName, &tc.DataType, &tc.IsNullable); err != nil {
			return nil, fmt.Errorf("scan table column: %w", err)
		}
		columns = append(columns, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table columns: %w", err)
	}

	return columns, nil
}

// ListPrimaryKeys returns primary-key columns per table, with the same
// table filter as ListTableColumns.
func (c *Catalog) ListPrimaryKeys(ctx context.Context, tables []string) ([]datasource.PrimaryKey, error) {
	const query = `
		SELECT tc.table_name, kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
		WHERE tc.table_schema = $1
		  AND tc.constraint_type = 'PRIMARY KEY'
		  AND ($2::text[] IS NULL OR tc.table_name = ANY($2))
		ORDER BY tc.table_name, kcu.ordinal_position
	`

	rows, err := c.db.Query(ctx, query, c.schema, nilIfEmpty(tables))
	if err != nil {
		return nil, fmt.Errorf("query primary keys: %w", err)
	}
	defer rows.Close()

	var pks []datasource.PrimaryKey
	for rows.Next() {
		var pk datasource.PrimaryKey
		if err := rows.Scan(&pk.TableName, &pk.ColumnName); err != nil {
			return nil, fmt.Errorf("scan primary key: %w", err)
		}
		pks = append(pks, pk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate primary keys: %w", err)
	}

	return pks, nil
}

// ListForeignKeys returns foreign-key constraints. With a table filter,
// both endpoints must be inside the requested set so the result never
// references tables the caller did not ask for.
func (c *Catalog) ListForeignKeys(ctx context.Context, tables []string) ([]datasource.ForeignKeyMetadata, error) {
	const query = `
		SELECT
			tc.constraint_name,
			kcu.table_name AS from_table,
			kcu.column_name AS from_column,
			ccu.table_name AS to_table,
			ccu.column_name AS to_column
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage ccu
			ON tc.constraint_name = ccu.constraint_name AND tc.table_schema = ccu.table_schema
		WHERE tc.table_schema = $1
		  AND tc.constraint_type = 'FOREIGN KEY'
		  AND ($2::text[] IS NULL OR (kcu.table_name = ANY($2) AND ccu.table_name = ANY($2)))
		ORDER BY tc.constraint_name
	`

	rows, err := c.db.Query(ctx, query, c.schema, nilIfEmpty(tables))
	if err != nil {
		return nil, fmt.Errorf("query foreign keys: %w", err)
	}
	defer rows.Close()

	var fks []datasource.ForeignKeyMetadata
	for rows.Next() {
		var fk datasource.ForeignKeyMetadata
		if err := rows.Scan(&fk.ConstraintName, &fk.FromTable, &fk.FromColumn, &fk.ToTable, &fk.ToColumn); err != nil {
			return nil, fmt.Errorf("scan foreign key: %w", err)
		}
		fks = append(fks, fk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foreign keys: %w", err)
	}

	return fks, nil
}

// DistinctValues returns up to limit distinct values of a column, in a
// stable order. Identifiers are quoted with pgx sanitization.
func (c *Catalog) DistinctValues(ctx context.Context, table, column string, limit int) ([]any, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s ORDER BY 1 LIMIT $1`,
		pgx.Identifier{column}.Sanitize(), c.tableRef(table))

	rows, err := c.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("distinct values for %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var values []any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read distinct value: %w", err)
		}
		values = append(values, vals[0])
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct values: %w", err)
	}

	return values, nil
}

// CountDistinct returns the exact distinct-value count of a column.
// Paired with the bounded DistinctValues sample, this makes the categorical
// decision exact without materializing unbounded distinct sets.
func (c *Catalog) CountDistinct(ctx context.Context, table, column string) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s`,
		pgx.Identifier{column}.Sanitize(), c.tableRef(table))

	var count int64
	if err := c.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct for %s.%s: %w", table, column, err)
	}
	return count, nil
}

// Close releases the underlying connection back to the pool.
func (c *Catalog) Close(ctx context.Context) error {
	if c.release == nil {
		return nil
	}
	return c.release(ctx)
}

// tableRef returns a schema-qualified, quoted table reference.
func (c *Catalog) tableRef(table string) string {
	return pgx.Identifier{c.schema}.Sanitize() + "." + pgx.Identifier{table}.Sanitize()
}

// nilIfEmpty maps an empty filter to SQL NULL so the catalog predicates
// collapse to "all tables".
func nilIfEmpty(tables []string) []string {
	if len(tables) == 0 {
		return nil
	}
	return tables
}

// Ensure Catalog implements datasource.CatalogReader at compile time.
var _ datasource.CatalogReader = (*Catalog)(nil)
