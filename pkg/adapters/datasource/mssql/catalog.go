package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dbagent-inc/schema-engine/pkg/adapters/datasource"
)

// Catalog reads the SQL Server system catalog over a dedicated connection.
type Catalog struct {
	conn   *sql.Conn
	schema string
	logger *zap.Logger
}

// quoteIdent renders a bracket-quoted SQL Server identifier.
func quoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (c *Catalog) tableRef(table string) string {
	return quoteIdent(c.schema) + "." + quoteIdent(table)
}

// tableFilter renders an optional parameterized IN predicate for col.
// Parameters continue from the given offset.
func tableFilter(col string, tables []string, offset int) (string, []any) {
	if len(tables) == 0 {
		return "", nil
	}
	placeholders := make([]string, len(tables))
	args := make([]any, len(tables))
	for i, t := range tables {
		placeholders[i] = fmt.Sprintf("@p%d", offset+i)
		args[i] = t
	}
	return fmt.Sprintf(" AND %s IN (%s)", col, strings.Join(placeholders, ", ")), args
}

// ListTableColumns returns columns of all base tables in the configured
// schema, ordered by table name then ordinal position.
func (c *Catalog) ListTableColumns(ctx context.Context, tables []string) ([]datasource.TableColumn, error) {
	query := `
		SELECT t.TABLE_NAME, col.COLUMN_NAME, col.DATA_TYPE,
		       CASE WHEN col.IS_NULLABLE = 'YES' THEN 1 ELSE 0 END
		FROM INFORMATION_SCHEMA.TABLES t
		JOIN INFORMATION_SCHEMA.COLUMNS col
			ON t.TABLE_SCHEMA = col.TABLE_SCHEMA AND t.TABLE_NAME = col.TABLE_NAME
		WHERE t.TABLE_SCHEMA = @p1 AND t.TABLE_TYPE = 'BASE TABLE'`
	args := []any{c.schema}

	filter, filterArgs := tableFilter("t.TABLE_NAME", tables, 2)
	query += filter
	args = append(args, filterArgs...)
	query += " ORDER BY t.TABLE_NAME, col.ORDINAL_POSITION"

	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query table columns: %w", err)
	}
	defer rows.Close()

	var columns []datasource.TableColumn
	for rows.Next() {
		var tc datasource.TableColumn
		var nullable int
		if err := rows.Scan(&tc.TableName, &tc.ColumnName, &tc.DataType, &nullable); err != nil {
			return nil, fmt.Errorf("scan table column: %w", err)
		}
		tc.IsNullable = nullable == 1
		columns = append(columns, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table columns: %w", err)
	}

	return columns, nil
}

// ListPrimaryKeys returns primary-key columns per table.
func (c *Catalog) ListPrimaryKeys(ctx context.Context, tables []string) ([]datasource.PrimaryKey, error) {
	query := `
		SELECT tc.TABLE_NAME, kcu.COLUMN_NAME
		FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
		JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
			ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA
		WHERE tc.TABLE_SCHEMA = @p1 AND tc.CONSTRAINT_TYPE = 'PRIMARY KEY'`
	args := []any{c.schema}

	filter, filterArgs := tableFilter("tc.TABLE_NAME", tables, 2)
	query += filter
	args = append(args, filterArgs...)
	query += " ORDER BY tc.TABLE_NAME, kcu.ORDINAL_POSITION"

	rows, err := c.conn.QueryContext(ctx, query, args...)
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

// ListForeignKeys returns foreign-key constraints between base tables.
func (c *Catalog) ListForeignKeys(ctx context.Context, tables []string) ([]datasource.ForeignKeyMetadata, error) {
	query := `
		SELECT
			fk.name,
			OBJECT_NAME(fkc.parent_object_id),
			COL_NAME(fkc.parent_object_id, fkc.parent_column_id),
			OBJECT_NAME(fkc.referenced_object_id),
			COL_NAME(fkc.referenced_object_id, fkc.referenced_column_id)
		FROM sys.foreign_keys fk
		JOIN sys.foreign_key_columns fkc ON fk.object_id = fkc.constraint_object_id
		WHERE SCHEMA_NAME(fk.schema_id) = @p1`
	args := []any{c.schema}

	fromFilter, fromArgs := tableFilter("OBJECT_NAME(fkc.parent_object_id)", tables, 2)
	query += fromFilter
	args = append(args, fromArgs...)
	toFilter, toArgs := tableFilter("OBJECT_NAME(fkc.referenced_object_id)", tables, 2+len(fromArgs))
	query += toFilter
	args = append(args, toArgs...)
	query += " ORDER BY fk.name"

	rows, err := c.conn.QueryContext(ctx, query, args...)
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

// DistinctValues returns up to limit distinct values of a column.
func (c *Catalog) DistinctValues(ctx context.Context, table, column string, limit int) ([]any, error) {
	query := fmt.Sprintf(`SELECT DISTINCT TOP (@p1) %s FROM %s ORDER BY 1`,
		quoteIdent(column), c.tableRef(table))

	rows, err := c.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("distinct values for %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var values []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("read distinct value: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct values: %w", err)
	}

	return values, nil
}

// CountDistinct returns the exact distinct-value count of a column.
func (c *Catalog) CountDistinct(ctx context.Context, table, column string) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s`,
		quoteIdent(column), c.tableRef(table))

	var count int64
	if err := c.conn.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct for %s.%s: %w", table, column, err)
	}
	return count, nil
}

// Close returns the dedicated connection to the pool.
func (c *Catalog) Close(context.Context) error {
	return c.conn.Close()
}

// Ensure Catalog implements datasource.CatalogReader at compile time.
var _ datasource.CatalogReader = (*Catalog)(nil)
