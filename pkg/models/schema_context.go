package models

// SchemaContext is the aggregate produced by one pipeline run. It is built
// fresh on every cache miss and never mutated after being returned, so a
// serialized copy can be stored verbatim as a cache entry.
type SchemaContext struct {
	Tables               map[string]*TableInfo                 `json:"tables"`
	Relationships        []Relationship                        `json:"relationships"`
	EntityMappings       map[string]EntityMapping              `json:"entity_mappings"`
	SemanticContext      SemanticContext                       `json:"semantic_context"`
	ColumnValueAnalysis  map[string]map[string]*ColumnAnalysis `json:"column_value_analysis"`
	NaturalLanguageGuide NaturalLanguageGuide                  `json:"natural_language_guide"`
	Metadata             Metadata                              `json:"metadata"`

	// tableOrder preserves catalog insertion order. Go maps do not iterate
	// deterministically, and entity-mapping collisions are resolved
	// last-write-wins in table-then-column order.
	tableOrder []string
}

// NewSchemaContext returns an empty aggregate keyed by cacheKey.
func NewSchemaContext(cacheKey string) *SchemaContext {
	return &SchemaContext{
		Tables:              make(map[string]*TableInfo),
		Relationships:       []Relationship{},
		EntityMappings:      make(map[string]EntityMapping),
		SemanticContext:     SemanticContext{TablePurposes: make(map[string]string)},
		ColumnValueAnalysis: make(map[string]map[string]*ColumnAnalysis),
		NaturalLanguageGuide: NaturalLanguageGuide{
			AvailableTables:  []string{},
			EntityResolution: make(map[string]EntityResolution),
		},
		Metadata: Metadata{Cached: false, CacheKey: cacheKey},
	}
}

// Table returns the TableInfo for name, creating it on first use.
func (sc *SchemaContext) Table(name string) *TableInfo {
	if t, ok := sc.Tables[name]; ok {
		return t
	}
	t := NewTableInfo()
	sc.Tables[name] = t
	sc.tableOrder = append(sc.tableOrder, name)
	return t
}

// TableNames returns table names in catalog insertion order.
func (sc *SchemaContext) TableNames() []string {
	names := make([]string, len(sc.tableOrder))
	copy(names, sc.tableOrder)
	return names
}

// TableInfo describes one base table.
type TableInfo struct {
	Columns     map[string]ColumnInfo `json:"columns"`
	PrimaryKeys []string              `json:"primary_keys"`
	ForeignKeys []ForeignKeyRef       `json:"foreign_keys"`

	columnOrder []string
}

// NewTableInfo returns an empty TableInfo.
func NewTableInfo() *TableInfo {
	return &TableInfo{
		Columns:     make(map[string]ColumnInfo),
		PrimaryKeys: []string{},
		ForeignKeys: []ForeignKeyRef{},
	}
}

// AddColumn records a column, preserving ordinal order for iteration.
func (t *TableInfo) AddColumn(name string, info ColumnInfo) {
	if _, ok := t.Columns[name]; !ok {
		t.columnOrder = append(t.columnOrder, name)
	}
	t.Columns[name] = info
}

// ColumnNames returns column names in catalog ordinal order.
func (t *TableInfo) ColumnNames() []string {
	names := make([]string, len(t.columnOrder))
	copy(names, t.columnOrder)
	return names
}

// ColumnInfo carries the catalog-declared type and nullability of a column.
type ColumnInfo struct {
	DataType   string `json:"data_type"`
	IsNullable bool   `json:"is_nullable"`
}

// ForeignKeyRef is a per-table view of an outgoing foreign key.
type ForeignKeyRef struct {
	Column           string `json:"column"`
	ReferencedTable  string `json:"referenced_table"`
	ReferencedColumn string `json:"referenced_column"`
}

// Relationship is a foreign-key constraint between two tables.
type Relationship struct {
	FromTable      string `json:"from_table"`
	FromColumn     string `json:"from_column"`
	ToTable        string `json:"to_table"`
	ToColumn       string `json:"to_column"`
	ConstraintName string `json:"constraint_name,omitempty"`
	Description    string `json:"description,omitempty"`
}

// ColumnAnalysis is the profiler output for a single column.
// UniqueValues is populated only for categorical columns (exact distinct
// count at or below the categorical threshold). SampleValues is populated
// only when the request asked for samples.
type ColumnAnalysis struct {
	IsCategorical bool   `json:"is_categorical"`
	UniqueValues  []any  `json:"unique_values"`
	SemanticType  string `json:"semantic_type"`
	SampleValues  []any  `json:"sample_values,omitempty"`
}

// EntityMapping resolves a natural-language entity term to a table and a
// ready-to-use SQL predicate fragment.
type EntityMapping struct {
	Table           string `json:"table"`
	FilterCondition string `json:"filter_condition"`
	Description     string `json:"description"`
}

// SemanticContext carries human-purpose annotations.
type SemanticContext struct {
	TablePurposes map[string]string `json:"table_purposes"`
}

// NaturalLanguageGuide maps entity terms to executable query templates.
type NaturalLanguageGuide struct {
	AvailableTables  []string                    `json:"available_tables"`
	EntityResolution map[string]EntityResolution `json:"entity_resolution"`
}

// EntityResolution is one guide entry.
type EntityResolution struct {
	MapsTo      string `json:"maps_to"`
	Description string `json:"description"`
}

// Metadata describes how the context relates to the cache backend.
// Cached is true when the context was served from the cache, or when it was
// freshly computed and the write-back succeeded (the next identical request
// will hit the cache).
type Metadata struct {
	Cached   bool   `json:"cached"`
	CacheKey string `json:"cache_key"`
}

// SchemaContextResult is the envelope returned to external callers.
type SchemaContextResult struct {
	Status        string         `json:"status"`
	SchemaContext *SchemaContext `json:"schema_context,omitempty"`
	Cached        bool           `json:"cached"`
	Message       string         `json:"message,omitempty"`
}

// SuccessResult wraps a finished schema context.
func SuccessResult(sc *SchemaContext) *SchemaContextResult {
	return &SchemaContextResult{
		Status:        "success",
		SchemaContext: sc,
		Cached:        sc.Metadata.Cached,
	}
}

// ErrorResult wraps a fatal pipeline failure.
func ErrorResult(message string) *SchemaContextResult {
	return &SchemaContextResult{Status: "error", Message: message}
}
