package query

import (
	"log"

	"github.com/hgupta2363/metabase/mbql"
)

// ExpressionDef is a named custom expression on a structured query. The
// definition is raw MBQL, e.g. ["-", ["field-id", 4], ["field-id", 5]].
type ExpressionDef struct {
	Name       string
	Definition []any
}

// AggregationDef is one aggregation clause: an operator plus an optional
// field reference. The operator doubles as the result column name, the way
// the execution engine names aggregate columns.
type AggregationDef struct {
	Operator string
	Field    []any
}

// StructuredQuery is a query assembled from clauses against table
// metadata. Construct with NewStructuredQuery; the zero value has no
// metadata to resolve against.
type StructuredQuery struct {
	metadata     *Metadata
	sourceTable  int
	fields       [][]any
	expressions  []ExpressionDef
	aggregations []AggregationDef
	breakouts    [][]any
}

// NewStructuredQuery returns a query over the given source table.
func NewStructuredQuery(metadata *Metadata, sourceTable int) *StructuredQuery {
	return &StructuredQuery{metadata: metadata, sourceTable: sourceTable}
}

func (q *StructuredQuery) query() {}

// SourceTable returns the id of the query's source table.
func (q *StructuredQuery) SourceTable() int { return q.sourceTable }

// Table returns the metadata of the query's source table, or nil when the
// metadata does not know it.
func (q *StructuredQuery) Table() *Table {
	return q.metadata.TableForID(q.sourceTable)
}

func (q *StructuredQuery) clone() *StructuredQuery {
	clone := *q
	clone.fields = append([][]any(nil), q.fields...)
	clone.expressions = append([]ExpressionDef(nil), q.expressions...)
	clone.aggregations = append([]AggregationDef(nil), q.aggregations...)
	clone.breakouts = append([][]any(nil), q.breakouts...)
	return &clone
}

// Fields returns the explicit field list, nil when the query selects its
// default fields.
func (q *StructuredQuery) Fields() [][]any {
	return q.fields
}

// ClearFields returns a copy with no explicit field list, selecting the
// default field set again.
func (q *StructuredQuery) ClearFields() *StructuredQuery {
	clone := q.clone()
	clone.fields = nil
	return clone
}

// AddField returns a copy with a raw field reference appended to the
// explicit field list.
func (q *StructuredQuery) AddField(ref []any) *StructuredQuery {
	clone := q.clone()
	clone.fields = append(clone.fields, ref)
	return clone
}

// WithFields returns a copy with the explicit field list replaced.
func (q *StructuredQuery) WithFields(refs [][]any) *StructuredQuery {
	clone := q.clone()
	clone.fields = append([][]any(nil), refs...)
	return clone
}

// AddExpression returns a copy with a named custom expression appended.
// Expression order determines default column order after table fields.
func (q *StructuredQuery) AddExpression(name string, definition []any) *StructuredQuery {
	clone := q.clone()
	clone.expressions = append(clone.expressions, ExpressionDef{Name: name, Definition: definition})
	return clone
}

// AddAggregation returns a copy with an aggregation clause appended. field
// may be nil for operators like "count".
func (q *StructuredQuery) AddAggregation(operator string, field []any) *StructuredQuery {
	clone := q.clone()
	clone.aggregations = append(clone.aggregations, AggregationDef{Operator: operator, Field: field})
	return clone
}

// AddBreakout returns a copy with a breakout appended, given as a raw
// field reference.
func (q *StructuredQuery) AddBreakout(ref []any) *StructuredQuery {
	clone := q.clone()
	clone.breakouts = append(clone.breakouts, ref)
	return clone
}

// IsAggregated reports whether the query computes aggregations rather than
// returning bare rows.
func (q *StructuredQuery) IsAggregated() bool {
	return len(q.aggregations) > 0 || len(q.breakouts) > 0
}

/*
ColumnDimensions returns one dimension per result column, in result order.

For an aggregated query that is the breakout dimensions then one
aggregation dimension per clause. For a bare query with an explicit field
list it is the parsed fields, skipping unparseable entries with a warning.
For a bare query without one it is the default set: source table fields in
metadata order, then expressions.
*/
func (q *StructuredQuery) ColumnDimensions() []*mbql.Dimension {
	if q.IsAggregated() {
		dims := parseRefs(q.breakouts)
		for i := range q.aggregations {
			dims = append(dims, mbql.NewDimension(&mbql.Aggregation{Index: i}))
		}
		return dims
	}
	if len(q.fields) > 0 {
		return parseRefs(q.fields)
	}
	return q.defaultDimensions()
}

// ColumnNames returns the result column names, parallel to
// ColumnDimensions.
func (q *StructuredQuery) ColumnNames() []string {
	dims := q.ColumnDimensions()
	columnNames := make([]string, len(dims))
	for i, dim := range dims {
		columnNames[i] = q.columnName(dim)
	}
	return columnNames
}

func parseRefs(refs [][]any) []*mbql.Dimension {
	var dims []*mbql.Dimension
	for _, ref := range refs {
		dim, err := mbql.ParseMBQL(ref)
		if err != nil {
			log.Printf("[WARN] skipping unparseable field reference %v: %v", ref, err)
			continue
		}
		dims = append(dims, dim)
	}
	return dims
}

func (q *StructuredQuery) defaultDimensions() []*mbql.Dimension {
	table := q.Table()
	if table == nil {
		log.Printf("[WARN] no metadata for source table %d", q.sourceTable)
	}
	var dims []*mbql.Dimension
	if table != nil {
		for _, f := range table.Fields {
			dims = append(dims, mbql.NewDimension(&mbql.FieldID{ID: f.ID}))
		}
	}
	for _, e := range q.expressions {
		dims = append(dims, mbql.NewDimension(&mbql.Expression{Name: e.Name}))
	}
	return dims
}

// columnName resolves a dimension to its result column name: the physical
// field name for field dimensions, the expression name, the aggregation
// operator. Unknown ids resolve to "".
func (q *StructuredQuery) columnName(dim *mbql.Dimension) string {
	switch ref := dim.Ref().(type) {
	case *mbql.FieldID:
		if f := q.metadata.Field(ref.ID); f != nil {
			return f.Name
		}
	case *mbql.ForeignKey:
		if f := q.metadata.Field(ref.FieldID); f != nil {
			return f.Name
		}
	case *mbql.Expression:
		return ref.Name
	case *mbql.FieldLiteral:
		return ref.Name
	case *mbql.Aggregation:
		if ref.Index >= 0 && ref.Index < len(q.aggregations) {
			return q.aggregations[ref.Index].Operator
		}
	}
	return ""
}

// MBQL returns the query in its raw wire shape.
func (q *StructuredQuery) MBQL() map[string]any {
	out := map[string]any{"source-table": q.sourceTable}
	if len(q.fields) > 0 {
		out["fields"] = q.fields
	}
	if len(q.expressions) > 0 {
		expressions := map[string]any{}
		for _, e := range q.expressions {
			expressions[e.Name] = e.Definition
		}
		out["expressions"] = expressions
	}
	if len(q.aggregations) > 0 {
		var aggregations [][]any
		for _, a := range q.aggregations {
			clause := []any{a.Operator}
			if a.Field != nil {
				clause = append(clause, a.Field)
			}
			aggregations = append(aggregations, clause)
		}
		out["aggregation"] = aggregations
	}
	if len(q.breakouts) > 0 {
		out["breakout"] = q.breakouts
	}
	return out
}

func (q *StructuredQuery) String() string {
	return mbql.CanonicalJSON(q.MBQL())
}
