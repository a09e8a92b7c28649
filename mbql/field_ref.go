package mbql

// Clause heads for the field reference shapes this package understands.
const (
	ClauseFieldID         = "field-id"
	ClauseForeignKey      = "fk->"
	ClauseExpression      = "expression"
	ClauseAggregation     = "aggregation"
	ClauseFieldLiteral    = "field-literal"
	ClauseDatetimeField   = "datetime-field"
	ClauseBinningStrategy = "binning-strategy"
)

/*
FieldRef is a tagged reference into a query's addressable fields.

A reference identifies a field by id, by foreign-key pair, by expression
name, by aggregation index, or by literal name. References are produced by
[github.com/hgupta2363/metabase/dataset.FieldRefForColumn] and consumed by
the structured query's field list.

[RawRef] is the one deliberately untyped variant: result columns may carry a
legacy reference array in their id slot, and such arrays are passed through
unchanged rather than re-interpreted at the point of use.
*/
type FieldRef interface {
	// MBQL returns the canonical raw clause for the reference.
	MBQL() []any
	fieldRef()
}

// FieldID references a field by its metadata id, e.g. ["field-id", 17].
type FieldID struct {
	ID int
}

func (f *FieldID) MBQL() []any { return []any{ClauseFieldID, f.ID} }
func (f *FieldID) fieldRef()   {}

// ForeignKey references a field reached through a foreign key,
// e.g. ["fk->", 7, 17] where 7 is the fk field and 17 the destination field.
type ForeignKey struct {
	FkFieldID int
	FieldID   int
}

func (f *ForeignKey) MBQL() []any { return []any{ClauseForeignKey, f.FkFieldID, f.FieldID} }
func (f *ForeignKey) fieldRef()   {}

// Expression references a named expression defined on the query,
// e.g. ["expression", "discounted_price"].
type Expression struct {
	Name string
}

func (e *Expression) MBQL() []any { return []any{ClauseExpression, e.Name} }
func (e *Expression) fieldRef()   {}

// Aggregation references an aggregation clause by position,
// e.g. ["aggregation", 0].
type Aggregation struct {
	Index int
}

func (a *Aggregation) MBQL() []any { return []any{ClauseAggregation, a.Index} }
func (a *Aggregation) fieldRef()   {}

// FieldLiteral references a field by name and base type, used for columns of
// nested queries which have no metadata id, e.g. ["field-literal", "count", "type/Integer"].
type FieldLiteral struct {
	Name     string
	BaseType string
}

func (f *FieldLiteral) MBQL() []any { return []any{ClauseFieldLiteral, f.Name, f.BaseType} }
func (f *FieldLiteral) fieldRef()   {}

// RawRef is a legacy reference array carried through unchanged. The array is
// trusted to be a valid reference; it is not validated here.
type RawRef []any

func (r RawRef) MBQL() []any { return []any(r) }
func (r RawRef) fieldRef()   {}

// RefsEqual reports whether two references are structurally equal, comparing
// canonical encodings. Two nil references are equal.
func RefsEqual(left FieldRef, right FieldRef) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return RefKey(left) == RefKey(right)
}
