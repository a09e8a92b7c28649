package dataset

import (
	"github.com/hgupta2363/metabase/mbql"
)

/*
FieldRefForColumn derives the canonical field reference for a result column.

Resolution order, first match wins: a legacy reference array in the id slot
is passed through unchanged; an id paired with fk_field_id becomes a
foreign-key reference; a bare id becomes a by-id reference; an expression
name becomes an expression reference; an aggregation-sourced column becomes
an aggregation-index reference, ranked among the aggregation columns of
cols.

cols may be nil, in which case the aggregation branch never fires. The rank
match is by pointer identity - col must be one of cols for a rank to be
found. A nil result means the column has no resolvable reference and the
caller must fall back to name-based identification.
*/
func FieldRefForColumn(col *Column, cols []*Column) mbql.FieldRef {
	switch {
	case col == nil:
		return nil
	case col.ID.Ref != nil:
		return mbql.RawRef(col.ID.Ref)
	case col.ID.FieldID != nil && col.FkFieldID != nil:
		return &mbql.ForeignKey{FkFieldID: *col.FkFieldID, FieldID: *col.ID.FieldID}
	case col.ID.FieldID != nil:
		return &mbql.FieldID{ID: *col.ID.FieldID}
	case col.ExpressionName != "":
		return &mbql.Expression{Name: col.ExpressionName}
	case col.Source == SourceAggregation && cols != nil:
		if rank := aggregationRank(col, cols); rank >= 0 {
			return &mbql.Aggregation{Index: rank}
		}
	}
	return nil
}

// aggregationRank returns col's 0-based position among the
// aggregation-sourced columns of cols, or -1 if col is not one of them.
func aggregationRank(col *Column, cols []*Column) int {
	rank := 0
	for _, c := range cols {
		if c.Source != SourceAggregation {
			continue
		}
		if c == col {
			return rank
		}
		rank++
	}
	return -1
}

// KeyForColumn returns a stable string key for a column, for use as a
// mapping key. Columns with the same resolvable field reference produce
// identical keys; columns without one fall back to a name key. The columns
// array is never consulted, so aggregation columns always take the name
// fallback - two same-named aggregation columns share a key, an accepted
// collision.
func KeyForColumn(col *Column) string {
	if ref := FieldRefForColumn(col, nil); ref != nil {
		return mbql.CanonicalJSON([]any{"ref", ref.MBQL()})
	}
	return mbql.CanonicalJSON([]any{"name", col.Name})
}
