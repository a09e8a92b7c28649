// Package query models the query side of column resolution: table
// metadata, the structured query with its explicit field list, the native
// query sibling, and the question wrapper carrying visualization settings.
//
// Queries are persistent-style values. Every mutating operation returns a
// new query and leaves the receiver untouched, so queries can be shared
// freely between callers.
package query

// Query is either a structured query or a native query. Callers that only
// apply to one kind type-assert.
type Query interface {
	query()
}

// NativeQuery is an opaque query authored directly in the warehouse's
// dialect. Column resolution and settings sync leave it untouched.
type NativeQuery struct {
	SQL string
}

func (q *NativeQuery) query() {}
