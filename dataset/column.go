package dataset

import (
	"bytes"
	"encoding/json"
)

// Column source tags, as produced by the query executor.
const (
	SourceFields      = "fields"
	SourceAggregation = "aggregation"
	SourceBreakout    = "breakout"
	SourceNative      = "native"
)

// BinningInfo describes how a binned column's values were bucketed.
type BinningInfo struct {
	BinningStrategy string  `json:"binning_strategy,omitempty"`
	BinWidth        float64 `json:"bin_width,omitempty"`
	NumBins         int     `json:"num_bins,omitempty"`
}

// Column describes one result-set column. Columns are produced by query
// execution and are read-only here.
type Column struct {
	// ID is the field id slot. It may hold a metadata id, a legacy
	// reference array, or nothing - see ColumnID.
	ID             ColumnID     `json:"id,omitempty"`
	Name           string       `json:"name"`
	DisplayName    string       `json:"display_name,omitempty"`
	BaseType       string       `json:"base_type,omitempty"`
	Source         string       `json:"source,omitempty"`
	FkFieldID      *int         `json:"fk_field_id,omitempty"`
	ExpressionName string       `json:"expression_name,omitempty"`
	Unit           string       `json:"unit,omitempty"`
	BinningInfo    *BinningInfo `json:"binning_info,omitempty"`
}

/*
ColumnID models the historical looseness of a result column's id slot
without shape-sniffing at the point of use: the slot may hold

  - a field metadata id (FieldID set),
  - a legacy reference array (Ref set) - trusted to be a valid reference,
    never validated here,
  - or nothing (the zero value; aggregation and native columns).

At most one of FieldID and Ref is set.
*/
type ColumnID struct {
	FieldID *int
	Ref     []any
}

// NewColumnID returns a ColumnID holding a field metadata id.
func NewColumnID(fieldID int) ColumnID {
	return ColumnID{FieldID: &fieldID}
}

// NewColumnRef returns a ColumnID holding a legacy reference array.
func NewColumnRef(ref []any) ColumnID {
	return ColumnID{Ref: ref}
}

// IsSet reports whether the id slot holds anything.
func (c ColumnID) IsSet() bool {
	return c.FieldID != nil || c.Ref != nil
}

func (c *ColumnID) UnmarshalJSON(data []byte) error {
	*c = ColumnID{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		var ref []any
		if err := json.Unmarshal(trimmed, &ref); err != nil {
			return err
		}
		c.Ref = ref
		return nil
	}
	var fieldID int
	if err := json.Unmarshal(trimmed, &fieldID); err != nil {
		return err
	}
	c.FieldID = &fieldID
	return nil
}

func (c ColumnID) MarshalJSON() ([]byte, error) {
	switch {
	case c.FieldID != nil:
		return json.Marshal(*c.FieldID)
	case c.Ref != nil:
		return json.Marshal(c.Ref)
	}
	return []byte("null"), nil
}
