package settings

import (
	"github.com/hgupta2363/metabase/dataset"
	"github.com/hgupta2363/metabase/mbql"
)

/*
FindColumnIndexForColumnSetting returns the index of the result column a
setting refers to, or -1.

A field-reference match is preferred: the setting's fieldRef and each
column's own reference are both normalized first, so legacy reference
shapes still match their current form. Aggregation columns resolve no
reference on this path and can only be found by name. When the reference
matches nothing (or the setting has none), the first column whose name
equals the setting's name wins.
*/
func FindColumnIndexForColumnSetting(cols []*dataset.Column, columnSetting *ColumnSetting) int {
	if columnSetting == nil {
		return -1
	}
	if fieldRef := mbql.Normalize(columnSetting.FieldRef); fieldRef != nil {
		key := mbql.CanonicalJSON(fieldRef)
		for i, col := range cols {
			ref := dataset.FieldRefForColumn(col, nil)
			if ref == nil {
				continue
			}
			if normalized := mbql.NormalizeRef(ref); normalized != nil && mbql.CanonicalJSON(normalized) == key {
				return i
			}
		}
	}
	for i, col := range cols {
		if col.Name == columnSetting.Name {
			return i
		}
	}
	return -1
}

// FindColumnForColumnSetting returns the result column a setting refers
// to, or nil.
func FindColumnForColumnSetting(cols []*dataset.Column, columnSetting *ColumnSetting) *dataset.Column {
	if idx := FindColumnIndexForColumnSetting(cols, columnSetting); idx >= 0 {
		return cols[idx]
	}
	return nil
}
