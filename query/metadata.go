package query

import (
	"github.com/hgupta2363/metabase/names"
)

// Field is one addressable field in table metadata.
type Field struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DisplayName     string `json:"display_name,omitempty"`
	BaseType        string `json:"base_type,omitempty"`
	FkTargetFieldID *int   `json:"fk_target_field_id,omitempty"`
}

// Display returns the field's display name, humanized from the physical
// name when no explicit display name is set.
func (f *Field) Display() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return names.Humanize(f.Name)
}

// Table is one table in metadata: identity plus its fields in metadata
// order. The field order determines the default column order of a query
// with no explicit field list.
type Table struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name,omitempty"`
	Fields      []*Field `json:"fields,omitempty"`
}

// Display returns the table's display name, built from the physical name
// when no explicit display name is set.
func (t *Table) Display() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return names.TableDisplayName(t.Name)
}

// Field returns the table field with the given physical name, or nil.
func (t *Table) Field(name string) *Field {
	if t == nil {
		return nil
	}
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Metadata is the table metadata a structured query resolves against.
// Read-only once built.
type Metadata struct {
	Tables []*Table `json:"tables"`
}

// Table returns the table with the given physical name, or nil.
func (m *Metadata) Table(name string) *Table {
	if m == nil {
		return nil
	}
	for _, t := range m.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TableForID returns the table with the given id, or nil.
func (m *Metadata) TableForID(id int) *Table {
	if m == nil {
		return nil
	}
	for _, t := range m.Tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Field returns the field with the given id from any table, or nil.
func (m *Metadata) Field(id int) *Field {
	if m == nil {
		return nil
	}
	for _, t := range m.Tables {
		for _, f := range t.Fields {
			if f.ID == id {
				return f
			}
		}
	}
	return nil
}
