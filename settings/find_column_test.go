package settings

import (
	"testing"

	"github.com/hgupta2363/metabase/dataset"
)

func intPtr(i int) *int { return &i }

func resultColumns() []*dataset.Column {
	return []*dataset.Column{
		{Name: "total", ID: dataset.NewColumnID(12)},
		{Name: "title", ID: dataset.NewColumnID(22), FkFieldID: intPtr(14)},
		{Name: "count", Source: dataset.SourceAggregation},
		{Name: "discount_pct", ExpressionName: "discount_pct"},
	}
}

type findColumnIndexTest struct {
	columnSetting *ColumnSetting
	expected      int
}

var testCasesFindColumnIndex = map[string]findColumnIndexTest{
	"by field id": {
		columnSetting: &ColumnSetting{FieldRef: []any{"field-id", 12}},
		expected:      0,
	},
	"by json-decoded field id": {
		columnSetting: &ColumnSetting{FieldRef: []any{"field-id", float64(12)}},
		expected:      0,
	},
	"legacy fk shape normalizes": {
		columnSetting: &ColumnSetting{FieldRef: []any{"fk->", []any{"field-id", 14}, []any{"field-id", 22}}},
		expected:      1,
	},
	"field ref wins over name": {
		columnSetting: &ColumnSetting{Name: "title", FieldRef: []any{"field-id", 12}},
		expected:      0,
	},
	"unmatched field ref falls back to name": {
		columnSetting: &ColumnSetting{Name: "count", FieldRef: []any{"field-id", 99}},
		expected:      2,
	},
	"malformed field ref falls back to name": {
		columnSetting: &ColumnSetting{Name: "title", FieldRef: []any{"no-such-clause"}},
		expected:      1,
	},
	"expression ref": {
		columnSetting: &ColumnSetting{FieldRef: []any{"expression", "discount_pct"}},
		expected:      3,
	},
	"refined ref does not match the bare column": {
		columnSetting: &ColumnSetting{Name: "title", FieldRef: []any{"datetime-field", []any{"field-id", 12}, "month"}},
		expected:      1,
	},
	"aggregation columns match by name only": {
		columnSetting: &ColumnSetting{Name: "count", FieldRef: []any{"aggregation", 0}},
		expected:      2,
	},
	"nothing matches": {
		columnSetting: &ColumnSetting{Name: "ghost", FieldRef: []any{"field-id", 99}},
		expected:      -1,
	},
	"nil setting": {
		columnSetting: nil,
		expected:      -1,
	},
}

func TestFindColumnIndexForColumnSetting(t *testing.T) {
	for name, test := range testCasesFindColumnIndex {
		result := FindColumnIndexForColumnSetting(resultColumns(), test.columnSetting)
		if result != test.expected {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, result)
		}
	}
}

func TestFindColumnForColumnSetting(t *testing.T) {
	cols := resultColumns()

	if col := FindColumnForColumnSetting(cols, &ColumnSetting{FieldRef: []any{"field-id", 12}}); col != cols[0] {
		t.Errorf("expected the total column, got %v", col)
	}
	if col := FindColumnForColumnSetting(cols, &ColumnSetting{Name: "ghost"}); col != nil {
		t.Errorf("expected nil for an unmatched setting, got %v", col)
	}
}
