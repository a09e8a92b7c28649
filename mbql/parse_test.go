package mbql

import (
	"encoding/json"
	"reflect"
	"testing"
)

type parseMBQLTest struct {
	raw      any
	expected []any
	wantErr  bool
}

var testCasesParseMBQL = map[string]parseMBQLTest{
	"bare integer id": {
		raw:      17,
		expected: []any{"field-id", 17},
	},
	"bare float id from decoded json": {
		raw:      float64(17),
		expected: []any{"field-id", 17},
	},
	"field-id": {
		raw:      []any{"field-id", 17},
		expected: []any{"field-id", 17},
	},
	"field-id with json.Number": {
		raw:      []any{"field-id", json.Number("17")},
		expected: []any{"field-id", 17},
	},
	"fk-> bare args": {
		raw:      []any{"fk->", 7, 17},
		expected: []any{"fk->", 7, 17},
	},
	"fk-> legacy wrapped args": {
		raw:      []any{"fk->", []any{"field-id", 7}, []any{"field-id", 17}},
		expected: []any{"fk->", 7, 17},
	},
	"fk-> mixed args": {
		raw:      []any{"fk->", float64(7), []any{"field-id", 17}},
		expected: []any{"fk->", 7, 17},
	},
	"expression": {
		raw:      []any{"expression", "discounted_price"},
		expected: []any{"expression", "discounted_price"},
	},
	"aggregation": {
		raw:      []any{"aggregation", 0},
		expected: []any{"aggregation", 0},
	},
	"field-literal": {
		raw:      []any{"field-literal", "count", "type/Integer"},
		expected: []any{"field-literal", "count", "type/Integer"},
	},
	"datetime-field": {
		raw:      []any{"datetime-field", []any{"field-id", 3}, "month"},
		expected: []any{"datetime-field", []any{"field-id", 3}, "month"},
	},
	"datetime-field legacy 4-arg": {
		raw:      []any{"datetime-field", []any{"field-id", 3}, "as", "month"},
		expected: []any{"datetime-field", []any{"field-id", 3}, "month"},
	},
	"datetime-field over bare id": {
		raw:      []any{"datetime-field", 3, "day"},
		expected: []any{"datetime-field", []any{"field-id", 3}, "day"},
	},
	"binning-strategy num-bins": {
		raw:      []any{"binning-strategy", []any{"field-id", 4}, "num-bins", 10},
		expected: []any{"binning-strategy", []any{"field-id", 4}, "num-bins", 10},
	},
	"binning-strategy bin-width": {
		raw:      []any{"binning-strategy", []any{"field-id", 4}, "bin-width", 2.5},
		expected: []any{"binning-strategy", []any{"field-id", 4}, "bin-width", 2.5},
	},
	"binning-strategy default": {
		raw:      []any{"binning-strategy", []any{"field-id", 4}, "default"},
		expected: []any{"binning-strategy", []any{"field-id", 4}, "default"},
	},
	"binning-strategy over fk": {
		raw:      []any{"binning-strategy", []any{"fk->", []any{"field-id", 7}, []any{"field-id", 17}}, "default"},
		expected: []any{"binning-strategy", []any{"fk->", 7, 17}, "default"},
	},
	"unknown clause head": {
		raw:     []any{"segment", 1},
		wantErr: true,
	},
	"non-string clause head": {
		raw:     []any{17, "field-id"},
		wantErr: true,
	},
	"empty clause": {
		raw:     []any{},
		wantErr: true,
	},
	"field-id with string arg": {
		raw:     []any{"field-id", "17"},
		wantErr: true,
	},
	"field-id with fractional arg": {
		raw:     []any{"field-id", 17.5},
		wantErr: true,
	},
	"fk-> missing arg": {
		raw:     []any{"fk->", 7},
		wantErr: true,
	},
	"expression with empty name": {
		raw:     []any{"expression", ""},
		wantErr: true,
	},
	"aggregation with negative index": {
		raw:     []any{"aggregation", -1},
		wantErr: true,
	},
	"datetime-field legacy without as": {
		raw:     []any{"datetime-field", []any{"field-id", 3}, "month", "extra"},
		wantErr: true,
	},
	"binning-strategy num-bins missing param": {
		raw:     []any{"binning-strategy", []any{"field-id", 4}, "num-bins"},
		wantErr: true,
	},
	"not a clause": {
		raw:     "field-id",
		wantErr: true,
	},
	"nil": {
		raw:     nil,
		wantErr: true,
	},
}

func TestParseMBQL(t *testing.T) {
	for name, test := range testCasesParseMBQL {
		dimension, err := ParseMBQL(test.raw)
		if test.wantErr {
			if err == nil {
				t.Errorf("Test: '%s' FAILED : expected error, got %v", name, dimension.MBQL())
			}
			continue
		}
		if err != nil {
			t.Errorf("Test: '%s' FAILED : unexpected error %v", name, err)
			continue
		}
		if !reflect.DeepEqual(test.expected, dimension.MBQL()) {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, dimension.MBQL())
		}
	}
}

type normalizeTest struct {
	raw      any
	expected []any
}

var testCasesNormalize = map[string]normalizeTest{
	"canonical passes through": {
		raw:      []any{"field-id", 17},
		expected: []any{"field-id", 17},
	},
	"legacy fk collapses": {
		raw:      []any{"fk->", []any{"field-id", 7}, []any{"field-id", 17}},
		expected: []any{"fk->", 7, 17},
	},
	"decoded json numbers collapse": {
		raw:      []any{"fk->", float64(7), float64(17)},
		expected: []any{"fk->", 7, 17},
	},
	"garbage yields nil": {
		raw:      []any{"no-such-clause", 1},
		expected: nil,
	},
	"nil yields nil": {
		raw:      nil,
		expected: nil,
	},
}

func TestNormalize(t *testing.T) {
	for name, test := range testCasesNormalize {
		result := Normalize(test.raw)
		if !reflect.DeepEqual(test.expected, result) {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, result)
		}
	}
}
