package dataset

import (
	"encoding/json"

	"github.com/turbot/go-kit/helpers"
)

// Dataset is the result set produced by query execution: ordered columns and
// ordered rows of values. Read-only here.
type Dataset struct {
	Cols []*Column `json:"cols"`
	Rows [][]any   `json:"rows"`
}

// ContainsNoResults reports whether the dataset holds no results: no rows at
// all, or the single-row single-null sentinel some aggregation engines
// return for "no rows to aggregate". Any other shape - including multiple
// all-null rows - counts as results.
func (d *Dataset) ContainsNoResults() bool {
	if d == nil || len(d.Rows) == 0 {
		return true
	}
	return len(d.Rows) == 1 && len(d.Rows[0]) == 1 && helpers.IsNil(d.Rows[0][0])
}

// RangeForValue returns the bin [value, value+binWidth] covering a binned
// column's value. ok is false when the column carries no bin width or the
// value is not numeric - numeric strings are deliberately not coerced.
func RangeForValue(value any, col *Column) ([2]float64, bool) {
	if col == nil || col.BinningInfo == nil || col.BinningInfo.BinWidth == 0 {
		return [2]float64{}, false
	}
	v, ok := numericValue(value)
	if !ok {
		return [2]float64{}, false
	}
	return [2]float64{v, v + col.BinningInfo.BinWidth}, true
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
