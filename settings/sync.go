package settings

import (
	"log"

	"github.com/hgupta2363/metabase/logging"
	"github.com/hgupta2363/metabase/mbql"
	"github.com/hgupta2363/metabase/names"
	"github.com/hgupta2363/metabase/query"
)

/*
SyncTableColumnsToQuery reconciles a question's explicit field list with
its table.columns setting.

Acts only on questions whose query is structured and which carry a
table.columns setting; anything else passes through unchanged. The field
list is rebuilt from the enabled settings in order: a setting with a field
reference contributes it directly, a setting with only a name contributes
the default dimension of that name. Settings resolving to neither are
skipped with a warning, never an error.

When the rebuilt list selects exactly the default columns again - position
by position the same base dimension, refinements like temporal bucketing
and binning ignored - the explicit list is redundant and is dropped. A
query with no explicit field list stays minimal and picks up columns added
to the table later, instead of excluding them through a stale list.
*/
func SyncTableColumnsToQuery(question *query.Question) *query.Question {
	logging.LogTime("SyncTableColumnsToQuery start")
	defer logging.LogTime("SyncTableColumnsToQuery end")

	structured, ok := question.Query().(*query.StructuredQuery)
	if !ok {
		return question
	}
	columnSettings, err := ColumnSettingsFromValue(question.Setting(TableColumnsKey))
	if err != nil {
		log.Printf("[WARN] ignoring malformed table.columns setting: %v", err)
		return question
	}
	if columnSettings == nil {
		return question
	}

	q := structured.ClearFields()
	baselineDims := q.ColumnDimensions()
	baselineNames := q.ColumnNames()

	skipped := 0
	for _, columnSetting := range columnSettings {
		if !columnSetting.Enabled {
			continue
		}
		switch {
		case columnSetting.FieldRef != nil:
			q = q.AddField(columnSetting.FieldRef)
		case columnSetting.Name != "":
			idx := indexOfName(baselineNames, columnSetting.Name)
			if idx < 0 {
				log.Printf("[WARN] table.columns entry %q matches no default column", columnSetting.Name)
				skipped++
				continue
			}
			q = q.AddField(baselineDims[idx].MBQL())
		default:
			log.Printf("[WARN] table.columns entry carries neither a field reference nor a name")
			skipped++
		}
	}
	if skipped > 0 {
		log.Printf("[INFO] settings sync skipped %s", names.CountLabel(skipped, "column setting"))
	}

	if sameBaseDimensions(q.ColumnDimensions(), baselineDims) {
		q = q.ClearFields()
	}
	return question.SetQuery(q)
}

func sameBaseDimensions(left, right []*mbql.Dimension) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !left[i].IsSameBaseDimension(right[i]) {
			return false
		}
	}
	return true
}

func indexOfName(columnNames []string, name string) int {
	for i, n := range columnNames {
		if n == name {
			return i
		}
	}
	return -1
}
