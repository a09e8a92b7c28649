// Package settings reconciles user column-visibility configuration with
// result columns and with a structured query's explicit field list.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/hgupta2363/metabase/utils"
)

// TableColumnsKey is the visualization-settings key holding column
// visibility configuration.
const TableColumnsKey = "table.columns"

// ColumnSetting is one persisted column-visibility preference. FieldRef
// carries the raw field reference of the configured column when the editor
// knew it; Name is the fallback identity. Read-only input here.
type ColumnSetting struct {
	Name     string `json:"name,omitempty"`
	FieldRef []any  `json:"fieldRef,omitempty"`
	Enabled  bool   `json:"enabled"`
}

/*
ColumnSettingsFromValue coerces a stored table.columns value into column
settings.

Settings arrive in different currencies depending on where the caller got
them: already-typed slices, decoded JSON (slices of maps), or raw JSON
bytes. All are accepted; a nil value, typed or not, yields nil settings
with no error.
*/
func ColumnSettingsFromValue(value any) ([]*ColumnSetting, error) {
	// a typed nil in the settings map means the same as no value
	if utils.InterfaceIsNil(value) {
		return nil, nil
	}
	switch v := value.(type) {
	case []*ColumnSetting:
		return v, nil
	case []ColumnSetting:
		columnSettings := make([]*ColumnSetting, len(v))
		for i := range v {
			columnSettings[i] = &v[i]
		}
		return columnSettings, nil
	case json.RawMessage:
		return parseColumnSettings(v)
	case []byte:
		return parseColumnSettings(v)
	case string:
		return parseColumnSettings([]byte(v))
	}
	// decoded-JSON shapes take a round trip through the encoder
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("unsupported table.columns value of type %T: %s", value, err.Error())
	}
	return parseColumnSettings(data)
}

func parseColumnSettings(data []byte) ([]*ColumnSetting, error) {
	var columnSettings []*ColumnSetting
	if err := json.Unmarshal(data, &columnSettings); err != nil {
		return nil, fmt.Errorf("invalid table.columns value: %s", err.Error())
	}
	return columnSettings, nil
}
