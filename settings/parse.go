package settings

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// ParseJSON parses a settings document in JSON form: an array of column
// settings.
func ParseJSON(data []byte) ([]*ColumnSetting, error) {
	return parseColumnSettings(data)
}

// ParseYAML parses a settings document in YAML form, using the same field
// names as the JSON form.
func ParseYAML(data []byte) ([]*ColumnSetting, error) {
	var columnSettings []*ColumnSetting
	if err := yaml.Unmarshal(data, &columnSettings); err != nil {
		return nil, fmt.Errorf("invalid settings YAML: %s", err.Error())
	}
	return columnSettings, nil
}
