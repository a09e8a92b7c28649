package dataset

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/turbot/go-kit/helpers"
	"github.com/turbot/go-kit/types"
)

// Format renders the dataset as a bordered text table, for debug output and
// log dumps.
func (d *Dataset) Format(out io.Writer) {
	table := tablewriter.NewWriter(out)
	headers := make([]string, len(d.Cols))
	for i, col := range d.Cols {
		headers[i] = col.DisplayName
		if headers[i] == "" {
			headers[i] = col.Name
		}
	}
	table.SetHeader(headers)
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	var data [][]string
	for _, row := range d.Rows {
		itemData := make([]string, len(row))
		for i, value := range row {
			if helpers.IsNil(value) {
				itemData[i] = "<null>"
				continue
			}
			itemData[i] = types.ToString(value)
		}
		data = append(data, itemData)
	}
	table.AppendBulk(data)
	table.Render()
}

func (d *Dataset) String() string {
	var b bytes.Buffer
	d.Format(&b)
	return b.String()
}
