package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/csvcat/csvcat/internal/reader"
)

// TableFormatter renders a dataset as an aligned text table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the dataset as a bordered table. Column headers are taken
// verbatim from the dataset and cells keep their raw string form.
func (t *TableFormatter) Format(ds reader.Dataset) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(ds.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range ds.Rows {
		record := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			record[i] = row[col]
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
