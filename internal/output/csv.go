package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/csvcat/csvcat/internal/reader"
)

// CSVFormatter outputs a dataset as CSV.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the dataset as CSV. The header row preserves the dataset's
// column order.
func (c *CSVFormatter) Format(ds reader.Dataset) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(ds.Columns); err != nil {
		return err
	}

	for _, row := range ds.Rows {
		record := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			record[i] = row[col]
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
