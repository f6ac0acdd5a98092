// Package output provides formatters for rendering query results.
//
// Currently supported formats:
//   - table: human-aligned text table
//   - csv: comma-separated values with header row
//   - json: JSON Lines, one object per row
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/csvcat/csvcat/internal/reader"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a dataset in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the dataset in the formatter's specific format
	Format(ds reader.Dataset) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
