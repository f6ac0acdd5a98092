package output

import (
	"encoding/json"
	"io"

	"github.com/csvcat/csvcat/internal/reader"
)

// JSONFormatter outputs a dataset as JSON Lines.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the dataset as JSON Lines (one JSON object per row).
// Object keys are sorted by encoding/json, not by header order.
func (j *JSONFormatter) Format(ds reader.Dataset) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range ds.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
