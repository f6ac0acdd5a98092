// Package reader provides functionality for loading CSV files into memory.
//
// It reads a whole file at once and returns a Dataset: the ordered header
// plus every record as a column-name-to-cell map.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoHeader is returned when a file is empty or has no header line.
var ErrNoHeader = errors.New("file has no header line")

// Row is a single record, mapping column name to the raw cell string.
type Row map[string]string

// Dataset is the ordered header of a CSV file plus all of its rows.
//
// Every row holds exactly the columns listed in Columns. Rows keeps the
// order records appear in the file.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is one of the dataset's columns.
func (d Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// ReadFile loads an entire CSV file into a Dataset.
//
// The first line is the header and defines the column names verbatim, order
// preserved. The whole file is read into memory, so this is not suitable for
// files larger than available memory.
//
// Example:
//
//	ds, err := reader.ReadFile("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
func ReadFile(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return readAll(file)
}

// readAll reads the header and all records from r.
func readAll(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, ErrNoHeader
		}
		return Dataset{}, fmt.Errorf("failed to read header: %w", err)
	}

	ds := Dataset{Columns: header, Rows: make([]Row, 0)}
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Dataset{}, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
