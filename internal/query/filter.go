package query

import (
	"fmt"
	"strings"

	"github.com/csvcat/csvcat/internal/reader"
)

// ApplyFilter returns a new dataset holding only the rows matching spec.
//
// Each cell and the operand are parsed to typed values independently, so a
// numeric comparison is used whenever both sides parse as numbers and a
// string comparison otherwise. Surviving rows keep their input order. An
// empty result is a valid dataset with the same header, not an error.
func ApplyFilter(ds reader.Dataset, spec FilterSpec) (reader.Dataset, error) {
	if !ds.HasColumn(spec.Column) {
		return reader.Dataset{}, unknownColumn(ds, spec.Column)
	}

	operand := ParseValue(spec.Operand)
	filtered := reader.Dataset{Columns: ds.Columns, Rows: make([]reader.Row, 0)}

	for _, row := range ds.Rows {
		cmp := CompareValues(ParseValue(row[spec.Column]), operand)

		var match bool
		switch spec.Operator {
		case OpEqual:
			match = cmp == 0
		case OpGreater:
			match = cmp > 0
		case OpLess:
			match = cmp < 0
		default:
			return reader.Dataset{}, fmt.Errorf("%w: unsupported operator %q", ErrMalformedExpression, spec.Operator)
		}

		if match {
			filtered.Rows = append(filtered.Rows, row)
		}
	}

	return filtered, nil
}

// unknownColumn builds an ErrUnknownColumn listing the available columns.
func unknownColumn(ds reader.Dataset, column string) error {
	return fmt.Errorf("%w: %q (available columns: %s)", ErrUnknownColumn, column, strings.Join(ds.Columns, ", "))
}
