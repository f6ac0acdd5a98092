package query

import (
	"sort"

	"github.com/csvcat/csvcat/internal/reader"
)

// ApplySort returns a new dataset with rows ordered by the spec's column.
//
// The sort is stable: rows with equal keys keep their relative input order.
// Comparison is typed per row pair (see CompareValues), so a numeric column
// stored as strings still sorts numerically, while mixed or non-numeric
// columns fall back to code-point order.
func ApplySort(ds reader.Dataset, spec SortSpec) (reader.Dataset, error) {
	if !ds.HasColumn(spec.Column) {
		return reader.Dataset{}, unknownColumn(ds, spec.Column)
	}

	sorted := reader.Dataset{Columns: ds.Columns, Rows: make([]reader.Row, len(ds.Rows))}
	copy(sorted.Rows, ds.Rows)

	sort.SliceStable(sorted.Rows, func(i, j int) bool {
		cmp := CompareValues(
			ParseValue(sorted.Rows[i][spec.Column]),
			ParseValue(sorted.Rows[j][spec.Column]),
		)
		if spec.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted, nil
}
