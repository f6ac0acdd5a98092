package query

import (
	"fmt"

	"github.com/csvcat/csvcat/internal/reader"
)

// AggregateResult is the scalar outcome of an aggregation: the operation,
// the column it ran over, the computed value and how many cells went in.
type AggregateResult struct {
	Column string
	Op     AggregateOp
	Value  float64
	Count  int
}

// Aggregate reduces one column of the dataset to a single number.
//
// Every cell in the column must parse as numeric; the first cell that does
// not fails the whole aggregation with ErrNonNumericColumn (no silent
// skipping). Aggregating zero rows fails with ErrEmptyInput rather than
// returning zero or NaN. The dataset is not modified.
func Aggregate(ds reader.Dataset, spec AggregateSpec) (AggregateResult, error) {
	if !ds.HasColumn(spec.Column) {
		return AggregateResult{}, unknownColumn(ds, spec.Column)
	}
	if len(ds.Rows) == 0 {
		return AggregateResult{}, fmt.Errorf("%w: no rows to aggregate in column %q", ErrEmptyInput, spec.Column)
	}

	values := make([]float64, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		v := ParseValue(row[spec.Column])
		if v.Kind != KindNumber {
			return AggregateResult{}, fmt.Errorf("%w: column %q contains non-numeric value %q", ErrNonNumericColumn, spec.Column, row[spec.Column])
		}
		values = append(values, v.Num)
	}

	result := AggregateResult{Column: spec.Column, Op: spec.Op, Count: len(values)}

	switch spec.Op {
	case AggAvg:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		result.Value = sum / float64(len(values))
	case AggMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		result.Value = min
	case AggMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		result.Value = max
	default:
		return AggregateResult{}, fmt.Errorf("%w: unknown aggregate operation %q", ErrMalformedExpression, spec.Op)
	}

	return result, nil
}
