package query

import "errors"

var (
	// ErrMalformedExpression is returned when a filter, order-by or
	// aggregate expression does not match its expected shape.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnknownColumn is returned when a spec references a column that
	// does not exist in the dataset header.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNonNumericColumn is returned when an aggregated column contains
	// a value that does not parse as a number.
	ErrNonNumericColumn = errors.New("non-numeric column")

	// ErrEmptyInput is returned when aggregation is requested over zero
	// rows, e.g. after a filter that matched nothing.
	ErrEmptyInput = errors.New("empty input")
)
