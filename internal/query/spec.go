package query

import (
	"fmt"
	"strings"
)

// FilterOperator is a single-character comparison operator.
type FilterOperator string

const (
	OpGreater FilterOperator = ">"
	OpLess    FilterOperator = "<"
	OpEqual   FilterOperator = "="
)

// FilterSpec is a parsed filter expression: column, operator, raw operand.
type FilterSpec struct {
	Column   string
	Operator FilterOperator
	Operand  string
}

// SortSpec is a parsed order-by expression.
type SortSpec struct {
	Column     string
	Descending bool
}

// AggregateOp is an aggregation operation name.
type AggregateOp string

const (
	AggAvg AggregateOp = "avg"
	AggMin AggregateOp = "min"
	AggMax AggregateOp = "max"
)

// AggregateSpec is a parsed aggregate expression.
type AggregateSpec struct {
	Column string
	Op     AggregateOp
}

// combinedOperators are multi-character operators the filter grammar does
// not support. They are rejected up front: without this check ">=value"
// would silently parse as ">" with an operand starting with "=".
var combinedOperators = []string{"<>", "!=", "<=", ">=", "=="}

// ParseFilter parses a filter expression of the form <column><op><value>,
// where op is one of ">", "<", "=".
//
// The expression is split at the first occurrence of an operator character,
// whichever of the three appears earliest; in "a>b=c" the ">" wins and the
// column is "a". Combined operators (">=", "<=", "!=", "<>", "==") are
// rejected rather than misparsed.
func ParseFilter(s string) (FilterSpec, error) {
	for _, op := range combinedOperators {
		if strings.Contains(s, op) {
			return FilterSpec{}, fmt.Errorf("%w: unsupported operator %q in %q (use one of >, <, =)", ErrMalformedExpression, op, s)
		}
	}

	idx := strings.IndexAny(s, "><=")
	if idx < 0 {
		return FilterSpec{}, fmt.Errorf("%w: no operator found in %q (use one of >, <, =)", ErrMalformedExpression, s)
	}

	column := s[:idx]
	operand := s[idx+1:]
	if column == "" {
		return FilterSpec{}, fmt.Errorf("%w: missing column name in %q", ErrMalformedExpression, s)
	}
	if operand == "" {
		return FilterSpec{}, fmt.Errorf("%w: missing comparison value in %q", ErrMalformedExpression, s)
	}

	return FilterSpec{
		Column:   column,
		Operator: FilterOperator(s[idx : idx+1]),
		Operand:  operand,
	}, nil
}

// ParseOrderBy parses an order-by expression of the form <column>=<asc|desc>.
// The direction is case-sensitive.
func ParseOrderBy(s string) (SortSpec, error) {
	column, direction, ok := strings.Cut(s, "=")
	if !ok {
		return SortSpec{}, fmt.Errorf("%w: %q is not of the form column=asc|desc", ErrMalformedExpression, s)
	}
	if column == "" {
		return SortSpec{}, fmt.Errorf("%w: missing column name in %q", ErrMalformedExpression, s)
	}

	switch direction {
	case "asc":
		return SortSpec{Column: column}, nil
	case "desc":
		return SortSpec{Column: column, Descending: true}, nil
	default:
		return SortSpec{}, fmt.Errorf("%w: unknown sort direction %q in %q (use asc or desc)", ErrMalformedExpression, direction, s)
	}
}

// ParseAggregate parses an aggregate expression of the form
// <column>=<avg|min|max>.
func ParseAggregate(s string) (AggregateSpec, error) {
	column, op, ok := strings.Cut(s, "=")
	if !ok {
		return AggregateSpec{}, fmt.Errorf("%w: %q is not of the form column=avg|min|max", ErrMalformedExpression, s)
	}
	if column == "" {
		return AggregateSpec{}, fmt.Errorf("%w: missing column name in %q", ErrMalformedExpression, s)
	}

	switch AggregateOp(op) {
	case AggAvg, AggMin, AggMax:
		return AggregateSpec{Column: column, Op: AggregateOp(op)}, nil
	default:
		return AggregateSpec{}, fmt.Errorf("%w: unknown aggregate operation %q in %q (use avg, min or max)", ErrMalformedExpression, op, s)
	}
}
