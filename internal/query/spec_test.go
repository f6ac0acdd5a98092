package query

import (
	"errors"
	"testing"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want FilterSpec
	}{
		{"greater", "price>500", FilterSpec{Column: "price", Operator: OpGreater, Operand: "500"}},
		{"less", "price<500", FilterSpec{Column: "price", Operator: OpLess, Operand: "500"}},
		{"equal", "brand=apple", FilterSpec{Column: "brand", Operator: OpEqual, Operand: "apple"}},
		{"first operator wins", "note=a>b", FilterSpec{Column: "note", Operator: OpEqual, Operand: "a>b"}},
		{"earliest operator wins over equals", "a>b=c", FilterSpec{Column: "a", Operator: OpGreater, Operand: "b=c"}},
		{"float operand", "rating>4.5", FilterSpec{Column: "rating", Operator: OpGreater, Operand: "4.5"}},
		{"negative operand", "delta<-1", FilterSpec{Column: "delta", Operator: OpLess, Operand: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.expr)
			if err != nil {
				t.Fatalf("ParseFilter(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseFilter_Malformed(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"no operator", "price500"},
		{"empty string", ""},
		{"missing column", ">500"},
		{"missing operand", "price>"},
		{"greater equal rejected", "price>=500"},
		{"less equal rejected", "price<=500"},
		{"not equal rejected", "price!=500"},
		{"diamond rejected", "price<>500"},
		{"double equal rejected", "price==500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.expr)
			if !errors.Is(err, ErrMalformedExpression) {
				t.Errorf("ParseFilter(%q) error = %v, want ErrMalformedExpression", tt.expr, err)
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want SortSpec
	}{
		{"ascending", "price=asc", SortSpec{Column: "price"}},
		{"descending", "name=desc", SortSpec{Column: "name", Descending: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderBy(tt.expr)
			if err != nil {
				t.Fatalf("ParseOrderBy(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseOrderBy(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseOrderBy_Malformed(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"no equals", "price asc"},
		{"empty string", ""},
		{"missing column", "=asc"},
		{"missing direction", "price="},
		{"unknown direction", "price=up"},
		{"direction is case-sensitive", "price=ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOrderBy(tt.expr)
			if !errors.Is(err, ErrMalformedExpression) {
				t.Errorf("ParseOrderBy(%q) error = %v, want ErrMalformedExpression", tt.expr, err)
			}
		})
	}
}

func TestParseAggregate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want AggregateSpec
	}{
		{"avg", "price=avg", AggregateSpec{Column: "price", Op: AggAvg}},
		{"min", "price=min", AggregateSpec{Column: "price", Op: AggMin}},
		{"max", "rating=max", AggregateSpec{Column: "rating", Op: AggMax}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAggregate(tt.expr)
			if err != nil {
				t.Fatalf("ParseAggregate(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseAggregate(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseAggregate_Malformed(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"no equals", "price avg"},
		{"empty string", ""},
		{"missing column", "=avg"},
		{"missing operation", "price="},
		{"unknown operation", "price=sum"},
		{"operation is case-sensitive", "price=AVG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAggregate(tt.expr)
			if !errors.Is(err, ErrMalformedExpression) {
				t.Errorf("ParseAggregate(%q) error = %v, want ErrMalformedExpression", tt.expr, err)
			}
		})
	}
}
