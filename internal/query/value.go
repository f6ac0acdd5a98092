package query

import "strconv"

// ValueKind discriminates the two runtime kinds a cell can resolve to.
type ValueKind int

const (
	// KindNumber is a cell that parsed as a floating-point number.
	KindNumber ValueKind = iota
	// KindText is any cell that did not parse as a number.
	KindText
)

// Value is the typed form of a raw cell string used for comparison:
// either a number or the original text.
type Value struct {
	Kind ValueKind
	Num  float64
	Text string
}

// ParseValue infers the typed form of a raw cell string.
//
// It attempts a float parse (standard decimal notation, optional sign and
// fractional part, as accepted by strconv.ParseFloat) and falls back to the
// raw string unchanged on failure. No trimming or case normalization is
// applied; string comparisons stay case-sensitive.
func ParseValue(raw string) Value {
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Kind: KindNumber, Num: num, Text: raw}
	}
	return Value{Kind: KindText, Text: raw}
}

// CompareValues compares two typed values and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// When both values are numbers they compare numerically; in every other
// case both compare as their raw strings by code point. Deciding this per
// pair keeps the order total even for columns mixing numbers and text.
//
// Numeric equality is exact float64 equality, with the usual floating-point
// caveat: values that differ below float64 precision compare equal, and
// arithmetic artifacts are not rounded away.
func CompareValues(a, b Value) int {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}

	switch {
	case a.Text < b.Text:
		return -1
	case a.Text > b.Text:
		return 1
	default:
		return 0
	}
}
