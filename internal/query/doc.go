// Package query implements the csvcat query pipeline over CSV datasets.
//
// A query is at most one filter predicate, one sort order, and one
// aggregation, each written in a compact expression language:
//
//   - filter:    "price>500", "brand=apple", "rating<4.8"
//   - order-by:  "price=asc", "name=desc"
//   - aggregate: "price=avg", "rating=max", "price=min"
//
// The three expressions are parsed into specs by ParseFilter, ParseOrderBy
// and ParseAggregate, then executed in a fixed order (filter, then sort,
// then aggregate) by Run.
//
// Cell values are plain strings as read from the file. Comparison first
// attempts to treat both sides as numbers; when either side does not parse
// as a number, both compare as raw strings by code point. See ParseValue
// and CompareValues.
//
// # Basic usage
//
//	ds, err := reader.ReadFile("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filter, err := query.ParseFilter("price>500")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := query.Run(ds, query.Config{Filter: &filter}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error handling
//
// Failures are reported through sentinel error kinds that callers can test
// with errors.Is:
//
//   - ErrMalformedExpression: an expression does not match its grammar
//   - ErrUnknownColumn: a spec names a column the dataset does not have
//   - ErrNonNumericColumn: an aggregated column holds a non-numeric cell
//   - ErrEmptyInput: aggregation over zero rows
//
// Column existence is checked for every supplied spec before any row is
// touched, so an unknown column fails the whole query up front.
package query
