package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/csvcat/csvcat/internal/reader"
)

func productsDataset() reader.Dataset {
	return reader.Dataset{
		Columns: []string{"name", "price", "rating"},
		Rows: []reader.Row{
			{"name": "A", "price": "500", "rating": "4.7"},
			{"name": "B", "price": "800", "rating": "4.9"},
			{"name": "C", "price": "500", "rating": "4.5"},
		},
	}
}

func TestTableFormatter_Golden(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	require.NoError(t, f.Format(productsDataset()))

	// Refresh with: go test ./internal/output -run TestTableFormatter_Golden -update
	g := goldie.New(t)
	g.Assert(t, "table_products", buf.Bytes())
}

func TestTableFormatter_HeaderVerbatim(t *testing.T) {
	ds := reader.Dataset{
		Columns: []string{"Unit Price"},
		Rows:    []reader.Row{{"Unit Price": "10"}},
	}

	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	require.NoError(t, f.Format(ds))

	// Headers must not be upper-cased or otherwise reformatted.
	require.Contains(t, buf.String(), "Unit Price")
	require.NotContains(t, buf.String(), "UNIT PRICE")
}

func TestTableFormatter_ColumnOrderFollowsHeader(t *testing.T) {
	ds := reader.Dataset{
		Columns: []string{"b", "a"},
		Rows:    []reader.Row{{"a": "1", "b": "2"}},
	}

	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	require.NoError(t, f.Format(ds))

	out := buf.String()
	require.Less(t, strings.Index(out, "b"), strings.Index(out, "a"))
}

func TestTableFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	f := NewTableFormatter(&first)
	f.SetOutput(&second)

	require.NoError(t, f.Format(productsDataset()))
	require.Zero(t, first.Len())
	require.NotZero(t, second.Len())
}
