// Command csvcat queries CSV files with filter, sort and aggregate
// expressions and prints the result as a table, CSV or JSON Lines.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/csvcat/csvcat/internal/config"
	"github.com/csvcat/csvcat/internal/log"
	"github.com/csvcat/csvcat/internal/output"
	"github.com/csvcat/csvcat/internal/query"
	"github.com/csvcat/csvcat/internal/reader"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the csvcat command.
func newRootCmd() *cobra.Command {
	var (
		fileFlag      string
		whereFlag     string
		orderByFlag   string
		aggregateFlag string
		formatFlag    string
		verboseFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "csvcat",
		Short: "Query CSV files from the command line",
		Long: `csvcat reads a CSV file and applies an optional filter, sort order and
aggregation, in that fixed order.

Examples:
  csvcat --file data.csv
  csvcat --file data.csv --where "price>100"
  csvcat --file data.csv --order-by "price=desc"
  csvcat --file data.csv --aggregate "price=avg"
  csvcat --file data.csv --where "brand=apple" --order-by "price=asc" --aggregate "price=avg"

Filter operators: >, <, =
Aggregate operations: avg, min, max
Sort directions: asc, desc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, runOptions{
				file:      fileFlag,
				where:     whereFlag,
				orderBy:   orderByFlag,
				aggregate: aggregateFlag,
				format:    formatFlag,
				verbose:   verboseFlag,
			})
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "path to the CSV file (required)")
	cmd.Flags().StringVar(&whereFlag, "where", "", `filter condition, e.g. "price>500" or "brand=apple"`)
	cmd.Flags().StringVar(&orderByFlag, "order-by", "", `sort order, e.g. "price=asc" or "name=desc"`)
	cmd.Flags().StringVar(&aggregateFlag, "aggregate", "", `aggregation, e.g. "price=avg"`)
	cmd.Flags().StringVar(&formatFlag, "format", "", "output format: table, csv, json (default from config, table)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runOptions are the resolved flag values for one invocation.
type runOptions struct {
	file      string
	where     string
	orderBy   string
	aggregate string
	format    string
	verbose   bool
}

func run(cmd *cobra.Command, opts runOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if opts.verbose {
		level = logrus.DebugLevel
	}
	logger := log.New(level)

	// Parse all expressions and validate the format before touching the
	// file so malformed invocations fail without any I/O.
	qcfg, err := buildQueryConfig(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	formatter, err := newFormatter(format, out)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(strings.ToLower(opts.file), ".csv") {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: file does not have a .csv extension")
	}

	ds, err := reader.ReadFile(opts.file)
	if err != nil {
		return err
	}
	logger.WithField("rows", len(ds.Rows)).Debugf("loaded %s", opts.file)

	res, err := query.Run(ds, qcfg, logger)
	if err != nil {
		return err
	}

	if res.Aggregate != nil {
		agg := res.Aggregate
		fmt.Fprintf(out, "%s of %s = %s\n", agg.Op, agg.Column, formatNumber(agg.Value))
		return nil
	}

	if len(res.Dataset.Rows) == 0 {
		if qcfg.Filter != nil {
			fmt.Fprintln(out, "No records matched the filter.")
		} else {
			fmt.Fprintln(out, "No records to display.")
		}
		return nil
	}

	if err := formatter.Format(res.Dataset); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if format == "table" {
		fmt.Fprintf(out, "\nFound %d record(s)\n", len(res.Dataset.Rows))
	}

	return nil
}

// buildQueryConfig parses the supplied expression flags into pipeline specs.
func buildQueryConfig(opts runOptions) (query.Config, error) {
	var qcfg query.Config

	if opts.where != "" {
		spec, err := query.ParseFilter(opts.where)
		if err != nil {
			return query.Config{}, err
		}
		qcfg.Filter = &spec
	}
	if opts.orderBy != "" {
		spec, err := query.ParseOrderBy(opts.orderBy)
		if err != nil {
			return query.Config{}, err
		}
		qcfg.Sort = &spec
	}
	if opts.aggregate != "" {
		spec, err := query.ParseAggregate(opts.aggregate)
		if err != nil {
			return query.Config{}, err
		}
		qcfg.Aggregate = &spec
	}

	return qcfg, nil
}

// newFormatter selects the output formatter for the given format name.
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: table, csv, json)", format)
	}
}

// formatNumber renders an aggregate value without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
