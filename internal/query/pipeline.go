package query

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/csvcat/csvcat/internal/reader"
)

// Config holds at most one of each spec. A nil spec means the stage is
// skipped. Built once from the CLI arguments and consumed by Run.
type Config struct {
	Filter    *FilterSpec
	Sort      *SortSpec
	Aggregate *AggregateSpec
}

// Result is the outcome of a pipeline run: either a dataset, or a scalar
// when an aggregation was requested (Aggregate non-nil).
type Result struct {
	Dataset   reader.Dataset
	Aggregate *AggregateResult
}

// Run executes the query pipeline over the dataset.
//
// Stages always run in the fixed order filter, sort, aggregate, regardless
// of the order the flags were supplied. Sorting still happens before an
// aggregation even though the aggregate ignores row order; the stage order
// is deterministic by contract.
//
// Column existence is validated for every supplied spec before any row is
// processed, so an unknown column fails the query without touching the
// data. Each stage produces a new dataset; the input is never mutated.
//
// logger may be nil, in which case the logrus standard logger is used.
func Run(ds reader.Dataset, cfg Config, logger logrus.FieldLogger) (Result, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("run_id", uuid.NewString())

	if err := validateColumns(ds, cfg); err != nil {
		return Result{}, err
	}

	var err error
	log.WithField("rows", len(ds.Rows)).Debug("pipeline start")

	if cfg.Filter != nil {
		ds, err = ApplyFilter(ds, *cfg.Filter)
		if err != nil {
			return Result{}, err
		}
		log.WithField("rows", len(ds.Rows)).Debugf("filter %s%s%s applied", cfg.Filter.Column, cfg.Filter.Operator, cfg.Filter.Operand)
	}

	if cfg.Sort != nil {
		ds, err = ApplySort(ds, *cfg.Sort)
		if err != nil {
			return Result{}, err
		}
		log.WithField("column", cfg.Sort.Column).Debug("sort applied")
	}

	if cfg.Aggregate != nil {
		agg, err := Aggregate(ds, *cfg.Aggregate)
		if err != nil {
			return Result{}, err
		}
		log.WithField("count", agg.Count).Debugf("aggregate %s(%s) = %v", agg.Op, agg.Column, agg.Value)
		return Result{Dataset: ds, Aggregate: &agg}, nil
	}

	return Result{Dataset: ds}, nil
}

// validateColumns checks every supplied spec against the dataset header.
func validateColumns(ds reader.Dataset, cfg Config) error {
	if cfg.Filter != nil && !ds.HasColumn(cfg.Filter.Column) {
		return unknownColumn(ds, cfg.Filter.Column)
	}
	if cfg.Sort != nil && !ds.HasColumn(cfg.Sort.Column) {
		return unknownColumn(ds, cfg.Sort.Column)
	}
	if cfg.Aggregate != nil && !ds.HasColumn(cfg.Aggregate.Column) {
		return unknownColumn(ds, cfg.Aggregate.Column)
	}
	return nil
}
