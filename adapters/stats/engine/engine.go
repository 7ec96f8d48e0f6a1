// Package engine implements the statistical testing procedures: per-group
// descriptive summaries, the independent two-sample t-test, one-way ANOVA and
// the chi-square test of independence, each paired with its effect size and a
// shared interpretation step.
//
// Every procedure is a pure function of its inputs. The engine never mutates
// the dataset and holds no state across calls, so concurrent callers need no
// coordination.
package engine

import (
	"oncostat/domain/dataset"
)

// Engine binds the test procedures to one read-only dataset
type Engine struct {
	ds *dataset.Dataset
}

// New creates an engine over a dataset. The dataset stays owned by the caller.
func New(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Dataset returns the underlying dataset reference
func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}

// partition builds the indexed group view for a categorical column
func (e *Engine) partition(groupBy string) (*dataset.GroupPartition, error) {
	return dataset.PartitionBy(e.ds, groupBy)
}
