package dataset

import (
	"math"

	"oncostat/domain/core"
)

// GroupPartition is a derived view splitting a dataset into disjoint subsets
// keyed by the values of one categorical column. Each row with a non-missing
// group label belongs to exactly one subset. Built in a single pass so test
// procedures stay O(n) regardless of group count.
type GroupPartition struct {
	column  string
	indices map[string][]int
	order   []string
}

// PartitionBy builds a group partition over a categorical column
func PartitionBy(d *Dataset, column string) (*GroupPartition, error) {
	labels, err := d.Categorical(column)
	if err != nil {
		return nil, err
	}

	p := &GroupPartition{
		column:  column,
		indices: make(map[string][]int),
	}
	for i, label := range labels {
		if label == "" {
			continue
		}
		if _, seen := p.indices[label]; !seen {
			p.order = append(p.order, label)
		}
		p.indices[label] = append(p.indices[label], i)
	}
	return p, nil
}

// Column returns the grouping column name
func (p *GroupPartition) Column() string {
	return p.column
}

// Groups returns group labels in first-appearance order
func (p *GroupPartition) Groups() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// NumGroups returns the number of non-empty groups
func (p *GroupPartition) NumGroups() int {
	return len(p.order)
}

// Size returns the number of rows in a group (0 for an unknown label)
func (p *GroupPartition) Size(label string) int {
	return len(p.indices[label])
}

// Has reports whether a group label exists in the partition
func (p *GroupPartition) Has(label string) bool {
	_, ok := p.indices[label]
	return ok
}

// ContinuousGroup returns the non-missing values of a continuous column
// restricted to one group of the partition.
func (p *GroupPartition) ContinuousGroup(d *Dataset, column, label string) ([]float64, error) {
	values, err := d.Continuous(column)
	if err != nil {
		return nil, err
	}
	idx := p.indices[label]
	out := make([]float64, 0, len(idx))
	for _, i := range idx {
		if !math.IsNaN(values[i]) {
			out = append(out, values[i])
		}
	}
	return out, nil
}

// RequireGroup returns the group's non-missing values for a continuous column,
// signalling InsufficientData when the group is empty or below minObs.
func (p *GroupPartition) RequireGroup(d *Dataset, column, label string, minObs int) ([]float64, error) {
	if !p.Has(label) {
		return nil, core.NewEmptyGroupError(label)
	}
	values, err := p.ContinuousGroup(d, column, label)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, core.NewEmptyGroupError(label)
	}
	if len(values) < minObs {
		return nil, core.NewInsufficientDataError(label, minObs, len(values))
	}
	return values, nil
}
