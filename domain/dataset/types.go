package dataset

import (
	"math"

	"oncostat/domain/core"
)

// ColumnType represents the declared semantic type of a column
type ColumnType string

const (
	Continuous  ColumnType = "continuous"
	Categorical ColumnType = "categorical"
)

// Column describes a single declared column in the dataset schema
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Dataset is a column-oriented tabular dataset. Rows are patients, columns are
// named features. Continuous columns store NaN for missing values; categorical
// columns store "" for missing values. The statistical engine treats a Dataset
// as read-only.
type Dataset struct {
	columns []Column
	numeric map[string][]float64
	labels  map[string][]string
	rows    int
}

// New creates an empty dataset with a fixed row count
func New(rows int) *Dataset {
	return &Dataset{
		numeric: make(map[string][]float64),
		labels:  make(map[string][]string),
		rows:    rows,
	}
}

// AddContinuous declares a continuous column. The value slice must have exactly
// one entry per row; NaN marks a missing value.
func (d *Dataset) AddContinuous(name string, values []float64) error {
	if len(values) != d.rows {
		return core.NewValidationError(name, "value count does not match row count")
	}
	if _, exists := d.numeric[name]; exists {
		return core.NewValidationError(name, "column already declared")
	}
	if _, exists := d.labels[name]; exists {
		return core.NewValidationError(name, "column already declared")
	}
	for _, v := range values {
		if math.IsInf(v, 0) {
			return core.NewValidationError(name, "continuous column contains non-finite value")
		}
	}
	d.columns = append(d.columns, Column{Name: name, Type: Continuous})
	d.numeric[name] = values
	return nil
}

// AddCategorical declares a categorical column. The value slice must have
// exactly one entry per row; "" marks a missing value.
func (d *Dataset) AddCategorical(name string, values []string) error {
	if len(values) != d.rows {
		return core.NewValidationError(name, "value count does not match row count")
	}
	if _, exists := d.numeric[name]; exists {
		return core.NewValidationError(name, "column already declared")
	}
	if _, exists := d.labels[name]; exists {
		return core.NewValidationError(name, "column already declared")
	}
	d.columns = append(d.columns, Column{Name: name, Type: Categorical})
	d.labels[name] = values
	return nil
}

// Rows returns the declared row count
func (d *Dataset) Rows() int {
	return d.rows
}

// Columns returns the declared schema in declaration order
func (d *Dataset) Columns() []Column {
	out := make([]Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// HasColumn reports whether a column is declared
func (d *Dataset) HasColumn(name string) bool {
	_, n := d.numeric[name]
	_, c := d.labels[name]
	return n || c
}

// TypeOf returns the declared type of a column
func (d *Dataset) TypeOf(name string) (ColumnType, error) {
	if _, ok := d.numeric[name]; ok {
		return Continuous, nil
	}
	if _, ok := d.labels[name]; ok {
		return Categorical, nil
	}
	return "", core.NewUnknownColumnError(name)
}

// Continuous returns the raw values of a continuous column, NaN included.
// The returned slice is shared with the dataset and must not be mutated.
func (d *Dataset) Continuous(name string) ([]float64, error) {
	values, ok := d.numeric[name]
	if !ok {
		if _, isLabel := d.labels[name]; isLabel {
			return nil, core.NewColumnTypeError(name, string(Continuous), string(Categorical))
		}
		return nil, core.NewUnknownColumnError(name)
	}
	return values, nil
}

// Categorical returns the raw values of a categorical column, "" included.
// The returned slice is shared with the dataset and must not be mutated.
func (d *Dataset) Categorical(name string) ([]string, error) {
	values, ok := d.labels[name]
	if !ok {
		if _, isNumeric := d.numeric[name]; isNumeric {
			return nil, core.NewColumnTypeError(name, string(Categorical), string(Continuous))
		}
		return nil, core.NewUnknownColumnError(name)
	}
	return values, nil
}

// ContinuousComplete returns the non-missing values of a continuous column.
func (d *Dataset) ContinuousComplete(name string) ([]float64, error) {
	values, err := d.Continuous(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
