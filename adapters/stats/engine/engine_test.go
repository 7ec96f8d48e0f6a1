package engine

import (
	"testing"

	"oncostat/domain/dataset"
)

// twoGroupDataset builds a dataset with one continuous column split between
// two diagnosis labels.
func twoGroupDataset(t *testing.T, a, b []float64) *dataset.Dataset {
	t.Helper()
	values := append(append([]float64{}, a...), b...)
	labels := make([]string, 0, len(values))
	for range a {
		labels = append(labels, "A")
	}
	for range b {
		labels = append(labels, "B")
	}
	ds := dataset.New(len(values))
	if err := ds.AddContinuous("value", values); err != nil {
		t.Fatalf("add continuous: %v", err)
	}
	if err := ds.AddCategorical("group", labels); err != nil {
		t.Fatalf("add categorical: %v", err)
	}
	return ds
}

// groupedDataset builds a dataset from labeled value slices in order
func groupedDataset(t *testing.T, groups map[string][]float64, order []string) *dataset.Dataset {
	t.Helper()
	var values []float64
	var labels []string
	for _, label := range order {
		for _, v := range groups[label] {
			values = append(values, v)
			labels = append(labels, label)
		}
	}
	ds := dataset.New(len(values))
	if err := ds.AddContinuous("value", values); err != nil {
		t.Fatalf("add continuous: %v", err)
	}
	if err := ds.AddCategorical("group", labels); err != nil {
		t.Fatalf("add categorical: %v", err)
	}
	return ds
}
