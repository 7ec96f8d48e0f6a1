package dataset

import (
	"math"
	"testing"

	"oncostat/domain/core"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds := New(6)
	if err := ds.AddContinuous("size", []float64{1, 2, 3, 4, 5, math.NaN()}); err != nil {
		t.Fatalf("add continuous: %v", err)
	}
	if err := ds.AddCategorical("label", []string{"a", "b", "a", "b", "a", "b"}); err != nil {
		t.Fatalf("add categorical: %v", err)
	}
	return ds
}

func TestDatasetSchemaValidation(t *testing.T) {
	ds := New(3)
	if err := ds.AddContinuous("x", []float64{1, 2}); err == nil {
		t.Fatal("expected error for mismatched row count")
	}
	if err := ds.AddContinuous("x", []float64{1, 2, math.Inf(1)}); err == nil {
		t.Fatal("expected error for non-finite value")
	}
	if err := ds.AddContinuous("x", []float64{1, 2, 3}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := ds.AddCategorical("x", []string{"a", "b", "c"}); err == nil {
		t.Fatal("expected error for duplicate column name")
	}
}

func TestUnknownColumnAndTypeMismatch(t *testing.T) {
	ds := testDataset(t)

	if _, err := ds.Continuous("missing"); !core.IsUnknownColumn(err) {
		t.Fatalf("expected UnknownColumn, got %v", err)
	}
	if _, err := ds.Continuous("label"); err == nil {
		t.Fatal("expected type error reading categorical column as continuous")
	}
	if _, err := ds.Categorical("size"); err == nil {
		t.Fatal("expected type error reading continuous column as categorical")
	}
}

func TestPartitionCoversEveryRowExactlyOnce(t *testing.T) {
	ds := testDataset(t)
	p, err := PartitionBy(ds, "label")
	if err != nil {
		t.Fatalf("partition: %v", err)
	}

	if p.NumGroups() != 2 {
		t.Fatalf("expected 2 groups, got %d", p.NumGroups())
	}
	total := 0
	for _, g := range p.Groups() {
		total += p.Size(g)
	}
	if total != ds.Rows() {
		t.Fatalf("partition covers %d rows, want %d", total, ds.Rows())
	}

	// Missing continuous values are dropped per group, not per partition
	b, _ := p.ContinuousGroup(ds, "size", "b")
	if len(b) != 2 {
		t.Fatalf("group b should drop the NaN row: got %d values", len(b))
	}
}

func TestRequireGroupSignalsInsufficientData(t *testing.T) {
	ds := testDataset(t)
	p, _ := PartitionBy(ds, "label")

	if _, err := p.RequireGroup(ds, "size", "absent", 1); !core.IsInsufficientData(err) {
		t.Fatalf("expected InsufficientData for absent group, got %v", err)
	}
	if _, err := p.RequireGroup(ds, "size", "b", 3); !core.IsInsufficientData(err) {
		t.Fatalf("expected InsufficientData below minimum, got %v", err)
	}
	if _, err := p.RequireGroup(ds, "size", "a", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContingencyTotalsMatchRowCount(t *testing.T) {
	ds := New(5)
	_ = ds.AddCategorical("x", []string{"u", "v", "u", "", "v"})
	_ = ds.AddCategorical("y", []string{"p", "p", "q", "q", ""})

	table, err := BuildContingency(ds, "x", "y")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// Two rows have a missing label and are excluded
	if table.Total != 3 {
		t.Fatalf("total = %d, want 3", table.Total)
	}
	sum := 0
	for _, row := range table.Counts {
		for _, n := range row {
			if n < 0 {
				t.Fatal("negative count")
			}
			sum += n
		}
	}
	if sum != table.Total {
		t.Fatalf("cell sum %d != total %d", sum, table.Total)
	}

	rowSum := 0
	for _, n := range table.RowTotals() {
		rowSum += n
	}
	if rowSum != table.Total {
		t.Fatalf("row totals sum %d != total %d", rowSum, table.Total)
	}
}

func TestContingencyExpectedPreservesMarginals(t *testing.T) {
	ds := New(8)
	_ = ds.AddCategorical("x", []string{"u", "u", "u", "u", "v", "v", "v", "v"})
	_ = ds.AddCategorical("y", []string{"p", "p", "q", "q", "p", "p", "q", "q"})

	table, _ := BuildContingency(ds, "x", "y")
	expected := table.Expected()
	for i, rowTotal := range table.RowTotals() {
		sum := 0.0
		for j := range expected[i] {
			sum += expected[i][j]
		}
		if math.Abs(sum-float64(rowTotal)) > 1e-9 {
			t.Fatalf("expected row %d sums to %v, want %d", i, sum, rowTotal)
		}
	}
}

func TestBucketHalfOpenIntervals(t *testing.T) {
	values := []float64{40, 41, 55, 70, 100, 101, math.NaN(), 0}
	labels, err := Bucket(values, []float64{0, 40, 55, 70, 100}, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("bucket: %v", err)
	}
	want := []string{"a", "b", "b", "c", "d", "", "", ""}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}

	if _, err := Bucket(values, []float64{0, 1}, []string{"a", "b"}); err == nil {
		t.Fatal("expected edge/label count mismatch error")
	}
	if _, err := Bucket(values, []float64{0, 0}, []string{"a"}); err == nil {
		t.Fatal("expected non-increasing edges error")
	}
}

func TestDeriveAgeGroup(t *testing.T) {
	ds := New(4)
	_ = ds.AddContinuous(ColPatientAge, []float64{30, 50, 60, 80})
	if err := DeriveAgeGroup(ds); err != nil {
		t.Fatalf("derive: %v", err)
	}
	groups, err := ds.Categorical(ColAgeGroup)
	if err != nil {
		t.Fatalf("read derived column: %v", err)
	}
	want := []string{AgeGroupLabels[0], AgeGroupLabels[1], AgeGroupLabels[2], AgeGroupLabels[3]}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i], want[i])
		}
	}

	// Idempotent when the column already exists
	if err := DeriveAgeGroup(ds); err != nil {
		t.Fatalf("second derive: %v", err)
	}
}
