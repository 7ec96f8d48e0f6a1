package dataset

// ContingencyTable holds observed counts for pairs of categorical values.
// All counts are non-negative; the total equals the number of rows where both
// columns are non-missing.
type ContingencyTable struct {
	RowColumn string   `json:"row_column"`
	ColColumn string   `json:"col_column"`
	RowLabels []string `json:"row_labels"`
	ColLabels []string `json:"col_labels"`
	Counts    [][]int  `json:"counts"`
	Total     int      `json:"total"`
}

// BuildContingency cross-tabulates two categorical columns. Rows where either
// label is missing are skipped. Labels appear in first-appearance order.
func BuildContingency(d *Dataset, rowColumn, colColumn string) (*ContingencyTable, error) {
	rowValues, err := d.Categorical(rowColumn)
	if err != nil {
		return nil, err
	}
	colValues, err := d.Categorical(colColumn)
	if err != nil {
		return nil, err
	}

	t := &ContingencyTable{RowColumn: rowColumn, ColColumn: colColumn}

	// First pass: fix label ordering by first appearance
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	for i := range rowValues {
		r, c := rowValues[i], colValues[i]
		if r == "" || c == "" {
			continue
		}
		if _, ok := rowIdx[r]; !ok {
			rowIdx[r] = len(t.RowLabels)
			t.RowLabels = append(t.RowLabels, r)
		}
		if _, ok := colIdx[c]; !ok {
			colIdx[c] = len(t.ColLabels)
			t.ColLabels = append(t.ColLabels, c)
		}
	}

	t.Counts = make([][]int, len(t.RowLabels))
	for i := range t.Counts {
		t.Counts[i] = make([]int, len(t.ColLabels))
	}

	// Second pass: accumulate observed counts
	for i := range rowValues {
		r, c := rowValues[i], colValues[i]
		if r == "" || c == "" {
			continue
		}
		t.Counts[rowIdx[r]][colIdx[c]]++
		t.Total++
	}
	return t, nil
}

// Rows returns the number of row categories
func (t *ContingencyTable) Rows() int {
	return len(t.RowLabels)
}

// Cols returns the number of column categories
func (t *ContingencyTable) Cols() int {
	return len(t.ColLabels)
}

// RowTotals returns marginal totals per row category
func (t *ContingencyTable) RowTotals() []int {
	totals := make([]int, t.Rows())
	for i, row := range t.Counts {
		for _, n := range row {
			totals[i] += n
		}
	}
	return totals
}

// ColTotals returns marginal totals per column category
func (t *ContingencyTable) ColTotals() []int {
	totals := make([]int, t.Cols())
	for _, row := range t.Counts {
		for j, n := range row {
			totals[j] += n
		}
	}
	return totals
}

// Expected returns the expected count per cell under independence
func (t *ContingencyTable) Expected() [][]float64 {
	rowTotals := t.RowTotals()
	colTotals := t.ColTotals()
	expected := make([][]float64, t.Rows())
	for i := range expected {
		expected[i] = make([]float64, t.Cols())
		for j := range expected[i] {
			expected[i][j] = float64(rowTotals[i]) * float64(colTotals[j]) / float64(t.Total)
		}
	}
	return expected
}
