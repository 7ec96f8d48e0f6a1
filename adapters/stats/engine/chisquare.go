package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"oncostat/domain/core"
	"oncostat/domain/dataset"
	"oncostat/domain/stats"
)

// ChiSquareOptions configures the test of independence
type ChiSquareOptions struct {
	// Alpha is the significance threshold; stats.DefaultAlpha when zero.
	Alpha float64
	// NoCorrection disables the Yates continuity correction, which is
	// applied by default on 2x2 tables. Larger tables are never corrected.
	NoCorrection bool
}

// ChiSquare performs a chi-square test of independence between two categorical
// columns and computes Cramér's V. On 2x2 tables the Yates continuity
// correction is applied unless explicitly disabled. Expected cell counts
// below 5 are flagged as a LowExpectedCount warning rather than failing the
// test.
func (e *Engine) ChiSquare(rowColumn, colColumn string, opts ChiSquareOptions) (*stats.ChiSquareResult, error) {
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}

	table, err := dataset.BuildContingency(e.ds, rowColumn, colColumn)
	if err != nil {
		return nil, err
	}
	rows, cols := table.Rows(), table.Cols()
	if rows < 2 || cols < 2 {
		return nil, core.NewDegenerateTableError(rows, cols)
	}

	expected := table.Expected()
	applyYates := !opts.NoCorrection && rows == 2 && cols == 2

	chi2 := 0.0
	var warnings []stats.WarningCode
	lowExpected := false
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			exp := expected[i][j]
			if exp < 5 {
				lowExpected = true
			}
			if exp == 0 {
				continue
			}
			diff := math.Abs(float64(table.Counts[i][j]) - exp)
			if applyYates {
				diff -= 0.5
				if diff < 0 {
					diff = 0
				}
			}
			chi2 += diff * diff / exp
		}
	}
	if lowExpected {
		warnings = append(warnings, stats.WarningLowExpectedCount)
	}

	df := (rows - 1) * (cols - 1)
	chiDist := distuv.ChiSquared{K: float64(df)}
	pValue := 1 - chiDist.CDF(chi2)

	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	cramersV := math.Sqrt(chi2 / (float64(table.Total) * float64(minDim-1)))

	return &stats.ChiSquareResult{
		RowColumn: rowColumn,
		ColColumn: colColumn,
		Statistic: chi2,
		PValue:    pValue,
		DF:        df,
		CramersV:  cramersV,
		N:         table.Total,
		Yates:     applyYates,
		Table:     table,
		Expected:  expected,
		Warnings:  warnings,
		Alpha:     alpha,
		Reading:   stats.Interpret(pValue, alpha, cramersV, stats.CramersV(minDim)),
	}, nil
}
