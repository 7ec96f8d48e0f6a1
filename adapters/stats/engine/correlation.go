package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"oncostat/domain/stats"
)

// Correlations computes the Pearson correlation matrix over the given
// continuous columns, using pairwise-complete observations. P-values come
// from the t transform of the coefficient.
func (e *Engine) Correlations(columns []string) (*stats.CorrelationResult, error) {
	series := make([][]float64, len(columns))
	for i, name := range columns {
		values, err := e.ds.Continuous(name)
		if err != nil {
			return nil, err
		}
		series[i] = values
	}

	k := len(columns)
	result := &stats.CorrelationResult{
		Columns: columns,
		R:       make([][]float64, k),
		PValues: make([][]float64, k),
		Ns:      make([][]int, k),
	}
	for i := 0; i < k; i++ {
		result.R[i] = make([]float64, k)
		result.PValues[i] = make([]float64, k)
		result.Ns[i] = make([]int, k)
		for j := 0; j < k; j++ {
			if j < i {
				result.R[i][j] = result.R[j][i]
				result.PValues[i][j] = result.PValues[j][i]
				result.Ns[i][j] = result.Ns[j][i]
				continue
			}
			x, y := pairwiseComplete(series[i], series[j])
			result.Ns[i][j] = len(x)
			if i == j {
				result.R[i][j] = 1
				continue
			}
			r, p := pearson(x, y)
			result.R[i][j] = r
			result.PValues[i][j] = p
		}
	}
	return result, nil
}

func pairwiseComplete(a, b []float64) ([]float64, []float64) {
	x := make([]float64, 0, len(a))
	y := make([]float64, 0, len(b))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x = append(x, a[i])
		y = append(y, b[i])
	}
	return x, y
}

func pearson(x, y []float64) (r, pValue float64) {
	if len(x) < 3 {
		return 0, 1
	}
	r = stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0, 1
	}
	if r >= 1 || r <= -1 {
		return r, 0
	}
	df := float64(len(x) - 2)
	tStat := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return r, 2 * (1 - tDist.CDF(math.Abs(tStat)))
}
