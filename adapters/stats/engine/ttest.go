package engine

import (
	"fmt"
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"oncostat/domain/core"
	"oncostat/domain/stats"
)

// TTestOptions selects the variant and significance threshold of the
// two-group comparison.
type TTestOptions struct {
	// Alpha is the significance threshold; stats.DefaultAlpha when zero.
	Alpha float64
	// Welch disables the equal-variance assumption. The pooled test stays
	// the default: switching it silently would change reported p-values.
	Welch bool
}

// TTest performs an independent two-sample t-test on a continuous column
// between two named groups. The sign convention is groupA minus groupB, both
// for the statistic and for Cohen's d.
func (e *Engine) TTest(column, groupBy, groupA, groupB string, opts TTestOptions) (*stats.TTestResult, error) {
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}

	p, err := e.partition(groupBy)
	if err != nil {
		return nil, err
	}
	a, err := p.RequireGroup(e.ds, column, groupA, 2)
	if err != nil {
		return nil, err
	}
	b, err := p.RequireGroup(e.ds, column, groupB, 2)
	if err != nil {
		return nil, err
	}

	meanA, _ := mstats.Mean(a)
	meanB, _ := mstats.Mean(b)
	varA, _ := mstats.SampleVariance(a)
	varB, _ := mstats.SampleVariance(b)
	nA := float64(len(a))
	nB := float64(len(b))

	pooledVar := ((nA-1)*varA + (nB-1)*varB) / (nA + nB - 2)
	if pooledVar == 0 {
		return nil, fmt.Errorf("%w: both groups are constant for column %q", core.ErrDegenerateVariance, column)
	}

	var tStat, df float64
	if opts.Welch {
		seA := varA / nA
		seB := varB / nB
		tStat = (meanA - meanB) / math.Sqrt(seA+seB)
		// Welch-Satterthwaite degrees of freedom
		df = (seA + seB) * (seA + seB) / (seA*seA/(nA-1) + seB*seB/(nB-1))
	} else {
		tStat = (meanA - meanB) / math.Sqrt(pooledVar*(1/nA+1/nB))
		df = nA + nB - 2
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * (1 - tDist.CDF(math.Abs(tStat)))

	// Cohen's d is defined on the pooled standard deviation in both variants
	cohensD := (meanA - meanB) / math.Sqrt(pooledVar)

	return &stats.TTestResult{
		Column:        column,
		GroupBy:       groupBy,
		GroupA:        groupA,
		GroupB:        groupB,
		Statistic:     tStat,
		PValue:        pValue,
		DF:            df,
		CohensD:       cohensD,
		MeanA:         meanA,
		MeanB:         meanB,
		StdDevA:       math.Sqrt(varA),
		StdDevB:       math.Sqrt(varB),
		NA:            len(a),
		NB:            len(b),
		EqualVariance: !opts.Welch,
		Alpha:         alpha,
		Reading:       stats.Interpret(pValue, alpha, cohensD, stats.CohenD),
	}, nil
}
