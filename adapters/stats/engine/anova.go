package engine

import (
	"fmt"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"oncostat/domain/core"
	"oncostat/domain/stats"
)

// AnovaOptions configures the one-way variance decomposition test
type AnovaOptions struct {
	// Alpha is the significance threshold; stats.DefaultAlpha when zero.
	Alpha float64
}

// Anova performs a one-way ANOVA of a continuous column across the groups of a
// categorical column. The p-value is the upper tail of the F distribution.
// Every group must contribute at least two observations.
func (e *Engine) Anova(column, groupBy string, opts AnovaOptions) (*stats.AnovaResult, error) {
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}

	p, err := e.partition(groupBy)
	if err != nil {
		return nil, err
	}
	labels := p.Groups()
	if len(labels) < 2 {
		return nil, fmt.Errorf("%w: column %q yields %d group(s), need at least 2", core.ErrInsufficientData, groupBy, len(labels))
	}

	groups := make([][]float64, 0, len(labels))
	sizes := make(map[string]int, len(labels))
	var all []float64
	for _, label := range labels {
		values, err := p.RequireGroup(e.ds, column, label, 2)
		if err != nil {
			return nil, err
		}
		groups = append(groups, values)
		sizes[label] = len(values)
		all = append(all, values...)
	}

	grandMean, _ := mstats.Mean(all)

	ssBetween := 0.0
	for _, g := range groups {
		mean, _ := mstats.Mean(g)
		diff := mean - grandMean
		ssBetween += float64(len(g)) * diff * diff
	}
	ssTotal := 0.0
	for _, v := range all {
		diff := v - grandMean
		ssTotal += diff * diff
	}
	ssWithin := ssTotal - ssBetween

	if ssTotal == 0 || ssWithin == 0 {
		return nil, fmt.Errorf("%w: no within-group variance for column %q", core.ErrDegenerateVariance, column)
	}

	dfBetween := len(groups) - 1
	dfWithin := len(all) - len(groups)
	fStat := (ssBetween / float64(dfBetween)) / (ssWithin / float64(dfWithin))

	fDist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	pValue := 1 - fDist.CDF(fStat)

	etaSquared := ssBetween / ssTotal

	return &stats.AnovaResult{
		Column:     column,
		GroupBy:    groupBy,
		FStatistic: fStat,
		PValue:     pValue,
		DFBetween:  dfBetween,
		DFWithin:   dfWithin,
		EtaSquared: etaSquared,
		GroupSizes: sizes,
		Alpha:      alpha,
		Reading:    stats.Interpret(pValue, alpha, etaSquared, stats.EtaSquared),
	}, nil
}
