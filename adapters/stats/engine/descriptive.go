package engine

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"oncostat/domain/core"
	"oncostat/domain/stats"
)

// Describe computes per-group descriptive statistics for a continuous column.
// When no explicit group names are given, every group of the partition is
// summarized in first-appearance order. A requested group that is empty or
// absent yields InsufficientData naming the group.
func (e *Engine) Describe(column, groupBy string, groups ...string) (*stats.DescriptiveResult, error) {
	p, err := e.partition(groupBy)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		groups = p.Groups()
	}

	result := &stats.DescriptiveResult{Column: column, GroupBy: groupBy}
	for _, group := range groups {
		values, err := p.RequireGroup(e.ds, column, group, 1)
		if err != nil {
			return nil, err
		}
		summary, err := summarize(group, values)
		if err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, summary)
	}
	return result, nil
}

// Summarize computes descriptive statistics over a whole continuous column,
// ignoring missing values.
func (e *Engine) Summarize(column string) (stats.GroupSummary, error) {
	values, err := e.ds.ContinuousComplete(column)
	if err != nil {
		return stats.GroupSummary{}, err
	}
	if len(values) == 0 {
		return stats.GroupSummary{}, core.NewEmptyGroupError(column)
	}
	return summarize("all", values)
}

func summarize(group string, values []float64) (stats.GroupSummary, error) {
	mean, err := mstats.Mean(values)
	if err != nil {
		return stats.GroupSummary{}, err
	}
	median, err := mstats.Median(values)
	if err != nil {
		return stats.GroupSummary{}, err
	}
	min, err := mstats.Min(values)
	if err != nil {
		return stats.GroupSummary{}, err
	}
	max, err := mstats.Max(values)
	if err != nil {
		return stats.GroupSummary{}, err
	}

	summary := stats.GroupSummary{
		Group:  group,
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
	}

	// Spread and shape need at least two observations; callers branch on
	// MomentsDefined rather than reading zeroes.
	if len(values) < 2 {
		return summary, nil
	}

	sd, err := mstats.StandardDeviationSample(values)
	if err != nil {
		return stats.GroupSummary{}, err
	}
	summary.StdDev = sd
	summary.Skewness = sampleSkewness(values, mean)
	summary.Kurtosis = sampleExcessKurtosis(values, mean)
	summary.MomentsDefined = true
	return summary, nil
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness.
// Returns 0 for samples too small to estimate it (n < 3).
func sampleSkewness(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return 0
	}
	m2, m3 := 0.0, 0.0
	for _, v := range values {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// sampleExcessKurtosis computes bias-corrected sample excess kurtosis.
// Returns 0 for samples too small to estimate it (n < 4).
func sampleExcessKurtosis(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return 0
	}
	m2, m4 := 0.0, 0.0
	for _, v := range values {
		d := v - mean
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return 0
	}
	g2 := m4/(m2*m2) - 3
	return ((n - 1) / ((n - 2) * (n - 3))) * ((n+1)*g2 + 6)
}
