package stats

import (
	"oncostat/domain/dataset"
)

// WarningCode represents structured warning types attached to otherwise valid results
type WarningCode string

const (
	// WarningLowExpectedCount flags expected cell counts below 5, where the
	// chi-square approximation becomes unreliable.
	WarningLowExpectedCount WarningCode = "LOW_EXPECTED_COUNT"
)

// Interpretation is the human-readable reading of a (p-value, effect size) pair
type Interpretation struct {
	Significance string `json:"significance"`
	Magnitude    string `json:"magnitude"`
	Summary      string `json:"summary"`
}

// GroupSummary holds per-group descriptive statistics for one continuous column.
// For groups with fewer than 2 observations the spread and shape statistics are
// undefined; MomentsDefined lets callers branch instead of reading NaN.
type GroupSummary struct {
	Group          string  `json:"group"`
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	StdDev         float64 `json:"std_dev,omitempty"`
	Skewness       float64 `json:"skewness,omitempty"`
	Kurtosis       float64 `json:"kurtosis,omitempty"`
	MomentsDefined bool    `json:"moments_defined"`
}

// DescriptiveResult holds per-group summaries for one continuous column
type DescriptiveResult struct {
	Column  string         `json:"column"`
	GroupBy string         `json:"group_by"`
	Groups  []GroupSummary `json:"groups"`
}

// TTestResult is the immutable record of an independent two-sample t-test
type TTestResult struct {
	Column        string         `json:"column"`
	GroupBy       string         `json:"group_by"`
	GroupA        string         `json:"group_a"`
	GroupB        string         `json:"group_b"`
	Statistic     float64        `json:"t_statistic"`
	PValue        float64        `json:"p_value"`
	DF            float64        `json:"degrees_of_freedom"`
	CohensD       float64        `json:"cohens_d"`
	MeanA         float64        `json:"mean_a"`
	MeanB         float64        `json:"mean_b"`
	StdDevA       float64        `json:"std_dev_a"`
	StdDevB       float64        `json:"std_dev_b"`
	NA            int            `json:"n_a"`
	NB            int            `json:"n_b"`
	EqualVariance bool           `json:"equal_variance"`
	Alpha         float64        `json:"alpha"`
	Reading       Interpretation `json:"interpretation"`
}

// AnovaResult is the immutable record of a one-way variance decomposition test
type AnovaResult struct {
	Column     string         `json:"column"`
	GroupBy    string         `json:"group_by"`
	FStatistic float64        `json:"f_statistic"`
	PValue     float64        `json:"p_value"`
	DFBetween  int            `json:"df_between"`
	DFWithin   int            `json:"df_within"`
	EtaSquared float64        `json:"eta_squared"`
	GroupSizes map[string]int `json:"group_sizes"`
	Alpha      float64        `json:"alpha"`
	Reading    Interpretation `json:"interpretation"`
}

// ChiSquareResult is the immutable record of a chi-square test of independence
type ChiSquareResult struct {
	RowColumn string                    `json:"row_column"`
	ColColumn string                    `json:"col_column"`
	Statistic float64                   `json:"chi2_statistic"`
	PValue    float64                   `json:"p_value"`
	DF        int                       `json:"degrees_of_freedom"`
	CramersV  float64                   `json:"cramers_v"`
	N         int                       `json:"n"`
	Yates     bool                      `json:"yates_correction"`
	Table     *dataset.ContingencyTable `json:"contingency_table"`
	Expected  [][]float64               `json:"expected_frequencies"`
	Warnings  []WarningCode             `json:"warnings,omitempty"`
	Alpha     float64                   `json:"alpha"`
	Reading   Interpretation            `json:"interpretation"`
}

// CorrelationResult holds a Pearson correlation matrix over numeric columns.
// Ns holds the pairwise-complete sample size behind each coefficient.
type CorrelationResult struct {
	Columns []string    `json:"columns"`
	R       [][]float64 `json:"r"`
	PValues [][]float64 `json:"p_values"`
	Ns      [][]int     `json:"ns"`
}
