package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"oncostat/adapters/stats/engine"
	"oncostat/domain/core"
	"oncostat/domain/dataset"
	"oncostat/domain/stats"
	"oncostat/internal"
)

// AnalysisService runs the comprehensive statistical analysis: per-group
// descriptives, two-group t-tests and one-way ANOVA for every numeric
// feature, the chi-square association between age bucket and diagnosis, and
// the feature correlation matrix.
type AnalysisService struct {
	log *internal.Logger
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(log *internal.Logger) *AnalysisService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &AnalysisService{log: log}
}

// AnalysisRequest defines the inputs for a comprehensive analysis
type AnalysisRequest struct {
	Dataset        *dataset.Dataset
	NumericColumns []string // defaults to the canonical numeric features
	GroupBy        string   // defaults to Diagnosis
	GroupA         string   // defaults to Benign
	GroupB         string   // defaults to Malignant
	Alpha          float64  // defaults to stats.DefaultAlpha
	Welch          bool     // use the unequal-variance t-test variant
}

// Findings collects human-readable interpretation sentences
type Findings struct {
	SignificantDifferences []string `json:"significant_differences"`
	EffectSizes            []string `json:"effect_sizes"`
	Recommendations        []string `json:"recommendations"`
}

// AnalysisReport is the complete output of a comprehensive analysis
type AnalysisReport struct {
	ID           core.AnalysisID                     `json:"analysis_id"`
	DatasetHash  core.DatasetHash                    `json:"dataset_hash"`
	GeneratedAt  core.Timestamp                      `json:"generated_at"`
	SampleSizes  map[string]int                      `json:"sample_sizes"`
	TotalSamples int                                 `json:"total_samples"`
	Overall      map[string]stats.GroupSummary       `json:"overall"`
	Descriptives map[string]*stats.DescriptiveResult `json:"descriptives"`
	TTests       map[string]*stats.TTestResult       `json:"t_tests"`
	Anova        map[string]*stats.AnovaResult       `json:"anova"`
	ChiSquare    *stats.ChiSquareResult              `json:"chi_square,omitempty"`
	Correlations *stats.CorrelationResult            `json:"correlations"`
	Findings     Findings                            `json:"findings"`
	RuntimeMs    int64                               `json:"runtime_ms"`
}

// Run executes the comprehensive analysis. Features are analyzed
// concurrently; each individual test stays a pure function of the dataset.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*AnalysisReport, error) {
	startTime := time.Now()

	if req.Dataset == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	columns := req.NumericColumns
	if len(columns) == 0 {
		columns = dataset.NumericFeatures
	}
	keys := make([]core.ColumnKey, 0, len(columns))
	for _, column := range columns {
		key, err := core.ParseColumnKey(column)
		if err != nil {
			return nil, fmt.Errorf("numeric column: %w", err)
		}
		keys = append(keys, key)
	}
	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = dataset.ColDiagnosis
	}
	groupA, groupB := req.GroupA, req.GroupB
	if groupA == "" {
		groupA = dataset.DiagnosisBenign
	}
	if groupB == "" {
		groupB = dataset.DiagnosisMalignant
	}
	alpha := req.Alpha
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}

	eng := engine.New(req.Dataset)

	partition, err := dataset.PartitionBy(req.Dataset, groupBy)
	if err != nil {
		return nil, err
	}

	columnNames := make([]string, 0, len(req.Dataset.Columns()))
	for _, col := range req.Dataset.Columns() {
		columnNames = append(columnNames, col.Name)
	}

	report := &AnalysisReport{
		ID:           core.AnalysisID(core.NewID()),
		DatasetHash:  core.ComputeDatasetHash(columnNames, req.Dataset.Rows()),
		GeneratedAt:  core.Now(),
		SampleSizes:  make(map[string]int),
		Overall:      make(map[string]stats.GroupSummary),
		Descriptives: make(map[string]*stats.DescriptiveResult),
		TTests:       make(map[string]*stats.TTestResult),
		Anova:        make(map[string]*stats.AnovaResult),
	}
	report.TotalSamples = req.Dataset.Rows()
	for _, group := range partition.Groups() {
		report.SampleSizes[group] = partition.Size(group)
	}

	s.log.Info("running comprehensive analysis over %d features, grouped by %s", len(columns), groupBy)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		column := key.String()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			overall, err := eng.Summarize(column)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", column, err)
			}
			descriptive, err := eng.Describe(column, groupBy)
			if err != nil {
				return fmt.Errorf("describe %s: %w", column, err)
			}
			ttest, err := eng.TTest(column, groupBy, groupA, groupB, engine.TTestOptions{Alpha: alpha, Welch: req.Welch})
			if err != nil {
				return fmt.Errorf("t-test %s: %w", column, err)
			}
			anova, err := eng.Anova(column, groupBy, engine.AnovaOptions{Alpha: alpha})
			if err != nil {
				return fmt.Errorf("anova %s: %w", column, err)
			}

			mu.Lock()
			report.Overall[column] = overall
			report.Descriptives[column] = descriptive
			report.TTests[column] = ttest
			report.Anova[column] = anova
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Age bucket vs diagnosis association, when ages are available
	if req.Dataset.HasColumn(dataset.ColPatientAge) {
		if err := dataset.DeriveAgeGroup(req.Dataset); err != nil {
			return nil, err
		}
		chi, err := eng.ChiSquare(dataset.ColAgeGroup, groupBy, engine.ChiSquareOptions{Alpha: alpha})
		if err != nil {
			if !core.IsDegenerateTable(err) {
				return nil, err
			}
			s.log.Warn("skipping age association: %v", err)
		} else {
			report.ChiSquare = chi
		}
	}

	correlations, err := eng.Correlations(columns)
	if err != nil {
		return nil, err
	}
	report.Correlations = correlations

	report.Findings = s.interpret(report, columns, groupA, groupB)
	report.RuntimeMs = time.Since(startTime).Milliseconds()
	s.log.Info("analysis %s finished in %dms", report.ID, report.RuntimeMs)
	return report, nil
}

// interpret turns test results into reader-facing sentences, mirroring the
// report shown alongside the numeric output.
func (s *AnalysisService) interpret(report *AnalysisReport, columns []string, groupA, groupB string) Findings {
	findings := Findings{}

	for _, column := range columns {
		result, ok := report.TTests[column]
		if !ok || result.Reading.Significance == stats.NotSignificant {
			continue
		}
		direction := "higher"
		if result.MeanB < result.MeanA {
			direction = "lower"
		}
		findings.SignificantDifferences = append(findings.SignificantDifferences,
			fmt.Sprintf("%s: %s group has significantly %s values than %s (p = %.4f)",
				column, groupB, direction, groupA, result.PValue))
		findings.EffectSizes = append(findings.EffectSizes,
			fmt.Sprintf("%s: %s effect size (Cohen's d = %.3f)",
				column, result.Reading.Magnitude, result.CohensD))
	}

	if report.ChiSquare != nil && report.ChiSquare.Reading.Significance != stats.NotSignificant {
		findings.SignificantDifferences = append(findings.SignificantDifferences,
			fmt.Sprintf("Age distribution differs significantly between diagnosis groups (p = %.4f)",
				report.ChiSquare.PValue))
	}

	findings.Recommendations = append(findings.Recommendations,
		"Features with significant differences could be important for diagnosis",
		"Large effect sizes indicate clinically meaningful differences",
		"Consider these findings for feature selection in predictive modeling",
	)
	return findings
}
