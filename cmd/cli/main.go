package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"oncostat/adapters/excel"
	"oncostat/adapters/stats/engine"
	"oncostat/app"
	"oncostat/domain/dataset"
	"oncostat/internal"
	"oncostat/internal/config"
	apperrors "oncostat/internal/errors"
	"oncostat/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oncostat",
		Short: "Statistical testing over tumor measurement datasets",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newDescribeCmd(),
		newTTestCmd(),
		newAnovaCmd(),
		newChiSquareCmd(),
		newAnalyzeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDataset reads the dataset from --data, or generates a synthetic one
// when no file is given.
func loadDataset(dataFile string, samples int, seed int64) (*dataset.Dataset, error) {
	if dataFile != "" {
		return excel.NewDataReader(dataFile).ReadDataset()
	}
	cfg := testkit.DefaultMedicalConfig()
	if samples > 0 {
		cfg.Samples = samples
	}
	cfg.Seed = seed
	internal.DefaultLogger.Info("no data file given, generating %d synthetic samples (seed %d)", cfg.Samples, cfg.Seed)
	return testkit.NewMedicalDataGenerator(cfg).Generate()
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newGenerateCmd() *cobra.Command {
	var samples int
	var seed int64
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic tumor measurement dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := testkit.DefaultMedicalConfig()
			if samples > 0 {
				cfg.Samples = samples
			}
			cfg.Seed = seed
			ds, err := testkit.NewMedicalDataGenerator(cfg).Generate()
			if err != nil {
				return err
			}
			if err := excel.WriteCSV(ds, out); err != nil {
				return err
			}
			fmt.Printf("wrote %d rows to %s\n", ds.Rows(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 1000, "number of patients to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&out, "out", "medical_data.csv", "output CSV path")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	var dataFile, column, groupBy string
	var samples int
	var seed int64

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Per-group descriptive statistics for a continuous column",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(dataFile, samples, seed)
			if err != nil {
				return err
			}
			result, err := engine.New(ds).Describe(column, groupBy)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	addDataFlags(cmd, &dataFile, &samples, &seed)
	cmd.Flags().StringVar(&column, "column", dataset.ColTumorSize, "continuous column to summarize")
	cmd.Flags().StringVar(&groupBy, "group-by", dataset.ColDiagnosis, "categorical grouping column")
	return cmd
}

func newTTestCmd() *cobra.Command {
	var dataFile, column, groupBy, groups string
	var alpha float64
	var welch bool
	var samples int
	var seed int64

	cmd := &cobra.Command{
		Use:   "ttest",
		Short: "Independent two-sample t-test with Cohen's d",
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := strings.Split(groups, ",")
			if len(parts) != 2 {
				return apperrors.InvalidInput(fmt.Sprintf("--groups needs exactly two comma-separated labels, got %q", groups))
			}
			ds, err := loadDataset(dataFile, samples, seed)
			if err != nil {
				return err
			}
			result, err := engine.New(ds).TTest(column, groupBy, parts[0], parts[1], engine.TTestOptions{Alpha: alpha, Welch: welch})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	addDataFlags(cmd, &dataFile, &samples, &seed)
	cmd.Flags().StringVar(&column, "column", dataset.ColTumorSize, "continuous column to test")
	cmd.Flags().StringVar(&groupBy, "group-by", dataset.ColDiagnosis, "categorical grouping column")
	cmd.Flags().StringVar(&groups, "groups", dataset.DiagnosisBenign+","+dataset.DiagnosisMalignant, "the two group labels to compare")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance threshold")
	cmd.Flags().BoolVar(&welch, "welch", false, "drop the equal-variance assumption")
	return cmd
}

func newAnovaCmd() *cobra.Command {
	var dataFile, column, groupBy string
	var alpha float64
	var samples int
	var seed int64

	cmd := &cobra.Command{
		Use:   "anova",
		Short: "One-way ANOVA with eta-squared",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(dataFile, samples, seed)
			if err != nil {
				return err
			}
			result, err := engine.New(ds).Anova(column, groupBy, engine.AnovaOptions{Alpha: alpha})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	addDataFlags(cmd, &dataFile, &samples, &seed)
	cmd.Flags().StringVar(&column, "column", dataset.ColTumorSize, "continuous column to test")
	cmd.Flags().StringVar(&groupBy, "group-by", dataset.ColDiagnosis, "categorical grouping column")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance threshold")
	return cmd
}

func newChiSquareCmd() *cobra.Command {
	var dataFile, rowColumn, colColumn string
	var alpha float64
	var noCorrection bool
	var samples int
	var seed int64

	cmd := &cobra.Command{
		Use:   "chisq",
		Short: "Chi-square test of independence with Cramér's V",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(dataFile, samples, seed)
			if err != nil {
				return err
			}
			if rowColumn == dataset.ColAgeGroup {
				if err := dataset.DeriveAgeGroup(ds); err != nil {
					return err
				}
			}
			result, err := engine.New(ds).ChiSquare(rowColumn, colColumn, engine.ChiSquareOptions{Alpha: alpha, NoCorrection: noCorrection})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	addDataFlags(cmd, &dataFile, &samples, &seed)
	cmd.Flags().StringVar(&rowColumn, "row-column", dataset.ColAgeGroup, "first categorical column")
	cmd.Flags().StringVar(&colColumn, "col-column", dataset.ColDiagnosis, "second categorical column")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance threshold")
	cmd.Flags().BoolVar(&noCorrection, "no-correction", false, "disable the continuity correction on 2x2 tables")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var dataFile string
	var alpha float64
	var welch bool
	var samples int
	var seed int64

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis: descriptives, t-tests, ANOVA, chi-square, correlations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if alpha == 0 {
				alpha = cfg.Analysis.Alpha
			}
			if dataFile == "" {
				dataFile = cfg.Paths.DataFile
			}
			ds, err := loadDataset(dataFile, samples, seed)
			if err != nil {
				return err
			}
			service := app.NewAnalysisService(internal.DefaultLogger)
			report, err := service.Run(context.Background(), app.AnalysisRequest{
				Dataset: ds,
				Alpha:   alpha,
				Welch:   welch,
			})
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
	addDataFlags(cmd, &dataFile, &samples, &seed)
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "significance threshold (default from config)")
	cmd.Flags().BoolVar(&welch, "welch", false, "drop the equal-variance assumption in t-tests")
	return cmd
}

func addDataFlags(cmd *cobra.Command, dataFile *string, samples *int, seed *int64) {
	cmd.Flags().StringVar(dataFile, "data", "", "CSV or XLSX dataset (synthetic data when empty)")
	cmd.Flags().IntVar(samples, "samples", 1000, "synthetic sample count when generating")
	cmd.Flags().Int64Var(seed, "seed", 42, "synthetic generator seed")
}
