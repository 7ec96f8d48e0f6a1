package stats

import (
	"fmt"
	"math"
)

// DefaultAlpha is the significance threshold used when the caller does not
// supply one.
const DefaultAlpha = 0.05

// Significance labels, ordered by strength of evidence
const (
	NotSignificant       = "not significant"
	Significant          = "significant"
	HighlySignificant    = "highly significant"
	ExtremelySignificant = "extremely significant"
)

// Effect magnitude labels
const (
	MagnitudeNegligible = "negligible"
	MagnitudeSmall      = "small"
	MagnitudeMedium     = "medium"
	MagnitudeLarge      = "large"
)

// MagnitudeScale maps an absolute effect size onto a magnitude label.
// Small, Medium and Large are inclusive lower bounds; below Small the effect
// is negligible. Scales are named constants so boundary values (e.g. exactly
// d=0.2) can be unit tested.
type MagnitudeScale struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

// CohenD is the canonical threshold table for Cohen's d
var CohenD = MagnitudeScale{Name: "cohen_d", Symbol: "d", Small: 0.2, Medium: 0.5, Large: 0.8}

// EtaSquared is the conventional threshold table for eta-squared
var EtaSquared = MagnitudeScale{Name: "eta_squared", Symbol: "eta2", Small: 0.01, Medium: 0.06, Large: 0.14}

// CramersV returns the threshold table for Cramér's V given the smaller table
// dimension. The canonical 0.1/0.3/0.5 bands apply at one degree of freedom
// and scale down by sqrt(min(rows,cols)-1) for larger tables.
func CramersV(minDim int) MagnitudeScale {
	df := minDim - 1
	if df < 1 {
		df = 1
	}
	scale := math.Sqrt(float64(df))
	return MagnitudeScale{
		Name:   fmt.Sprintf("cramers_v_df%d", df),
		Symbol: "V",
		Small:  0.1 / scale,
		Medium: 0.3 / scale,
		Large:  0.5 / scale,
	}
}

// Classify maps an effect size onto this scale's magnitude label
func (s MagnitudeScale) Classify(effect float64) string {
	abs := math.Abs(effect)
	switch {
	case abs >= s.Large:
		return MagnitudeLarge
	case abs >= s.Medium:
		return MagnitudeMedium
	case abs >= s.Small:
		return MagnitudeSmall
	default:
		return MagnitudeNegligible
	}
}

// ClassifySignificance maps a p-value onto a significance label at the given
// alpha, with finer bands at 0.01 and 0.001.
func ClassifySignificance(pValue, alpha float64) string {
	switch {
	case pValue >= alpha:
		return NotSignificant
	case pValue < 0.001:
		return ExtremelySignificant
	case pValue < 0.01:
		return HighlySignificant
	default:
		return Significant
	}
}

// Interpret combines a p-value and an effect size into a single reading.
// Pure function: no side effects, no state.
func Interpret(pValue, alpha, effect float64, scale MagnitudeScale) Interpretation {
	significance := ClassifySignificance(pValue, alpha)
	magnitude := scale.Classify(effect)
	return Interpretation{
		Significance: significance,
		Magnitude:    magnitude,
		Summary: fmt.Sprintf("%s (p = %.4g, alpha = %g) with a %s effect size (%s = %.3f)",
			significance, pValue, alpha, magnitude, scale.Symbol, effect),
	}
}
