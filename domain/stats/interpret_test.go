package stats

import (
	"math"
	"testing"
)

func TestClassifySignificanceBands(t *testing.T) {
	cases := []struct {
		p, alpha float64
		want     string
	}{
		{0.05, 0.05, NotSignificant},
		{0.2, 0.05, NotSignificant},
		{0.049, 0.05, Significant},
		{0.01, 0.05, Significant},
		{0.009, 0.05, HighlySignificant},
		{0.001, 0.05, HighlySignificant},
		{0.0009, 0.05, ExtremelySignificant},
		{0.04, 0.01, NotSignificant},
	}
	for _, tc := range cases {
		if got := ClassifySignificance(tc.p, tc.alpha); got != tc.want {
			t.Errorf("ClassifySignificance(%v, %v) = %q, want %q", tc.p, tc.alpha, got, tc.want)
		}
	}
}

func TestCohenDBoundaries(t *testing.T) {
	cases := []struct {
		d    float64
		want string
	}{
		{0.0, MagnitudeNegligible},
		{0.19, MagnitudeNegligible},
		{0.2, MagnitudeSmall}, // lower bound is inclusive
		{0.49, MagnitudeSmall},
		{0.5, MagnitudeMedium},
		{0.79, MagnitudeMedium},
		{0.8, MagnitudeLarge},
		{7.6, MagnitudeLarge},
		{-0.8, MagnitudeLarge}, // classification is on |d|
		{-0.3, MagnitudeSmall},
	}
	for _, tc := range cases {
		if got := CohenD.Classify(tc.d); got != tc.want {
			t.Errorf("CohenD.Classify(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestEtaSquaredBoundaries(t *testing.T) {
	cases := []struct {
		eta  float64
		want string
	}{
		{0.009, MagnitudeNegligible},
		{0.01, MagnitudeSmall},
		{0.06, MagnitudeMedium},
		{0.14, MagnitudeLarge},
	}
	for _, tc := range cases {
		if got := EtaSquared.Classify(tc.eta); got != tc.want {
			t.Errorf("EtaSquared.Classify(%v) = %q, want %q", tc.eta, got, tc.want)
		}
	}
}

func TestCramersVScalesWithTableSize(t *testing.T) {
	// At one degree of freedom the canonical bands apply directly
	df1 := CramersV(2)
	if got := df1.Classify(0.51); got != MagnitudeLarge {
		t.Errorf("df=1 Classify(0.51) = %q, want large", got)
	}
	if got := df1.Classify(0.09); got != MagnitudeNegligible {
		t.Errorf("df=1 Classify(0.09) = %q, want negligible", got)
	}

	// Larger tables scale the thresholds down by sqrt(df)
	df4 := CramersV(5)
	want := 0.5 / math.Sqrt(4)
	if math.Abs(df4.Large-want) > 1e-12 {
		t.Errorf("df=4 large threshold = %v, want %v", df4.Large, want)
	}
	if got := df4.Classify(0.26); got != MagnitudeLarge {
		t.Errorf("df=4 Classify(0.26) = %q, want large", got)
	}

	// Degenerate minimum dimension falls back to df=1 thresholds
	if got := CramersV(1).Large; got != 0.5 {
		t.Errorf("CramersV(1).Large = %v, want 0.5", got)
	}
}

func TestInterpretCombinesBothReadings(t *testing.T) {
	reading := Interpret(0.0004, 0.05, 1.2, CohenD)
	if reading.Significance != ExtremelySignificant {
		t.Errorf("significance = %q, want %q", reading.Significance, ExtremelySignificant)
	}
	if reading.Magnitude != MagnitudeLarge {
		t.Errorf("magnitude = %q, want %q", reading.Magnitude, MagnitudeLarge)
	}
	if reading.Summary == "" {
		t.Error("expected a non-empty summary sentence")
	}
}
