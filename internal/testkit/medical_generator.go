package testkit

import (
	"fmt"
	"math/rand"

	"oncostat/domain/dataset"
)

// MedicalGeneratorConfig configures the synthetic tumor dataset generator
type MedicalGeneratorConfig struct {
	Samples       int     `json:"samples"`
	MalignantRate float64 `json:"malignant_rate"`
	Seed          int64   `json:"seed"`
}

// DefaultMedicalConfig returns sensible defaults for data generation
func DefaultMedicalConfig() MedicalGeneratorConfig {
	return MedicalGeneratorConfig{
		Samples:       1000,
		MalignantRate: 0.30,
		Seed:          42,
	}
}

// MedicalDataGenerator generates synthetic tumor measurement data with a
// binary diagnosis label. Malignant tumors draw larger sizes, lower
// smoothness, higher compactness and slightly older patients.
type MedicalDataGenerator struct {
	config MedicalGeneratorConfig
	rng    *rand.Rand
}

// NewMedicalDataGenerator creates a seeded generator
func NewMedicalDataGenerator(config MedicalGeneratorConfig) *MedicalDataGenerator {
	return &MedicalDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces a dataset in the canonical tumor measurement schema,
// with the derived Age_Group column included.
func (g *MedicalDataGenerator) Generate() (*dataset.Dataset, error) {
	n := g.config.Samples
	if n <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", n)
	}

	patientIDs := make([]string, n)
	diagnosis := make([]string, n)
	tumorSize := make([]float64, n)
	smoothness := make([]float64, n)
	compactness := make([]float64, n)
	patientAge := make([]float64, n)

	for i := 0; i < n; i++ {
		patientIDs[i] = fmt.Sprintf("P%04d", i+1)
		if g.rng.Float64() < g.config.MalignantRate {
			diagnosis[i] = dataset.DiagnosisMalignant
			tumorSize[i] = g.normal(15.0, 4.0)
			smoothness[i] = g.normal(0.08, 0.02)
			compactness[i] = g.normal(0.12, 0.03)
			patientAge[i] = g.normal(58, 12)
		} else {
			diagnosis[i] = dataset.DiagnosisBenign
			tumorSize[i] = g.normal(10.0, 3.0)
			smoothness[i] = g.normal(0.10, 0.015)
			compactness[i] = g.normal(0.08, 0.02)
			patientAge[i] = g.normal(52, 15)
		}

		// Keep measurements inside realistic clinical ranges
		tumorSize[i] = clip(tumorSize[i], 2.0, 30.0)
		smoothness[i] = clip(smoothness[i], 0.02, 0.20)
		compactness[i] = clip(compactness[i], 0.01, 0.30)
		patientAge[i] = clip(patientAge[i], 18, 90)
	}

	ds := dataset.New(n)
	if err := ds.AddCategorical(dataset.ColPatientID, patientIDs); err != nil {
		return nil, err
	}
	if err := ds.AddContinuous(dataset.ColTumorSize, tumorSize); err != nil {
		return nil, err
	}
	if err := ds.AddContinuous(dataset.ColSmoothness, smoothness); err != nil {
		return nil, err
	}
	if err := ds.AddContinuous(dataset.ColCompactness, compactness); err != nil {
		return nil, err
	}
	if err := ds.AddContinuous(dataset.ColPatientAge, patientAge); err != nil {
		return nil, err
	}
	if err := ds.AddCategorical(dataset.ColDiagnosis, diagnosis); err != nil {
		return nil, err
	}
	if err := dataset.DeriveAgeGroup(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (g *MedicalDataGenerator) normal(mean, sd float64) float64 {
	return mean + g.rng.NormFloat64()*sd
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
