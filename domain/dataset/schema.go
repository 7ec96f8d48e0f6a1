package dataset

// Canonical tumor measurement schema
const (
	ColPatientID   = "Patient_ID"
	ColTumorSize   = "Tumor_Size"
	ColSmoothness  = "Smoothness"
	ColCompactness = "Compactness"
	ColPatientAge  = "Patient_Age"
	ColDiagnosis   = "Diagnosis"
	ColAgeGroup    = "Age_Group"
)

// Diagnosis labels
const (
	DiagnosisBenign    = "Benign"
	DiagnosisMalignant = "Malignant"
)

// NumericFeatures lists the continuous columns of the canonical schema
var NumericFeatures = []string{ColTumorSize, ColSmoothness, ColCompactness, ColPatientAge}

// Age bucket boundaries and labels used to derive the Age_Group column
var (
	AgeGroupEdges  = []float64{0, 40, 55, 70, 100}
	AgeGroupLabels = []string{"Young (<=40)", "Middle-aged (41-55)", "Older (56-70)", "Elderly (>70)"}
)

// DeriveAgeGroup buckets Patient_Age into the Age_Group categorical column and
// adds it to the dataset. A no-op when the column already exists.
func DeriveAgeGroup(d *Dataset) error {
	if d.HasColumn(ColAgeGroup) {
		return nil
	}
	ages, err := d.Continuous(ColPatientAge)
	if err != nil {
		return err
	}
	buckets, err := Bucket(ages, AgeGroupEdges, AgeGroupLabels)
	if err != nil {
		return err
	}
	return d.AddCategorical(ColAgeGroup, buckets)
}
