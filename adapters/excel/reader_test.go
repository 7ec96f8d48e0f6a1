package excel

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"oncostat/domain/dataset"
	apperrors "oncostat/internal/errors"
	"oncostat/internal/testkit"
)

func TestReadDatasetFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "Tumor_Size,Diagnosis,Notes\n" +
		"10.5,Benign,clear\n" +
		",Malignant,\n" +
		"12.25,Benign,NA\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, err := NewDataReader(path).ReadDataset()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Rows() != 3 {
		t.Fatalf("rows = %d, want 3", ds.Rows())
	}

	colType, err := ds.TypeOf("Tumor_Size")
	if err != nil || colType != dataset.Continuous {
		t.Fatalf("Tumor_Size type = %v (%v), want continuous", colType, err)
	}
	sizes, _ := ds.Continuous("Tumor_Size")
	if sizes[0] != 10.5 || !math.IsNaN(sizes[1]) || sizes[2] != 12.25 {
		t.Fatalf("unexpected sizes: %v", sizes)
	}

	colType, _ = ds.TypeOf("Diagnosis")
	if colType != dataset.Categorical {
		t.Fatalf("Diagnosis type = %v, want categorical", colType)
	}
	notes, _ := ds.Categorical("Notes")
	if notes[1] != "" || notes[2] != "" {
		t.Fatalf("missing markers not normalized: %v", notes)
	}
}

func TestReadDatasetFromXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Tumor_Size", "Diagnosis"},
		{10.5, "Benign"},
		{15.0, "Malignant"},
		{nil, "Benign"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	f.Close()

	ds, err := NewDataReader(path).ReadDataset()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Rows() != 3 {
		t.Fatalf("rows = %d, want 3", ds.Rows())
	}
	colType, err := ds.TypeOf("Tumor_Size")
	if err != nil || colType != dataset.Continuous {
		t.Fatalf("Tumor_Size type = %v (%v), want continuous", colType, err)
	}
	sizes, _ := ds.Continuous("Tumor_Size")
	if sizes[0] != 10.5 || sizes[1] != 15.0 || !math.IsNaN(sizes[2]) {
		t.Fatalf("unexpected sizes: %v", sizes)
	}
	diagnoses, _ := ds.Categorical("Diagnosis")
	if diagnoses[1] != "Malignant" {
		t.Fatalf("unexpected diagnoses: %v", diagnoses)
	}
}

func TestReadDatasetMissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/data.csv").ReadDataset()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeDataFormat {
		t.Errorf("error code = %q, want %q", code, apperrors.CodeDataFormat)
	}
}

func TestReadDatasetRejectsHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := NewDataReader(path).ReadDataset()
	if err == nil {
		t.Fatal("expected error for file without data rows")
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeDataFormat {
		t.Errorf("error code = %q, want %q", code, apperrors.CodeDataFormat)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	cfg := testkit.DefaultMedicalConfig()
	cfg.Samples = 40
	original, err := testkit.NewMedicalDataGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.csv")
	if err := WriteCSV(original, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := NewDataReader(path).ReadDataset()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded.Rows() != original.Rows() {
		t.Fatalf("rows = %d, want %d", loaded.Rows(), original.Rows())
	}

	want, _ := original.Continuous(dataset.ColTumorSize)
	got, err := loaded.Continuous(dataset.ColTumorSize)
	if err != nil {
		t.Fatalf("tumor size after round trip: %v", err)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("value %d changed across round trip: %v != %v", i, want[i], got[i])
		}
	}

	diagnosisType, err := loaded.TypeOf(dataset.ColDiagnosis)
	if err != nil || diagnosisType != dataset.Categorical {
		t.Fatalf("Diagnosis type = %v (%v), want categorical", diagnosisType, err)
	}
}
