// Package excel loads tabular datasets from Excel and CSV files into the
// engine's column-oriented representation.
package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"oncostat/domain/dataset"
	"oncostat/internal"
	apperrors "oncostat/internal/errors"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, log: internal.DefaultLogger}
}

// ReadDataset reads the file into a Dataset. The first record is the header
// row. Column types are inferred: a column where every non-empty cell parses
// as a number becomes continuous, everything else categorical. Empty cells
// and the markers "NA" and "NaN" count as missing.
func (r *DataReader) ReadDataset() (*dataset.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, apperrors.DataFormat(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	var records [][]string
	var err error
	switch r.fileType {
	case "csv":
		records, err = r.readCSVRecords()
	case "xlsx":
		records, err = r.readExcelRecords()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, apperrors.DataFormat(fmt.Sprintf("file %s has no data rows", r.filePath))
	}

	return buildDataset(records[0], records[1:])
}

func (r *DataReader) readCSVRecords() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return records, nil
}

func (r *DataReader) readExcelRecords() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	r.log.Debug("read %d rows from sheet %s", len(rows), sheet)
	return rows, nil
}

func buildDataset(headers []string, rows [][]string) (*dataset.Dataset, error) {
	ds := dataset.New(len(rows))

	for col, name := range headers {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.DataFormat(fmt.Sprintf("column %d has an empty header", col))
		}

		cells := make([]string, len(rows))
		for i, row := range rows {
			if col < len(row) {
				cells[i] = strings.TrimSpace(row[col])
			}
		}

		if numeric, ok := parseNumericColumn(cells); ok {
			if err := ds.AddContinuous(name, numeric); err != nil {
				return nil, err
			}
			continue
		}
		for i, cell := range cells {
			if isMissing(cell) {
				cells[i] = ""
			}
		}
		if err := ds.AddCategorical(name, cells); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// parseNumericColumn attempts to interpret a column as continuous. It fails
// as soon as a non-missing cell does not parse as a number, and refuses
// columns that are entirely missing.
func parseNumericColumn(cells []string) ([]float64, bool) {
	values := make([]float64, len(cells))
	seen := false
	for i, cell := range cells {
		if isMissing(cell) {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsInf(v, 0) {
			return nil, false
		}
		values[i] = v
		seen = true
	}
	return values, seen
}

func isMissing(cell string) bool {
	switch cell {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}
