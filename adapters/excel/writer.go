package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"oncostat/domain/dataset"
)

// WriteCSV writes a dataset to a CSV file with a header row. Missing values
// are written as empty cells.
func WriteCSV(ds *dataset.Dataset, filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	columns := ds.Columns()
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for row := 0; row < ds.Rows(); row++ {
		for i, col := range columns {
			switch col.Type {
			case dataset.Continuous:
				values, _ := ds.Continuous(col.Name)
				if math.IsNaN(values[row]) {
					record[i] = ""
				} else {
					record[i] = strconv.FormatFloat(values[row], 'g', -1, 64)
				}
			case dataset.Categorical:
				values, _ := ds.Categorical(col.Name)
				record[i] = values[row]
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}
