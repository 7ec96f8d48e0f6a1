package dataset

import (
	"math"

	"oncostat/domain/core"
)

// Bucket maps continuous values into labeled half-open intervals (lo, hi].
// edges must be strictly increasing and one longer than labels. Values outside
// the outermost edges, and missing values, map to the missing marker "".
func Bucket(values []float64, edges []float64, labels []string) ([]string, error) {
	if len(edges) != len(labels)+1 {
		return nil, core.NewValidationError("edges", "need exactly one more edge than labels")
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, core.NewValidationError("edges", "edges must be strictly increasing")
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) || v <= edges[0] || v > edges[len(edges)-1] {
			continue
		}
		for b := 1; b < len(edges); b++ {
			if v <= edges[b] {
				out[i] = labels[b-1]
				break
			}
		}
	}
	return out, nil
}
