package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// DatasetHash fingerprints a dataset schema for report provenance
type DatasetHash Hash

func (h DatasetHash) String() string { return Hash(h).String() }

// ComputeDatasetHash derives a stable fingerprint from column names and row count.
// Column order does not affect the result.
func ComputeDatasetHash(columns []string, rows int) DatasetHash {
	sorted := make([]string, len(columns))
	copy(sorted, columns)
	sort.Strings(sorted)

	var data strings.Builder
	for _, col := range sorted {
		data.WriteString(col)
		data.WriteString("\n")
	}
	data.WriteString(fmt.Sprintf("rows=%d", rows))

	return DatasetHash(NewHash([]byte(data.String())))
}
