package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInsufficientData signals that a group has too few observations
	// for the requested statistic.
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrDegenerateVariance signals zero pooled variance, which makes a
	// standardized effect size undefined.
	ErrDegenerateVariance = errors.New("degenerate variance")

	// ErrDegenerateTable signals a contingency table with fewer than two
	// categories on either axis.
	ErrDegenerateTable = errors.New("degenerate contingency table")

	// ErrUnknownColumn signals a column name absent from the dataset schema.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrColumnType signals a column used with the wrong semantic type.
	ErrColumnType = errors.New("column has wrong type")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewInsufficientDataError(group string, need, got int) error {
	return fmt.Errorf("%w: group %q has %d observations, need at least %d", ErrInsufficientData, group, got, need)
}

func NewEmptyGroupError(group string) error {
	return fmt.Errorf("%w: group %q is empty", ErrInsufficientData, group)
}

func NewUnknownColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
}

func NewColumnTypeError(column, want, got string) error {
	return fmt.Errorf("%w: %q is %s, want %s", ErrColumnType, column, got, want)
}

func NewDegenerateTableError(rows, cols int) error {
	return fmt.Errorf("%w: %dx%d, need at least 2x2", ErrDegenerateTable, rows, cols)
}

// Error checking helpers
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsDegenerateVariance(err error) bool {
	return errors.Is(err, ErrDegenerateVariance)
}

func IsDegenerateTable(err error) bool {
	return errors.Is(err, ErrDegenerateTable)
}

func IsUnknownColumn(err error) bool {
	return errors.Is(err, ErrUnknownColumn)
}
