// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for box construction.
var (
	// ErrDimensionMismatch indicates lo, hi and delta of different lengths.
	ErrDimensionMismatch = errors.New("grid: lo, hi and delta lengths differ")

	// ErrBadDelta indicates a non-positive, NaN or infinite cell width.
	ErrBadDelta = errors.New("grid: delta must be positive and finite")

	// ErrEmptyBox indicates a box with no axes.
	ErrEmptyBox = errors.New("grid: box needs at least one axis")
)

// gridErrorf wraps err with a method tag: "Cells: grid: …".
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
