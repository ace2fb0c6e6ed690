// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

// Sentinel errors for table construction and evaluation.
var (
	// ErrNotCovered indicates a coordinate below its axis base.
	ErrNotCovered = errors.New("spline: parameter not covered by lowest segment")

	// ErrUnsortedSegments indicates upper bounds that are not strictly
	// increasing above the base.
	ErrUnsortedSegments = errors.New("spline: segment bounds must be strictly increasing above the base")

	// ErrEmptyTable indicates a table without segments.
	ErrEmptyTable = errors.New("spline: table has no segments")

	// ErrDimensionMismatch indicates inconsistent axis or cell counts.
	ErrDimensionMismatch = errors.New("spline: dimension mismatch")
)

// splineErrorf wraps err with a method tag: "Eval: spline: …".
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
