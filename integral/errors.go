// SPDX-License-Identifier: MIT

package integral

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the dispatcher.
var (
	// ErrDeltasLocked indicates a delta change after the first sample.
	ErrDeltasLocked = errors.New("integral: deltas are locked after the first sample")

	// ErrDimensionMismatch indicates lo, hi or delta lengths that differ from
	// the field's dimension.
	ErrDimensionMismatch = errors.New("integral: vector length does not match dimension")

	// ErrStrategyDimension indicates a strategy the dimension cannot support.
	ErrStrategyDimension = errors.New("integral: strategy not supported for dimension")

	// ErrErrorExceeded is returned in strict mode when the quadrature could not
	// reach the requested error.
	ErrErrorExceeded = errors.New("integral: estimate of error was greater than requested")

	// ErrBadDelta indicates a non-positive, NaN or infinite delta.
	ErrBadDelta = errors.New("integral: delta must be positive and finite")

	// ErrBadPrecision indicates a precision level outside [MinPrecision, MaxPrecision].
	ErrBadPrecision = errors.New("integral: precision level out of range")

	// ErrUnknownStrategy indicates a strategy name ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("integral: unknown strategy")
)

// integralErrorf wraps err with a method tag: "SetDeltas: integral: …".
func integralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
