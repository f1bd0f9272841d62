package scalargrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for scalargrid operations.
var (
	// ErrInvalidSize indicates a requested dimension is negative or exceeds
	// MaxWidth/MaxHeight. The grid is guaranteed unmodified on this failure.
	ErrInvalidSize = errors.New("scalargrid: dimensions must be in [0, 32767]")

	// ErrCapacityLimit indicates a required allocation exceeds the capacity
	// limit configured via WithCapacityLimit.
	ErrCapacityLimit = errors.New("scalargrid: requested capacity exceeds limit")
)

// gridErrorf wraps an underlying sentinel with method context.
func gridErrorf(method string, width, height int, err error) error {
	return fmt.Errorf("ScalarGrid.%s(%d,%d): %w", method, width, height, err)
}
