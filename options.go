// Package scalargrid: functional configuration for grid construction.
// Defaults are documented constants; WithX constructors panic on
// nonsensical values (programmer error), never on valid input.
package scalargrid

import "fmt"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultBorderValue is returned for out-of-bounds reads until
	// SetBorderValue or WithBorderValue says otherwise.
	DefaultBorderValue float32 = 0

	// DefaultStrideBoundary of 1 means stride == width: no slab padding,
	// matching the compact layout most consumers expect.
	DefaultStrideBoundary = 1

	// DefaultCapacityLimit of 0 means unlimited: allocations are bounded
	// only by MaxWidth×MaxHeight.
	DefaultCapacityLimit = 0
)

// Option configures a ScalarGrid at construction time.
type Option func(*ScalarGrid)

// WithBorderValue sets the sample returned for all positions outside the
// grid's logical bounds.
func WithBorderValue(v float32) Option {
	return func(g *ScalarGrid) { g.border = v }
}

// WithStrideBoundary pads each slab's stride up to a multiple of n samples.
// Word-aligned slabs (n=4) can speed up bulk row copies; n=1 disables
// padding. Panics if n < 1.
func WithStrideBoundary(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("scalargrid: WithStrideBoundary(%d): boundary must be >= 1", n))
	}

	return func(g *ScalarGrid) { g.strideBoundary = n }
}

// WithCapacityLimit caps the number of cells this grid may allocate in a
// single buffer. Operations that would allocate beyond the limit fail with
// ErrCapacityLimit. A limit of 0 means unlimited. Panics if cells < 0.
//
// The limit governs allocations performed by this grid; a buffer adopted
// via TakeOwnership may exceed it until the next allocating operation.
func WithCapacityLimit(cells int) Option {
	if cells < 0 {
		panic(fmt.Sprintf("scalargrid: WithCapacityLimit(%d): limit must be >= 0", cells))
	}

	return func(g *ScalarGrid) { g.capacityLimit = cells }
}
