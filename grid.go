// Package scalargrid: the ScalarGrid container itself — construction,
// resizing with buffer reuse, bounds-forgiving accessors, compaction and
// O(1) ownership transfer.
package scalargrid

// Maximum raster dimensions. Either dimension of a grid may not exceed
// these independently.
const (
	// MaxWidth is the maximum width of a grid.
	MaxWidth = 32767
	// MaxHeight is the maximum height of a grid.
	MaxHeight = 32767
)

// ScalarGrid is a resizable, row-major 2D buffer of float32 samples with a
// configurable border value for out-of-bounds reads.
//
// A grid is always in one of two states: Empty (no buffer, all dimensions
// zero) or Sized (buffer present, width and height positive). Resizing to a
// zero dimension, Reset, and being the source of a TakeOwnership all return
// the grid to Empty; the object stays reusable indefinitely.
//
// The zero value is an Empty grid with default configuration and is ready
// to use. ScalarGrid is not safe for concurrent use; callers must serialize
// access externally.
type ScalarGrid struct {
	width  int       // logical columns, 0 <= width <= MaxWidth
	height int       // logical rows, 0 <= height <= MaxHeight
	stride int       // samples between slab starts, stride >= width
	cells  []float32 // backing storage, nil when Empty
	// capacity is the number of cells allocated, independent of the
	// width×height currently in use. Never shrunk implicitly.
	capacity int
	border   float32 // returned for out-of-bounds reads

	// Configuration, set by options; survives Reset.
	strideBoundary int
	capacityLimit  int
}

// New returns an Empty grid configured by opts.
// Complexity: O(1).
func New(opts ...Option) *ScalarGrid {
	g := &ScalarGrid{
		border:         DefaultBorderValue,
		strideBoundary: DefaultStrideBoundary,
		capacityLimit:  DefaultCapacityLimit,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewSized returns a grid resized to width×height with uninitialized
// samples. It fails exactly as Resize fails: ErrInvalidSize for dimensions
// outside [0, MaxWidth]×[0, MaxHeight], ErrCapacityLimit when the required
// buffer exceeds the configured limit.
// Complexity: O(W×H) for the allocation.
func NewSized(width, height int, opts ...Option) (*ScalarGrid, error) {
	g := New(opts...)
	if err := g.Resize(width, height); err != nil {
		return nil, err
	}

	return g, nil
}

// strideFor pads width up to the configured stride boundary.
// Complexity: O(1).
func (g *ScalarGrid) strideFor(width int) int {
	b := g.strideBoundary
	if b < 1 {
		b = DefaultStrideBoundary // zero-value grid, options never ran
	}

	return (width + b - 1) / b * b
}

// Resize sets new logical dimensions for the grid.
//
// A negative dimension or one exceeding MaxWidth/MaxHeight fails with
// ErrInvalidSize and leaves the grid completely unmodified. A zero
// dimension resets the grid to Empty; this is not an error.
//
// Otherwise the grid needs stride(width)*height cells. If the current
// buffer already has that capacity it is reused as-is — repeated resizing
// to shrinking or equal sizes never reallocates — and its stale contents
// are kept: samples are undefined until the caller writes or clears them.
// If the capacity is insufficient, the old buffer is released and a new one
// of exactly the required size is allocated; should that exceed the
// configured capacity limit, Resize fails with ErrCapacityLimit and the
// grid ends Empty.
// Complexity: O(1) on reuse, O(W×H) on allocation.
func (g *ScalarGrid) Resize(width, height int) error {
	if width < 0 || height < 0 || width > MaxWidth || height > MaxHeight {
		return gridErrorf("Resize", width, height, ErrInvalidSize)
	}
	if width == 0 || height == 0 {
		g.Reset()

		return nil
	}

	stride := g.strideFor(width)
	required := stride * height
	if required > g.capacity {
		// The current buffer is too small: release it and allocate fresh.
		g.Reset()
		if g.capacityLimit > 0 && required > g.capacityLimit {
			return gridErrorf("Resize", width, height, ErrCapacityLimit)
		}
		g.cells = make([]float32, required)
		g.capacity = required
	}
	g.width = width
	g.height = height
	g.stride = stride

	return nil
}

// Clear fills every in-bounds sample with v. Slab padding and spare
// capacity are untouched. No-op on an Empty grid.
// Complexity: O(W×H).
func (g *ScalarGrid) Clear(v float32) {
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.stride : y*g.stride+g.width]
		for i := range row {
			row[i] = v
		}
	}
}

// Compact reallocates the grid into the smallest buffer that fits the
// current dimensions, reclaiming capacity left behind by shrinking resizes.
// Contents are preserved. Compact is atomic: if the replacement buffer
// cannot be allocated within the capacity limit, the grid keeps its
// original buffer unchanged and ErrCapacityLimit is returned. No-op when
// the grid is Empty or already minimal.
// Complexity: O(W×H).
func (g *ScalarGrid) Compact() error {
	if g.cells == nil {
		return nil
	}
	required := g.stride * g.height
	if required >= g.capacity {
		return nil
	}
	if g.capacityLimit > 0 && required > g.capacityLimit {
		return gridErrorf("Compact", g.width, g.height, ErrCapacityLimit)
	}
	buf := make([]float32, required)
	copy(buf, g.cells[:required])
	g.cells = buf
	g.capacity = required

	return nil
}

// Value returns the sample at (x, y), or the border value when the
// coordinate lies outside [0,width)×[0,height) or the grid is Empty.
// Out-of-bounds reads are normal control flow, never an error.
// Complexity: O(1).
func (g *ScalarGrid) Value(x, y int) float32 {
	if g.cells == nil || !g.InBounds(x, y) {
		return g.border
	}

	return g.cells[y*g.stride+x]
}

// SetValue writes v at (x, y). Writes outside the logical bounds, or on an
// Empty grid, are silent no-ops.
// Complexity: O(1).
func (g *ScalarGrid) SetValue(x, y int, v float32) {
	if g.cells == nil || !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.stride+x] = v
}

// InBounds reports whether (x,y) lies within the grid's logical bounds.
// Complexity: O(1).
func (g *ScalarGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TakeOwnership moves src's buffer — with its capacity, dimensions, and
// stride — into g, releasing whatever buffer g previously owned, then
// resets src to Empty. No sample data is copied. The border value does not
// travel with the buffer: each grid keeps its own.
//
// Like the capacity limit, the stride boundary governs allocations
// performed by this grid: an adopted stride is kept as-is, even when it is
// not a multiple of g's boundary, until the next Resize re-derives it.
//
// Neither grid may be accessed concurrently during the call.
// Complexity: O(1).
func (g *ScalarGrid) TakeOwnership(src *ScalarGrid) {
	if src == g {
		return
	}
	g.cells = src.cells
	g.capacity = src.capacity
	g.width = src.width
	g.height = src.height
	g.stride = src.stride
	src.Reset()
}

// CopyFrom duplicates src's samples and border value into g, reusing g's
// buffer when its capacity suffices. Copying an Empty source leaves g Empty
// (with src's border value). On ErrCapacityLimit g ends Empty.
// Complexity: O(W×H).
func (g *ScalarGrid) CopyFrom(src *ScalarGrid) error {
	if err := g.Resize(src.width, src.height); err != nil {
		return err
	}
	for y := 0; y < src.height; y++ {
		copy(g.cells[y*g.stride:y*g.stride+g.width], src.Row(y))
	}
	g.border = src.border

	return nil
}

// Clone returns an independent copy of the grid: a fresh buffer sized to
// the minimum for g's dimensions, every sample duplicated, and the border
// value and configuration carried over. Mutating either grid afterwards
// does not affect the other.
// Complexity: O(W×H).
func (g *ScalarGrid) Clone() (*ScalarGrid, error) {
	dst := &ScalarGrid{
		border:         g.border,
		strideBoundary: g.strideBoundary,
		capacityLimit:  g.capacityLimit,
	}
	if err := dst.CopyFrom(g); err != nil {
		return nil, err
	}

	return dst, nil
}

// Reset returns the grid to the Empty state: the buffer is released and
// dimensions, stride, and capacity are zeroed. The border value and the
// configuration from options are kept — the border stays defined in both
// states. The grid remains reusable.
// Complexity: O(1).
func (g *ScalarGrid) Reset() {
	g.cells = nil
	g.width = 0
	g.height = 0
	g.stride = 0
	g.capacity = 0
}

// Row returns the slab at row y as a sub-slice of the backing buffer:
// offset y*stride, length width. Writes through the slice are writes into
// the grid. Returns nil when the grid is Empty or y is out of range.
// Intended for bulk copies; per-sample access should prefer Value/SetValue.
// Complexity: O(1).
func (g *ScalarGrid) Row(y int) []float32 {
	if g.cells == nil || y < 0 || y >= g.height {
		return nil
	}
	off := y * g.stride

	return g.cells[off : off+g.width]
}

// Values returns the whole backing buffer, capacity cells long, or nil when
// the grid is Empty. Row y starts at offset y*stride. Bounds are the
// caller's responsibility; this raw form exists for performance-critical
// bulk access.
// Complexity: O(1).
func (g *ScalarGrid) Values() []float32 {
	return g.cells
}

// Offset returns the buffer index of cell (x, y) under the row-major
// layout: y*stride + x. No bounds checking is performed.
// Complexity: O(1).
func (g *ScalarGrid) Offset(x, y int) int {
	return y*g.stride + x
}

// Width returns the logical width of the grid.
// Complexity: O(1).
func (g *ScalarGrid) Width() int { return g.width }

// Height returns the logical height of the grid.
// Complexity: O(1).
func (g *ScalarGrid) Height() int { return g.height }

// Stride returns the offset in samples between the starts of adjacent
// slabs. Always >= Width for a Sized grid, 0 when Empty.
// Complexity: O(1).
func (g *ScalarGrid) Stride() int { return g.stride }

// Capacity returns the number of cells allocated in the backing buffer,
// independent of the width×height currently in use.
// Complexity: O(1).
func (g *ScalarGrid) Capacity() int { return g.capacity }

// IsEmpty reports whether the grid is in the Empty state.
// Complexity: O(1).
func (g *ScalarGrid) IsEmpty() bool { return g.cells == nil }

// BorderValue returns the sample used for all positions outside the grid.
// Complexity: O(1).
func (g *ScalarGrid) BorderValue() float32 { return g.border }

// SetBorderValue sets the sample used for all positions outside the grid.
// Complexity: O(1).
func (g *ScalarGrid) SetBorderValue(v float32) { g.border = v }
