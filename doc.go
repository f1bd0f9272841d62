// Package scalargrid provides a resizable, row-major 2D container of
// float32 samples — heightmaps, density fields, grayscale textures, or
// any other procedurally generated scalar field.
//
// What:
//
//   - ScalarGrid stores width×height samples in a single flat buffer.
//   - Reads outside the logical bounds return a configurable border value;
//     writes outside the bounds are silent no-ops.
//   - Resize reuses the existing buffer whenever its capacity suffices, so
//     repeated shrink/grow cycles within an established capacity never
//     reallocate. Compact reclaims the spare capacity on demand.
//   - TakeOwnership moves a buffer between grids in O(1) without copying;
//     Clone and CopyFrom duplicate contents into independent storage.
//
// Why:
//
//   - Terrain generation: fill once per pass into a buffer that is
//     allocated once and reused across resolutions.
//   - Image/texture pipelines: row views expose contiguous slabs for bulk
//     copies into external consumers.
//   - Simulation fields: the border value makes edge sampling branch-free
//     for stencil kernels that read past the boundary.
//
// Layout:
//
//	Samples are organized into horizontal rows called slabs. Row y starts
//	at offset y*stride in the buffer and cell (x,y) lives at y*stride+x.
//	The stride is measured in samples, is at least the width, and is padded
//	to a multiple of the configured stride boundary (1 by default, i.e. no
//	padding).
//
// Complexity:
//
//   - Value / SetValue / TakeOwnership / accessors: O(1).
//   - Resize: O(1) when capacity is reused, O(W×H) when it allocates.
//   - Clear / Compact / Clone / CopyFrom: O(W×H).
//
// Options:
//
//   - WithBorderValue: sample returned for out-of-bounds reads.
//   - WithStrideBoundary: pad each slab's stride to a multiple of n samples.
//   - WithCapacityLimit: cap the cells a single grid may allocate.
//
// Errors:
//
//   - ErrInvalidSize: a requested dimension is negative or exceeds
//     MaxWidth/MaxHeight; the grid is left unmodified.
//   - ErrCapacityLimit: a required allocation exceeds the configured
//     capacity limit; Resize and CopyFrom leave the grid empty, Compact
//     leaves it unchanged.
//
// Out-of-bounds access, operating on an empty grid, and resizing to a zero
// dimension are normal control flow, never errors.
package scalargrid
