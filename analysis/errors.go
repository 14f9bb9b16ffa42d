package analysis

import "errors"

// Sentinel errors returned by Verify and SpanningTreeCount.
var (
	// ErrAsymmetric indicates a passage bit without its mirror bit on the neighbour.
	ErrAsymmetric = errors.New("analysis: one-way passage")
	// ErrEdgeCount indicates the passage count differs from W·H−1.
	ErrEdgeCount = errors.New("analysis: passage count is not W·H-1")
	// ErrDisconnected indicates some cell is unreachable from the others.
	ErrDisconnected = errors.New("analysis: maze is not connected")
	// ErrBoundary indicates a missing, misplaced or extra outer-wall opening.
	ErrBoundary = errors.New("analysis: invalid boundary opening")
	// ErrTooLarge indicates a grid too large for SpanningTreeCount.
	ErrTooLarge = errors.New("analysis: grid too large")
)
