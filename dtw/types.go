// Package dtw defines options, modes, and errors for Dynamic Time Warping.
package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an option violation, such as Window below -1.
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP grid.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) grid. The only mode that
//     can recover the warping path. Memory: O(n·m).
//   - TwoRows — keep the current and previous row. Distance only.
//     Memory: O(m).
//   - NoMemory — keep a single row with a scalar diagonal carry.
//     Distance only, the smallest footprint. Memory: O(m).
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep two alternating rows, no path recovery.
	TwoRows

	// NoMemory mode: keep one row and a diagonal carry, no path recovery.
	NoMemory
)

// Coord is one step of a warping path: I indexes the first sequence,
// J the second.
type Coord struct {
	I int
	J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window — Sakoe–Chiba band half-width: the maximum |i−j| a cell may
//     have. -1 disables the constraint, 0 admits only the exact diagonal,
//     w > 0 admits a band of ±w. Values below -1 are rejected with
//     ErrBadInput.
//   - SlopePenalty — additive cost for every insertion or deletion step,
//     biasing the alignment toward the diagonal.
//   - ReturnPath — backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode — choose FullMatrix, TwoRows, or NoMemory storage.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10         // only compare elements within ±10 steps
//	opts.SlopePenalty = 0.5  // small penalty for non-diagonal moves
//	opts.ReturnPath = true   // we need the path, not just the distance
//
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the baseline configuration: unlimited window,
// no slope penalty, distance only, full matrix storage.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
