package hamming

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when the two sequences differ in length.
// The Hamming distance is only defined for equal-length inputs.
var ErrLengthMismatch = errors.New("hamming: sequences must have equal length")

// Distance returns the Hamming distance between a and b: the number of
// rune positions at which they differ.
//
// Both strings must contain the same number of runes; otherwise
// ErrLengthMismatch is returned. The result lies in [0, len], edges
// included.
//
// Complexity: O(N) time, O(N) memory for the rune views.
func Distance(a, b string) (int, error) {
	return DistanceOf([]rune(a), []rune(b))
}

// DistanceOf returns the Hamming distance between two element slices.
// It is the generic counterpart of Distance for callers comparing
// tokens, bytes, or any other comparable elements.
func DistanceOf[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	dist := 0
	for i := range a {
		if a[i] != b[i] {
			dist++
		}
	}

	return dist, nil
}

// Normalized returns the Hamming distance between a and b divided by
// their common length, a float in [0,1] where 0 means identical and 1
// maximally different. Two empty strings are identical: 0.
func Normalized(a, b string) (float64, error) {
	return NormalizedOf([]rune(a), []rune(b))
}

// NormalizedOf is the generic counterpart of Normalized.
func NormalizedOf[T comparable](a, b []T) (float64, error) {
	dist, err := DistanceOf(a, b)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		// two empty sequences: identical
		return 0, nil
	}

	return float64(dist) / float64(len(a)), nil
}
