package levenshtein

import "slices"

// Distance — Levenshtein edit distance
//
// Description:
//
//	Computes the minimum number of single-rune insertions, deletions and
//	substitutions transforming a into b. The result is an integer between
//	0 and the longer input's length, edges included.
//
// Algorithm Outline (rolling row):
//  1. Short-circuit: equal inputs → 0; an empty side → the other's length.
//  2. Swap so a is the longer input; allocate one row of len(b)+1 cells,
//     initialized to 0..len(b) (the distance from the empty prefix).
//  3. For each element of the longer input, sweep the row left to right:
//     row[y] = min( row[y]+1,        // deletion
//     row[y-1]+1,      // insertion
//     diag+cost )      // substitution (cost 0 on match)
//     where diag carries the previous row's value of cell y-1, saved
//     before it was overwritten.
//  4. The final cell holds the distance.
//
// Complexity:
//
//	Time   = O(N·M)
//	Memory = O(min(N,M))
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	return DistanceOf([]rune(a), []rune(b))
}

// DistanceOf is the generic counterpart of Distance for element slices.
func DistanceOf[T comparable](a, b []T) int {
	if slices.Equal(a, b) {
		return 0
	}
	len1, len2 := len(a), len(b)
	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}
	// Keep the rolling row on the shorter side.
	if len1 < len2 {
		a, b = b, a
		len1, len2 = len2, len1
	}

	row := make([]int, len2+1)
	for y := 1; y <= len2; y++ {
		row[y] = y
	}
	for x := 1; x <= len1; x++ {
		row[0] = x
		diag := x - 1 // previous row's cell 0
		for y := 1; y <= len2; y++ {
			old := row[y]
			cost := 0
			if a[x-1] != b[y-1] {
				cost = 1
			}
			row[y] = min3(row[y]+1, row[y-1]+1, diag+cost)
			diag = old
		}
	}

	return row[len2]
}

// Normalized returns the Levenshtein distance between a and b divided by
// the longer input's length: a float in [0,1] where 0 means identical and
// 1 means nothing survives. Two empty strings are identical: 0.
func Normalized(a, b string) float64 {
	if a == b {
		return 0
	}

	return NormalizedOf([]rune(a), []rune(b))
}

// NormalizedOf is the generic counterpart of Normalized.
func NormalizedOf[T comparable](a, b []T) float64 {
	len1, len2 := len(a), len(b)
	if len1 == 0 && len2 == 0 {
		return 0
	}
	maxLen := len1
	if len2 > maxLen {
		maxLen = len2
	}

	return float64(DistanceOf(a, b)) / float64(maxLen)
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
