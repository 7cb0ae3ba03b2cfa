package lcsubstr

import (
	"slices"
	"sort"
)

// Positions — longest common substring as coordinates
//
// Description:
//
//	Positions returns the rune length of the longest common substring
//	of a and b, together with one Position per occurrence. Occurrences
//	are reported in scan order and always address the arguments as
//	passed: I is a rune offset into a, J into b.
//
// Algorithm Outline:
//
//  1. Keep one rolling row over the shorter sequence (the inputs are
//     swapped internally when needed; reported offsets are swapped
//     back).
//  2. For every element pair, extend the diagonal run on a match and
//     reset it on a mismatch.
//  3. A run longer than the best so far replaces the occurrence list;
//     a run of equal length joins it.
//
// Complexity: O(len(a)·len(b)) time, O(min(len(a),len(b))) memory.
//
// No common element yields (0, nil).
func Positions(a, b string) (int, []Position) {
	return PositionsOf([]rune(a), []rune(b))
}

// PositionsOf is the generic counterpart of Positions for element slices.
func PositionsOf[T comparable](a, b []T) (int, []Position) {
	swapped := false
	if len(a) < len(b) {
		a, b = b, a
		swapped = true
	}

	// End cells (i,j) of the best runs, in the swapped orientation.
	var hits []Position
	mlen := 0
	row := make([]int, len(b))
	last := 0
	for i := range a {
		for j := range b {
			old := row[j]
			if a[i] == b[j] {
				if i == 0 || j == 0 {
					row[j] = 1
				} else {
					row[j] = last + 1
				}
				switch {
				case row[j] > mlen:
					mlen = row[j]
					hits = append(hits[:0], Position{I: i, J: j})
				case row[j] == mlen:
					hits = append(hits, Position{I: i, J: j})
				}
			} else {
				row[j] = 0
			}
			last = old
		}
	}
	if mlen == 0 {
		return 0, nil
	}

	// Turn end cells into start offsets, back in caller orientation.
	out := make([]Position, len(hits))
	for k, h := range hits {
		i, j := h.I-mlen+1, h.J-mlen+1
		if swapped {
			i, j = j, i
		}
		out[k] = Position{I: i, J: j}
	}

	return mlen, out
}

// Substrings — longest common substring as text
//
// Description:
//
//	Substrings returns the distinct longest common substrings of a and
//	b, sorted lexicographically. Most pairs have exactly one; ties all
//	share the maximal length.
//
// Complexity: O(len(a)·len(b)) time plus O(k·mlen) for extraction.
//
// No common rune yields nil.
func Substrings(a, b string) []string {
	ra := []rune(a)
	mlen, pos := PositionsOf(ra, []rune(b))
	if mlen == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(pos))
	out := make([]string, 0, len(pos))
	for _, p := range pos {
		s := string(ra[p.I : p.I+mlen])
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// SubstringsOf is the generic counterpart of Substrings. The distinct
// fragments are returned in discovery order, each one an independent
// copy.
func SubstringsOf[T comparable](a, b []T) [][]T {
	mlen, pos := PositionsOf(a, b)
	if mlen == 0 {
		return nil
	}

	var out [][]T
	for _, p := range pos {
		sub := a[p.I : p.I+mlen]
		dup := false
		for _, have := range out {
			if slices.Equal(have, sub) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, slices.Clone(sub))
		}
	}

	return out
}
