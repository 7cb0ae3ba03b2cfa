package fastcomp

// Distance — bounded edit distance
//
// Description:
//
//	Computes the Levenshtein distance between a and b if it is at most
//	MaxDistance, and returns Exceeded otherwise. Distances are measured
//	in runes. With WithTranspositions, an adjacent swap costs one edit.
//
// Algorithm Outline:
//  1. Swap so a is the longer input; ldiff = len(a) − len(b).
//     ldiff > 2 → Exceeded (the length gap alone needs that many edits).
//  2. Pick the edit models for ldiff (see types.go).
//  3. Replay each model: walk both inputs with two cursors, advancing
//     together on matches. Each mismatch raises the cost c and either
//     consumes an adjacent transposition (both cursors jump two) or
//     applies model slot c−1: delete moves the longer side, insert the
//     shorter, replace both. c > 2 aborts the model.
//  4. Leftover elements after the walk must be absorbable by the
//     model's unconsumed tail (delete slots for the longer side,
//     insert slots for the shorter), else the model fails; absorbed
//     leftover adds to c.
//  5. The smallest surviving c wins; no survivor → Exceeded.
//
// Complexity:
//
//	Time   = O(N) (at most three walks)
//	Memory = O(1) beyond the rune views
func Distance(a, b string, opts ...Option) int {
	return DistanceOf([]rune(a), []rune(b), opts...)
}

// DistanceOf is the generic counterpart of Distance for element slices.
func DistanceOf[T comparable](a, b []T, opts ...Option) int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return bounded(a, b, o.Transpositions)
}

// bounded runs the model search. Shared by DistanceOf and the filters so
// the latter pay the option parsing once per stream, not per candidate.
func bounded[T comparable](a, b []T, transpositions bool) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	len1, len2 := len(a), len(b)
	ldiff := len1 - len2

	var models []model
	switch ldiff {
	case 0:
		models = modelsEqual
	case 1:
		models = modelsOff1
	case 2:
		models = modelsOff2
	default:
		return Exceeded
	}

	best := MaxDistance + 1
	for _, m := range models {
		i, j, c := 0, 0, 0
		for i < len1 && j < len2 {
			if a[i] == b[j] {
				i++
				j++

				continue
			}
			c++
			if c > MaxDistance {
				break
			}
			if transpositions && ldiff != 2 &&
				i+1 < len1 && j+1 < len2 &&
				a[i+1] == b[j] && a[i] == b[j+1] {
				// adjacent swap: one edit, both cursors jump the pair
				i += 2
				j += 2

				continue
			}
			switch m[c-1] {
			case opDelete:
				i++
			case opInsert:
				j++
			default:
				i++
				j++
			}
		}
		if c > MaxDistance {
			continue
		}
		if i < len1 {
			// leftover in the longer input: only deletes can absorb it
			if len1-i > remaining(m, c, opDelete) {
				continue
			}
			c += len1 - i
		} else if j < len2 {
			// leftover in the shorter input: only inserts can absorb it
			if len2-j > remaining(m, c, opInsert) {
				continue
			}
			c += len2 - j
		}
		if c < best {
			best = c
		}
	}
	if best > MaxDistance {
		return Exceeded
	}

	return best
}

// remaining counts occurrences of want among the model slots not yet
// consumed (slots used..end).
func remaining(m model, used int, want op) int {
	count := 0
	for _, slot := range m[used:] {
		if slot == want {
			count++
		}
	}

	return count
}
