package setsim

// Jaccard — set distance over the union
//
// Description:
//
//	Jaccard returns 1 − |A∩B| / |A∪B|, where A and B are the sets of
//	distinct runes in a and b. The result lies in [0,1]: 0 for equal
//	sets, 1 for disjoint ones. Two empty strings are identical: 0.
//
// Complexity: O(len(a)+len(b)) expected time, O(distinct runes) memory.
func Jaccard(a, b string) float64 {
	return JaccardOf([]rune(a), []rune(b))
}

// JaccardOf is the generic counterpart of Jaccard for element slices.
func JaccardOf[T comparable](a, b []T) float64 {
	setA, setB := toSet(a), toSet(b)
	inter := intersection(setA, setB)
	union := len(setA) + len(setB) - inter
	if union == 0 {
		// both sets empty: identical
		return 0
	}

	return 1 - float64(inter)/float64(union)
}

// Sorensen — set distance over the summed cardinalities
//
// Description:
//
//	Sorensen returns 1 − 2·|A∩B| / (|A|+|B|), the Sørensen–Dice
//	distance between the rune sets of a and b. It weighs the overlap
//	against the set sizes rather than the union, so on any given pair
//	it never exceeds Jaccard. Two empty strings are identical: 0.
//
// Complexity: O(len(a)+len(b)) expected time, O(distinct runes) memory.
func Sorensen(a, b string) float64 {
	return SorensenOf([]rune(a), []rune(b))
}

// SorensenOf is the generic counterpart of Sorensen for element slices.
func SorensenOf[T comparable](a, b []T) float64 {
	setA, setB := toSet(a), toSet(b)
	total := len(setA) + len(setB)
	if total == 0 {
		return 0
	}

	return 1 - 2*float64(intersection(setA, setB))/float64(total)
}

// toSet collapses a slice onto the set of its distinct elements.
func toSet[T comparable](seq []T) map[T]struct{} {
	set := make(map[T]struct{}, len(seq))
	for _, e := range seq {
		set[e] = struct{}{}
	}

	return set
}

// intersection counts the elements present in both sets, probing the
// larger set with the smaller one.
func intersection[T comparable](setA, setB map[T]struct{}) int {
	if len(setB) < len(setA) {
		setA, setB = setB, setA
	}

	count := 0
	for e := range setA {
		if _, ok := setB[e]; ok {
			count++
		}
	}

	return count
}
