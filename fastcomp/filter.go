package fastcomp

import "iter"

// Filter — lazy candidate screening
//
// Description:
//
//	Filter ranges over candidates and yields a (distance, candidate)
//	pair for every candidate within MaxDistance of pattern; anything
//	further away is dropped silently. Candidates are compared in input
//	order and the output preserves that order; sort the collected
//	pairs if you want closest-first.
//
// The returned sequence is single-pass: candidates are pulled on demand,
// nothing is buffered, and the source is consumed at most once, so a
// generator-backed source can be arbitrarily large or even infinite (the
// stream stops when the consumer stops). Breaking out of the range loop
// abandons the rest of the source.
//
// This is the intended tool for spell-check style pipelines: screen a
// big dictionary down to plausible suggestions in O(N) per word, then
// rank the survivors.
//
// Example:
//
//	for d, w := range fastcomp.Filter("foo", slices.Values(dictionary)) {
//		fmt.Println(d, w)
//	}
func Filter(pattern string, candidates iter.Seq[string], opts ...Option) iter.Seq2[int, string] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := []rune(pattern)

	return func(yield func(int, string) bool) {
		for cand := range candidates {
			d := bounded(p, []rune(cand), o.Transpositions)
			if d == Exceeded {
				continue
			}
			if !yield(d, cand) {
				return
			}
		}
	}
}

// FilterOf is the generic counterpart of Filter for element-slice
// candidates.
func FilterOf[T comparable](pattern []T, candidates iter.Seq[[]T], opts ...Option) iter.Seq2[int, []T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(int, []T) bool) {
		for cand := range candidates {
			d := bounded(pattern, cand, o.Transpositions)
			if d == Exceeded {
				continue
			}
			if !yield(d, cand) {
				return
			}
		}
	}
}
