package seqcmp

import (
	"github.com/katalvlaran/seqcmp/fastcomp"
	"github.com/katalvlaran/seqcmp/levenshtein"
)

// Comparer computes an edit distance between two strings.
//
// Implementations must be pure: no retained state, safe for concurrent use.
// A negative result means "beyond this provider's reach" (see Bounded);
// exact providers never return negative values.
type Comparer interface {
	// Compare returns the edit distance between a and b, measured in runes.
	Compare(a, b string) int
}

// ComparerFunc adapts a plain function to the Comparer interface.
type ComparerFunc func(a, b string) int

// Compare calls f(a, b).
func (f ComparerFunc) Compare(a, b string) int { return f(a, b) }

// Exact returns a Comparer backed by the full Levenshtein engine.
// It always reports the true edit distance, at O(len(a)·len(b)) cost
// per comparison.
func Exact() Comparer {
	return ComparerFunc(levenshtein.Distance)
}

// Bounded returns a Comparer backed by the FastComp engine: distances up
// to fastcomp.MaxDistance are exact, anything further reports
// fastcomp.Exceeded. It runs in O(len(a)) per comparison, which makes it
// the right provider for high-volume candidate screening.
//
// Exact and Bounded share one call signature, so either can be handed to
// code written against Comparer without that code changing:
//
//	var cmp seqcmp.Comparer = seqcmp.Bounded()
//	if d := cmp.Compare(word, candidate); d >= 0 {
//		// candidate is within reach
//	}
func Bounded(opts ...fastcomp.Option) Comparer {
	return ComparerFunc(func(a, b string) int {
		return fastcomp.Distance(a, b, opts...)
	})
}
