// Package setsim scores two sequences by the overlap of their element
// sets, ignoring order and multiplicity entirely.
//
// 🚀 What is set similarity?
//
//	Treat each sequence as the set of distinct elements it contains and
//	measure how much the two sets overlap.  Because order plays no role,
//	these metrics shine where edit distances are too strict:
//	  • fuzzy matching of shuffled or re-worded phrases
//	  • near-duplicate detection over token streams
//	  • cheap pre-filters in front of more expensive comparisons
//
// ✨ Key features:
//   - Jaccard / JaccardOf:   1 − |A∩B| / |A∪B|
//   - Sorensen / SorensenOf: 1 − 2·|A∩B| / (|A|+|B|)
//   - both return a DISTANCE in [0,1]: 0 means equal sets, 1 means disjoint
//   - string forms build rune sets; generic forms accept any []T, T comparable
//   - total functions: no error path, two empty inputs count as identical
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcmp/setsim"
//
//	d := setsim.Jaccard("decide", "resize")  // 0.714…
//	s := setsim.Sorensen("decide", "resize") // 0.555…
//
//	tokensA := strings.Fields("the quick brown fox")
//	tokensB := strings.Fields("the brown quick fox")
//	setsim.JaccardOf(tokensA, tokensB)       // 0: same token set
//
// Performance:
//
//   - Time:   O(len1 + len2) expected (hash-set construction and probing)
//   - Memory: O(distinct elements)
//
// Sorensen never exceeds Jaccard on the same pair; both agree at the
// extremes 0 and 1.
package setsim
