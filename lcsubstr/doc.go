// Package lcsubstr finds the longest common substring of two sequences,
// as text or as positions.
//
// 🚀 What is the longest common substring?
//
//	The longest run of elements that appears contiguously in both
//	inputs (unlike a subsequence, no gaps are allowed).  Typical uses:
//	  • shared-fragment detection between documents
//	  • plagiarism and near-duplicate screening
//	  • anchoring alignments before a finer diff
//
// ✨ Key features:
//   - Substrings / SubstringsOf: the distinct longest fragments themselves
//   - Positions / PositionsOf: the common length plus every occurrence,
//     located in BOTH inputs
//   - positions always address the arguments as the caller passed them,
//     regardless of which input is longer
//   - string forms work in runes; generic forms accept any []T, T comparable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcmp/lcsubstr"
//
//	lcsubstr.Substrings("sedentar", "dentist")      // ["dent"]
//	n, at := lcsubstr.Positions("sedentar", "dentist")
//	// n = 4, at = [{I:2 J:0}]: "dent" starts at rune 2 of the first
//	// argument and rune 0 of the second
//
// Performance:
//
//   - Time:   O(len1 · len2)
//   - Memory: O(min(len1, len2)) (a single rolling row)
//
// No common element at all yields length 0 and no occurrences.
package lcsubstr
