// Package levenshtein computes the minimum edit distance between two
// sequences under single-element insertions, deletions and substitutions.
//
// 🚀 What is the Levenshtein distance?
//
//	The smallest number of edit operations turning one sequence into the
//	other:
//	  • deletion:     ABC → BC, AC, AB
//	  • insertion:    ABC → ABCD, EABC, AEBC…
//	  • substitution: ABC → ABE, ADC, FBC…
//	It’s the workhorse behind spelling correction, fuzzy search, OCR
//	cleanup and record linkage.
//
// ✨ Key features:
//   - Distance / DistanceOf: exact edit distance, any input lengths
//   - Normalized / NormalizedOf: distance scaled into [0,1] by the longer length
//   - rolling-row dynamic programming: O(min(N,M)) memory, not O(N·M)
//   - string forms measure runes; generic forms accept any []T, T comparable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcmp/levenshtein"
//
//	d := levenshtein.Distance("kitten", "sitting")  // 3
//	f := levenshtein.Normalized("kitten", "sitting") // 3/7 ≈ 0.43
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(min(N,M))
//
// Only need to know whether two strings are within distance 2 of each
// other? The fastcomp package answers that in O(N) per pair.
package levenshtein
