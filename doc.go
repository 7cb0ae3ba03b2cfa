// Package seqcmp is a toolbox for measuring how close two sequences are:
// from strict per-position mismatch counts to edit distances, set overlap
// coefficients, common-substring extraction and time-warped alignment.
//
// 🚀 What is seqcmp?
//
//	A small, dependency-light library of sequence-comparison primitives:
//		• Hamming: per-position mismatch count for equal-length inputs
//		• Levenshtein: full edit distance, O(min(N,M)) memory
//		• FastComp: edit distance bounded at 2, O(N) per comparison,
//		  with a lazy candidate filter for spell-check style pipelines
//		• Jaccard & Sørensen: set-similarity coefficients
//		• Longest common substrings: contents or start positions
//		• DTW: Dynamic Time Warping for numeric series
//
// ✨ Why choose seqcmp?
//
//   - Pure functions – no state, no locks, safe to call concurrently
//   - Rune-correct – string APIs measure code points, not bytes
//   - Generic – every metric also accepts []T for any comparable T
//   - Predictable – sentinel errors, explicit contracts, no panics
//
// Everything is organized under one subpackage per algorithm family:
//
//	hamming/     — fixed-length mismatch counting
//	levenshtein/ — unbounded edit distance + normalized form
//	fastcomp/    — bounded edit distance + lazy candidate filtering
//	setsim/      — Jaccard and Sørensen distances
//	lcsubstr/    — longest common substring extraction
//	dtw/         — Dynamic Time Warping over float64 series
//
// The root package adds one small abstraction: Comparer, a common call
// signature for "give me a distance between two strings", with Exact
// (Levenshtein) and Bounded (FastComp) providers that can be swapped
// without touching call sites.
//
// Quick taste:
//
//	d := levenshtein.Distance("kitten", "sitting") // 3
//	q := fastcomp.Distance("wort", "word")         // 1
//	s, _ := hamming.Distance("karolin", "kathrin") // 3
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
package seqcmp
