// Package hamming counts per-position differences between two
// equal-length sequences.
//
// 🚀 What is the Hamming distance?
//
//	The number of index positions at which two sequences of the same
//	length disagree.  It’s the natural metric for:
//	  • error detection in fixed-width codes
//	  • comparing hashes, fingerprints, k-mers
//	  • strict column-by-column record matching
//
// ✨ Key features:
//   - Distance / DistanceOf: raw mismatch count
//   - Normalized / NormalizedOf: mismatch share in [0,1]
//   - string forms measure runes; generic forms accept any []T, T comparable
//   - ErrLengthMismatch on unequal input lengths, never a silent truncation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcmp/hamming"
//
//	d, err := hamming.Distance("karolin", "kathrin") // 3, nil
//	f, err := hamming.Normalized("toned", "roses")   // 0.6, nil
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(1) beyond the rune conversion of string inputs
//
// Both sequences empty counts as identical: distance 0, normalized 0.
package hamming
