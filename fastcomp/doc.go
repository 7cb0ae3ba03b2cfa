// Package fastcomp answers one narrow question very quickly: is the edit
// distance between two sequences at most 2, and if so, what is it?
//
// 🚀 What is FastComp?
//
//	A bounded edit-distance engine.  Full Levenshtein costs O(N·M) per
//	pair, which is wasteful when callers only care about a small
//	threshold: the typical shape of spell-check candidate filtering
//	and suggestion ranking.  FastComp decides "within 2" in a single
//	O(N) walk by trying a handful of fixed edit hypotheses instead of
//	filling a DP table.
//
// ✨ Key features:
//   - Distance / DistanceOf: exact result in {0,1,2}, or Exceeded (-1)
//   - WithTranspositions: count adjacent swaps (ab→ba) as one edit
//   - Filter / FilterOf: lazy (distance, candidate) stream over any
//     candidate source, dropping everything beyond MaxDistance
//   - string forms measure runes; generic forms accept any []T, T comparable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcmp/fastcomp"
//
//	fastcomp.Distance("wort", "word")                             // 1
//	fastcomp.Distance("abc", "bac")                               // 2
//	fastcomp.Distance("abc", "bac", fastcomp.WithTranspositions()) // 1
//	fastcomp.Distance("foo", "foobaz")                            // fastcomp.Exceeded
//
//	for d, w := range fastcomp.Filter("foo", slices.Values(words)) {
//		fmt.Println(d, w) // only words within distance 2
//	}
//
// How it works:
//
//	Let len1 ≥ len2 (swap if needed) and ldiff = len1 − len2.  Any pair
//	within distance 2 must fit one of a few two-slot edit models chosen
//	by ldiff alone:
//	  ldiff 0 → {insert,delete}, {delete,insert}, {replace,replace}
//	  ldiff 1 → {delete,replace}, {replace,delete}
//	  ldiff 2 → {delete,delete}
//	Each model is replayed against the pair with two cursors; mismatches
//	consume model slots, leftovers must be absorbed by unused slots, and
//	the cheapest surviving model wins.  ldiff > 2 fails immediately.
//	The algorithm follows http://writingarchives.sakura.ne.jp/fastcomp.
//
// Performance:
//
//   - Time:   O(N) per comparison (at most three model walks)
//   - Memory: O(1) beyond the rune conversion of string inputs
//
// Need the true distance beyond 2? Use the levenshtein package; the two
// agree exactly whenever the true distance is within MaxDistance and
// transpositions are off.
package fastcomp
