// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with optional alignment path and memory modes.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  Where the edit distances in
//	this module compare discrete elements, DTW aligns measurements:
//	  • speech & audio alignment
//	  • gesture / motion matching
//	  • sensor streams recorded at drifting rates
//	  • time-series clustering & anomaly detection
//
// ✨ Key features:
//   - FullMatrix mode: exact O(N·M) memory, supports path recovery
//   - TwoRows / NoMemory modes: O(min over a row) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - on-demand alignment path (ReturnPath=true)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcmp/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5 // penalty for 1×2 vs 2×1 steps
//	opts.ReturnPath = true  // also return the warp path
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
//
// A window too strict to admit any alignment yields +Inf, not an error.
package dtw
