package dtw

import (
	"fmt"
	"math"
	"slices"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two numeric sequences that may vary
//	in time or speed by finding the cheapest monotone alignment between
//	them. Each aligned pair (i,j) contributes |a[i]−b[j]|; stretching
//	either axis costs SlopePenalty per extra step.
//
// Algorithm Outline:
//
//  1. Allocate DP storage per MemoryMode: the full (n+1)×(m+1) grid,
//     two alternating rows, or one row with a diagonal carry.
//  2. Seed D[0][0] = 0 and +Inf along the first row and column.
//  3. Fill every cell inside the window band:
//     D[i][j] = |a[i−1]−b[j−1]| + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1]).
//     Cells outside the band stay +Inf.
//  4. The distance is D[n][m]; +Inf means the band admits no alignment.
//  5. With ReturnPath, backtrack from (n,m) to (0,0), choosing the
//     cheapest predecessor at every cell (diagonal preferred on ties).
//
// Complexity:
//
//	Time   O(n·m)
//	Memory O(n·m) for FullMatrix, O(m) for TwoRows and NoMemory
//
// Errors:
//   - ErrEmptyInput — either input is empty.
//   - ErrBadInput — Window below -1 or an unknown MemoryMode.
//   - ErrPathNeedsMatrix — ReturnPath=true without FullMatrix.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(a) == 0 || len(b) == 0 {
		return 0, nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrEmptyInput, len(a), len(b))
	}
	if o.Window < -1 {
		return 0, nil, fmt.Errorf("%w: Window=%d", ErrBadInput, o.Window)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	switch o.MemoryMode {
	case FullMatrix:
		dist, path := distanceMatrix(a, b, o)
		return dist, path, nil
	case TwoRows:
		return distanceTwoRows(a, b, o), nil, nil
	case NoMemory:
		return distanceSingleRow(a, b, o), nil, nil
	default:
		return 0, nil, fmt.Errorf("%w: MemoryMode=%d", ErrBadInput, o.MemoryMode)
	}
}

// inBand reports whether cell (i,j) of the 1-based DP grid lies inside
// the Sakoe–Chiba band. A negative window means unconstrained.
func inBand(i, j, window int) bool {
	if window < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= window
}

// distanceMatrix fills the full grid and optionally backtracks the path.
func distanceMatrix(a, b []float64, o Options) (float64, []Coord) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + min3(
				dp[i-1][j]+o.SlopePenalty,
				dp[i][j-1]+o.SlopePenalty,
				dp[i-1][j-1],
			)
		}
	}

	dist := dp[n][m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		// no finite alignment to trace
		return dist, nil
	}

	return dist, backtrack(dp, o.SlopePenalty)
}

// backtrack walks the filled grid from (n,m) to (1,1) and returns the
// warping path in element coordinates, start to end.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := []Coord{{I: i - 1, J: j - 1}}
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag := dp[i-1][j-1]
			ins := dp[i-1][j] + penalty
			del := dp[i][j-1] + penalty
			if diag <= ins && diag <= del {
				i, j = i-1, j-1
			} else if ins <= del {
				i--
			} else {
				j--
			}
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	slices.Reverse(path)

	return path
}

// distanceTwoRows keeps the current and previous row only.
func distanceTwoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	var rows [2][]float64
	rows[0] = make([]float64, m+1)
	rows[1] = make([]float64, m+1)
	for j := 1; j <= m; j++ {
		rows[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		curr, prev := rows[i%2], rows[(i-1)%2]
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min3(
				prev[j]+o.SlopePenalty,
				curr[j-1]+o.SlopePenalty,
				prev[j-1],
			)
		}
	}

	return rows[n%2][m]
}

// distanceSingleRow keeps one row; the previous row's diagonal cell
// survives in a scalar carry.
func distanceSingleRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			old := row[j]
			if !inBand(i, j, o.Window) {
				row[j] = inf
			} else {
				row[j] = math.Abs(a[i-1]-b[j-1]) + min3(
					old+o.SlopePenalty,
					row[j-1]+o.SlopePenalty,
					diag,
				)
			}
			diag = old
		}
	}

	return row[m]
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
