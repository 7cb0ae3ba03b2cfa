package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqcmp/levenshtein"
)

// naiveDistance is a full-matrix reference implementation used to
// cross-check the rolling-row version on exhaustive small inputs.
func naiveDistance(a, b []rune) int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := dp[i-1][j] + 1
			if v := dp[i][j-1] + 1; v < d {
				d = v
			}
			if v := dp[i-1][j-1] + cost; v < d {
				d = v
			}
			dp[i][j] = d
		}
	}

	return dp[n][m]
}

// allStrings returns every string over alphabet up to maxLen runes.
func allStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	prev := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, p := range prev {
			for _, r := range alphabet {
				next = append(next, p+string(r))
			}
		}
		out = append(out, next...)
		prev = next
	}

	return out
}

// TestDistance_KnownValues pins classic pairs.
func TestDistance_KnownValues(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"flaw", "lawn", 2},
		{"gumbo", "gambol", 2},
		{"book", "back", 2},
		{"", "", 0},
		{"abc", "abc", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, levenshtein.Distance(c.a, c.b), "Distance(%q,%q)", c.a, c.b)
	}
}

// TestDistance_EmptySide verifies Distance("", s) == rune length of s.
func TestDistance_EmptySide(t *testing.T) {
	for _, s := range []string{"a", "abc", "日本語", "ärger"} {
		want := len([]rune(s))
		assert.Equal(t, want, levenshtein.Distance("", s), "Distance(\"\",%q)", s)
		assert.Equal(t, want, levenshtein.Distance(s, ""), "Distance(%q,\"\")", s)
	}
}

// TestDistance_Symmetry verifies Distance(a,b) == Distance(b,a).
func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"distance", "instance"},
		{"resume", "résumé"},
	}
	for _, p := range pairs {
		assert.Equal(t,
			levenshtein.Distance(p[0], p[1]),
			levenshtein.Distance(p[1], p[0]),
			"symmetry for (%q,%q)", p[0], p[1])
	}
}

// TestDistance_RunesNotBytes confirms multi-byte code points count as
// single elements.
func TestDistance_RunesNotBytes(t *testing.T) {
	assert.Equal(t, 1, levenshtein.Distance("café", "cafe"))
	assert.Equal(t, 2, levenshtein.Distance("résumé", "resume"))
}

// TestDistance_MatchesNaive cross-checks the rolling-row implementation
// against a full-matrix reference on every pair of strings over {a,b}
// up to length 4.
func TestDistance_MatchesNaive(t *testing.T) {
	universe := allStrings("ab", 4)
	for _, s1 := range universe {
		for _, s2 := range universe {
			want := naiveDistance([]rune(s1), []rune(s2))
			got := levenshtein.Distance(s1, s2)
			require.Equal(t, want, got, "Distance(%q,%q)", s1, s2)
		}
	}
}

// TestDistance_TriangleInequality verifies d(a,c) <= d(a,b) + d(b,c)
// over a small word universe.
func TestDistance_TriangleInequality(t *testing.T) {
	words := []string{"", "a", "ab", "ba", "abc", "cab", "bac", "abcd"}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				ac := levenshtein.Distance(a, c)
				ab := levenshtein.Distance(a, b)
				bc := levenshtein.Distance(b, c)
				require.LessOrEqual(t, ac, ab+bc,
					"triangle violated for (%q,%q,%q)", a, b, c)
			}
		}
	}
}

// TestDistanceOf_GenericElements exercises []byte and []int inputs.
func TestDistanceOf_GenericElements(t *testing.T) {
	assert.Equal(t, 3, levenshtein.DistanceOf([]byte("kitten"), []byte("sitting")))
	assert.Equal(t, 2, levenshtein.DistanceOf([]int{1, 2, 3}, []int{2, 3, 4}))
	assert.Equal(t, 0, levenshtein.DistanceOf([]int(nil), []int{}))
}

// TestNormalized covers the ratio contract and its edge cases.
func TestNormalized(t *testing.T) {
	assert.InDelta(t, 3.0/7.0, levenshtein.Normalized("kitten", "sitting"), 1e-12)
	assert.Zero(t, levenshtein.Normalized("", ""), "two empty strings are identical")
	assert.Equal(t, 1.0, levenshtein.Normalized("", "abc"), "empty vs non-empty is maximal")
	assert.Zero(t, levenshtein.Normalized("same", "same"))
}

// TestNormalized_Range asserts results stay within [0,1] for assorted pairs.
func TestNormalized_Range(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "x"},
		{"aaaa", "bbbb"},
		{"interchangeably", "i"},
	}
	for _, p := range pairs {
		f := levenshtein.Normalized(p[0], p[1])
		assert.GreaterOrEqual(t, f, 0.0, "Normalized(%q,%q)", p[0], p[1])
		assert.LessOrEqual(t, f, 1.0, "Normalized(%q,%q)", p[0], p[1])
	}
}
