package seqcmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqcmp"
	"github.com/katalvlaran/seqcmp/fastcomp"
)

func TestExact_KnownDistances(t *testing.T) {
	cmp := seqcmp.Exact()

	assert.Equal(t, 0, cmp.Compare("kitten", "kitten"))
	assert.Equal(t, 3, cmp.Compare("kitten", "sitting"))
	assert.Equal(t, 6, cmp.Compare("kitten", "xyzxyz"))
}

// TestBounded_AgreesWithExact sweeps word pairs: inside the bound the
// two providers must agree, beyond it Bounded reports Exceeded.
func TestBounded_AgreesWithExact(t *testing.T) {
	words := []string{"", "a", "b", "ab", "ba", "abc", "bac", "abcd", "xyz", "kitten", "sitting"}
	exact := seqcmp.Exact()
	bounded := seqcmp.Bounded()

	for _, w1 := range words {
		for _, w2 := range words {
			e := exact.Compare(w1, w2)
			g := bounded.Compare(w1, w2)
			if e <= fastcomp.MaxDistance {
				require.Equal(t, e, g, "Bounded must match Exact on (%q,%q)", w1, w2)
			} else {
				require.Equal(t, fastcomp.Exceeded, g, "Bounded must report Exceeded on (%q,%q), exact is %d", w1, w2, e)
			}
		}
	}
}

func TestBounded_OptionsPassThrough(t *testing.T) {
	plain := seqcmp.Bounded()
	swaps := seqcmp.Bounded(fastcomp.WithTranspositions())

	assert.Equal(t, 2, plain.Compare("ab", "ba"))
	assert.Equal(t, 1, swaps.Compare("ab", "ba"))
}

func TestComparerFunc_Adapter(t *testing.T) {
	calls := 0
	cmp := seqcmp.ComparerFunc(func(a, b string) int {
		calls++

		return len(a) + len(b)
	})

	assert.Equal(t, 5, cmp.Compare("ab", "cde"))
	assert.Equal(t, 1, calls)
}
