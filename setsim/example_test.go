package setsim_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqcmp/setsim"
)

// ExampleJaccard compares the rune sets of two words.
func ExampleJaccard() {
	fmt.Printf("%.3f\n", setsim.Jaccard("decide", "resize"))
	fmt.Printf("%.3f\n", setsim.Jaccard("abc", "abc"))
	// Output:
	// 0.714
	// 0.000
}

// ExampleSorensen weighs the same overlap against the set sizes, which
// always scores at or below Jaccard.
func ExampleSorensen() {
	fmt.Printf("%.3f\n", setsim.Sorensen("decide", "resize"))
	// Output:
	// 0.556
}

// ExampleJaccardOf treats whitespace-split tokens as set elements, so
// reordered phrases count as identical.
func ExampleJaccardOf() {
	a := strings.Fields("the quick brown fox")
	b := strings.Fields("the brown quick fox")
	fmt.Printf("%.3f\n", setsim.JaccardOf(a, b))
	// Output:
	// 0.000
}
