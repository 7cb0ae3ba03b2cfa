package levenshtein_test

import (
	"fmt"

	"github.com/katalvlaran/seqcmp/levenshtein"
)

// ExampleDistance shows the classic kitten → sitting transformation:
// substitute k→s, substitute e→i, insert g.
func ExampleDistance() {
	fmt.Println(levenshtein.Distance("kitten", "sitting"))
	// Output:
	// 3
}

// ExampleNormalized scales the distance by the longer input, which makes
// scores comparable across words of different lengths.
func ExampleNormalized() {
	fmt.Printf("%.3f\n", levenshtein.Normalized("kitten", "sitting"))
	fmt.Printf("%.3f\n", levenshtein.Normalized("", "abc"))
	// Output:
	// 0.429
	// 1.000
}

// ExampleDistanceOf compares arbitrary comparable elements, here days
// encoded as ints.
func ExampleDistanceOf() {
	a := []int{1, 2, 3, 4, 5}
	b := []int{1, 3, 4, 5, 6}
	fmt.Println(levenshtein.DistanceOf(a, b))
	// Output:
	// 2
}
