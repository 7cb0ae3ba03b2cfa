package lcsubstr

// Position locates one occurrence of a longest common substring.
// I is the starting offset in the first sequence, J in the second;
// string forms count offsets in runes.
type Position struct {
	I int
	J int
}
