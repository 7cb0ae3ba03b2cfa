// Package fastcomp defines the engine's bounds, edit models and options.
package fastcomp

const (
	// MaxDistance is the largest edit distance the engine resolves exactly.
	MaxDistance = 2

	// Exceeded reports that the distance is greater than MaxDistance.
	Exceeded = -1
)

// op is one scheduled edit operation inside an edit model.
type op byte

const (
	// opInsert advances the shorter sequence's cursor.
	opInsert op = iota

	// opDelete advances the longer sequence's cursor.
	opDelete

	// opReplace advances both cursors.
	opReplace
)

// model is an ordered pair of edit operations hypothesized to transform
// the longer sequence into the shorter one. With a budget of two edits,
// a handful of fixed models covers every reachable pair; which ones are
// viable depends only on the length difference.
type model [2]op

var (
	// modelsEqual: same lengths — one insert+delete in either order, or
	// two replacements.
	modelsEqual = []model{
		{opInsert, opDelete},
		{opDelete, opInsert},
		{opReplace, opReplace},
	}

	// modelsOff1: lengths differ by one — a delete plus a replacement,
	// in either order.
	modelsOff1 = []model{
		{opDelete, opReplace},
		{opReplace, opDelete},
	}

	// modelsOff2: lengths differ by two — both edits must be deletes.
	modelsOff2 = []model{
		{opDelete, opDelete},
	}
)

// Option configures the engine via functional arguments.
type Option func(*Options)

// Options holds the engine's tunables.
type Options struct {
	// Transpositions, when true, counts an adjacent swap (ab → ba) as a
	// single edit instead of two substitutions. Matching the classic
	// formulation, swaps are never considered when the length difference
	// is exactly two.
	Transpositions bool
}

// DefaultOptions returns the engine defaults: transpositions off, which
// makes results agree with plain Levenshtein wherever both are defined.
func DefaultOptions() Options {
	return Options{Transpositions: false}
}

// WithTranspositions counts adjacent swaps as single edits.
func WithTranspositions() Option {
	return func(o *Options) { o.Transpositions = true }
}
