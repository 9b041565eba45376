package fill

// Options holds the behavioural flags of the filler.
type Options struct {
	// AllowDuplicates disables both the duplicate-run precondition on the
	// input grid and the duplicate-solution filter.
	AllowDuplicates bool
	// MaxSolutions stops the search after this many solutions have been
	// emitted. Zero means unlimited.
	MaxSolutions int
	// EveryNth emits only every N-th otherwise-acceptable solution.
	// Zero or one emits them all. Skipped solutions do not count toward
	// MaxSolutions.
	EveryNth int
	// Naive builds the exact-cover matrix over all w*h cells with
	// black-cell and forced filler rows, instead of compressing the
	// column space down to the open cells. The solution set is the same;
	// the naive matrix exists for validation.
	Naive bool
}
