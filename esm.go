// Package esm extracts edit patterns that describe how a source token
// sequence was rewritten into a target token sequence.
//
// Two independent extractors are provided:
//   - DiffEdits walks a Match/Delete/Insert tag sequence produced by a
//     sequence-alignment routine (a Differ) and groups runs of changes.
//   - AlignmentEdits groups a many-to-many word alignment into cepts
//     (connected components) and emits one edit per cept.
//
// Edits are encoded as strings with a sentinel prefix:
//
//	=_tok        equal
//	~_src_tgt    substitution
//	-_tok        deletion
//	+_tok        insertion
//
// Multi-token payloads inside one alignment edit are joined with "^".
// Tokens are not escaped; callers must keep "_" and "^" out of tokens if
// they need to parse the patterns back.
package esm

// Algorithm selects the built-in diff engine used when no Differ is set.
type Algorithm int

const (
	// Myers is the O(ND) divide-and-conquer algorithm.
	Myers Algorithm = iota
	// Histogram anchors on low-frequency tokens and falls back to Myers.
	Histogram
)

// String returns a string representation of the Algorithm.
func (a Algorithm) String() string {
	switch a {
	case Myers:
		return "Myers"
	case Histogram:
		return "Histogram"
	default:
		return "Unknown"
	}
}

// options holds configuration for diffing and pattern serialization.
type options struct {
	algorithm     Algorithm
	differ        Differ
	useHeuristic  bool
	forceMinimal  bool
	costLimit     int
	preprocessing bool
	deletions     bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		algorithm:    Myers,
		useHeuristic: true,
		forceMinimal: false,
		costLimit:    0, // auto-calculated
		deletions:    true,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures diff and serialization behavior.
type Option func(*options)

// WithAlgorithm selects the built-in diff engine.
// Ignored when WithDiffer supplies a Differ.
// Default: Myers.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithDiffer replaces the built-in engines with d.
// A nil Differ restores the built-in engine.
func WithDiffer(d Differ) Option {
	return func(o *options) {
		o.differ = d
	}
}

// WithHeuristic enables or disables speed heuristics.
// Default: true.
func WithHeuristic(enabled bool) Option {
	return func(o *options) {
		o.useHeuristic = enabled
	}
}

// WithMinimal forces minimal edit script even if slow.
// Default: false.
func WithMinimal(minimal bool) Option {
	return func(o *options) {
		o.forceMinimal = minimal
		if minimal {
			o.useHeuristic = false
		}
	}
}

// WithCostLimit sets custom early termination threshold.
// 0 means auto-calculate based on input size.
// Default: 0.
func WithCostLimit(n int) Option {
	return func(o *options) {
		o.costLimit = n
	}
}

// WithPreprocessing enables or disables filtering of confusing tokens
// before the Myers engine runs. Tokens missing from the other sequence are
// removed, and so are very frequent tokens away from stable regions. The
// filter never applies when WithMinimal is set.
// Default: false.
func WithPreprocessing(enabled bool) Option {
	return func(o *options) {
		o.preprocessing = enabled
	}
}

// WithDeletionPatterns controls what the pattern serializer emits for a run
// of deleted source tokens that has no target tokens next to it.
// When enabled every deleted token becomes "-_tok". When disabled the run is
// dropped, which matches the output of older ESM feature files.
// Default: true.
func WithDeletionPatterns(enabled bool) Option {
	return func(o *options) {
		o.deletions = enabled
	}
}

// tagger returns the Differ selected by o.
func (o *options) tagger() Differ {
	if o.differ != nil {
		return o.differ
	}
	return engine{o: o}
}

// Diff compares source and target and returns one tag per alignment step.
func Diff(source, target []string, opts ...Option) []Tag {
	return newOptions(opts).tagger().Tags(source, target)
}
