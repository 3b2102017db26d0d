package esm

// Differ aligns two token sequences and returns one Tag per alignment step.
//
// Implementations must return a sequence that consumes every source and
// every target token exactly once (see CheckTags). Optimality is not
// required.
type Differ interface {
	Tags(source, target []string) []Tag
}

// DifferFunc adapts an ordinary function to the Differ interface.
type DifferFunc func(source, target []string) []Tag

// Tags calls f(source, target).
func (f DifferFunc) Tags(source, target []string) []Tag {
	return f(source, target)
}

// engine is the Differ backed by the built-in algorithms.
type engine struct {
	o *options
}

func (e engine) Tags(source, target []string) []Tag {
	switch e.o.algorithm {
	case Histogram:
		return histogramDiff(source, target, defaultHistogramOptions(), e.o)
	default:
		return myersDiff(source, target, e.o)
	}
}

// NewDiffer returns the built-in engine configured by opts, for callers that
// need a Differ value (for example to compare engines side by side).
func NewDiffer(opts ...Option) Differ {
	o := newOptions(opts)
	o.differ = nil
	return engine{o: o}
}
