package esm

// Histogram-style diff algorithm.
//
// This implements an approach similar to Git's histogram diff:
// 1. Count token frequencies in the source
// 2. Find the lowest-frequency target token that also appears in the
//    source (the best anchor), preferring balanced split positions
// 3. Split both sequences around the maximal matching run through it
// 4. Recursively apply to both halves
// 5. Fall back to Myers when no good anchors exist
//
// This naturally avoids matching high-frequency tokens like "the", "for", "-"
// because they're never chosen as anchor points.
//
// References:
// - JGit HistogramDiff (Eclipse License)
// - raygard/hdiff (0BSD License)
// - Bram Cohen's patience diff concept

// histogramOptions configures histogram diff behavior.
type histogramOptions struct {
	// maxChainLength is the maximum frequency for a token to be considered
	// as an anchor. Tokens appearing more than this are ignored.
	maxChainLength int

	// fallbackToMyers controls whether to use Myers when no good anchors exist.
	fallbackToMyers bool

	// filterStopwords prevents common words from being used as anchors.
	filterStopwords bool
}

func defaultHistogramOptions() *histogramOptions {
	return &histogramOptions{
		maxChainLength:  64, // Git's default
		fallbackToMyers: true,
		filterStopwords: true,
	}
}

// stopwords are common words that make poor anchors even at low frequency.
// Single-character punctuation is intentionally absent: in tokenized
// sentences a matching "," or "." is a useful anchor.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"in": true, "on": true, "to": true, "for": true, "of": true, "with": true,
	"and": true, "or": true,
	"is": true, "are": true, "be": true,
}

// isStopword checks if a token is a stopword. Case-sensitive.
func isStopword(tok string) bool {
	return stopwords[tok]
}

// histogram carries the configuration through the recursion.
type histogram struct {
	hopts *histogramOptions
	o     *options
}

// histogramDiff performs histogram-style diff on two token sequences.
func histogramDiff(x, y []string, hopts *histogramOptions, o *options) []Tag {
	if hopts == nil {
		hopts = defaultHistogramOptions()
	}
	if len(x) == 0 && len(y) == 0 {
		return nil
	}

	// Trim common prefix
	prefixLen := 0
	for prefixLen < len(x) && prefixLen < len(y) && x[prefixLen] == y[prefixLen] {
		prefixLen++
	}

	// Trim common suffix
	suffixLen := 0
	for suffixLen < len(x)-prefixLen && suffixLen < len(y)-prefixLen &&
		x[len(x)-1-suffixLen] == y[len(y)-1-suffixLen] {
		suffixLen++
	}

	h := histogram{hopts: hopts, o: o}
	tags := make([]Tag, 0, max(len(x), len(y)))
	tags = appendRun(tags, Match, prefixLen)
	tags = h.diff(tags, x[prefixLen:len(x)-suffixLen], y[prefixLen:len(y)-suffixLen])
	return appendRun(tags, Match, suffixLen)
}

// diff appends the tags aligning x with y to tags.
func (h histogram) diff(tags []Tag, x, y []string) []Tag {
	if len(x) == 0 {
		return appendRun(tags, Insert, len(y))
	}
	if len(y) == 0 {
		return appendRun(tags, Delete, len(x))
	}

	ax, ay, ok := h.anchor(x, y)
	if !ok {
		if h.hopts.fallbackToMyers {
			return append(tags, myersDiff(x, y, h.o)...)
		}
		tags = appendRun(tags, Delete, len(x))
		return appendRun(tags, Insert, len(y))
	}

	// Extend the match to the full matching run
	startX, startY := ax, ay
	for startX > 0 && startY > 0 && x[startX-1] == y[startY-1] {
		startX--
		startY--
	}
	endX, endY := ax+1, ay+1
	for endX < len(x) && endY < len(y) && x[endX] == y[endY] {
		endX++
		endY++
	}

	tags = h.diff(tags, x[:startX], y[:startY])
	tags = appendRun(tags, Match, endX-startX)
	return h.diff(tags, x[endX:], y[endY:])
}

// anchor picks the best anchor pair: a low-frequency token that also
// creates a balanced split. Score = frequency * (1 + 2*imbalance), lower is
// better; imbalance is the distance between the relative positions of the
// token in x and y.
func (h histogram) anchor(x, y []string) (ax, ay int, ok bool) {
	positions := make(map[string][]int, len(x))
	for i, tok := range x {
		positions[tok] = append(positions[tok], i)
	}

	bestScore := float64(h.hopts.maxChainLength+1) * 3 // Initialize to impossible value
	ax, ay = -1, -1

	for j, tok := range y {
		if h.hopts.filterStopwords && isStopword(tok) {
			continue
		}
		pos := positions[tok]
		freq := len(pos)
		if freq == 0 || freq > h.hopts.maxChainLength {
			continue
		}

		yRatio := float64(j) / float64(len(y))
		bestX, bestImbalance := -1, 2.0
		for _, i := range pos {
			imbalance := float64(i)/float64(len(x)) - yRatio
			if imbalance < 0 {
				imbalance = -imbalance
			}
			if imbalance < bestImbalance {
				bestImbalance = imbalance
				bestX = i
			}
		}

		score := float64(freq) * (1.0 + bestImbalance*2)
		if score < bestScore {
			bestScore = score
			ax, ay = bestX, j
		}
	}

	return ax, ay, ax >= 0
}
