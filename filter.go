package esm

// Preprocessing implementation based on concepts from:
// - Neil Fraser's "Diff Strategies" (https://neil.fraser.name/writing/diff/)
//   Describes filtering high-frequency elements that make poor alignment anchors.
// - imara-diff (Apache-2.0): https://github.com/pascalkuthe/imara-diff

// indexMapping tracks how filtered indices map back to original indices.
type indexMapping struct {
	xToOrig []int // filtered x index -> original x index
	yToOrig []int // filtered y index -> original y index
	origN   int   // original length of x
	origM   int   // original length of y
}

// mapTags converts a tag sequence over the filtered sequences into one over
// the original sequences. Matches keep their (mapped) positions; every
// original token between two matches becomes a Delete or Insert, deletions
// first.
func (m *indexMapping) mapTags(tags []Tag) []Tag {
	out := make([]Tag, 0, max(m.origN, m.origM))
	i, j := 0, 0 // next unconsumed original index
	fi, fj := 0, 0

	for _, tag := range tags {
		switch tag {
		case Match:
			xi, yj := m.xToOrig[fi], m.yToOrig[fj]
			out = appendRun(out, Delete, xi-i)
			out = appendRun(out, Insert, yj-j)
			out = append(out, Match)
			i, j = xi+1, yj+1
			fi++
			fj++
		case Delete:
			fi++
		case Insert:
			fj++
		}
	}

	out = appendRun(out, Delete, m.origN-i)
	return appendRun(out, Insert, m.origM-j)
}

// tokenClass indicates how a token should be treated during filtering.
type tokenClass int

const (
	// keep: useful as anchor (reasonable frequency in both sequences)
	keep tokenClass = iota
	// discard: definitely changed (no matches in other sequence)
	discard
	// provisional: high frequency, poor anchor but keep at boundaries
	provisional
)

// filterConfusingTokens removes tokens that cannot match and high-frequency
// tokens that cause spurious matches. It returns the filtered sequences and
// a mapping back to the originals, or a nil mapping when filtering would
// not help.
func filterConfusingTokens(x, y []string) ([]string, []string, *indexMapping) {
	if len(x) == 0 || len(y) == 0 {
		return x, y, nil
	}

	xFreq := make(map[string]int, len(x))
	yFreq := make(map[string]int, len(y))
	for _, tok := range x {
		xFreq[tok]++
	}
	for _, tok := range y {
		yFreq[tok]++
	}

	// Tokens appearing more than this are poor anchors
	threshold := max(8, 5+(len(x)+len(y))/64)

	xClass := classify(x, xFreq, yFreq, threshold)
	yClass := classify(y, yFreq, xFreq, threshold)

	// If most tokens would be kept, skip filtering
	keepCount := countKeep(xClass) + countKeep(yClass)
	if keepCount > (len(x)+len(y))*3/4 {
		return x, y, nil
	}

	fx, xToOrig := filterSequence(x, xClass)
	fy, yToOrig := filterSequence(y, yClass)
	if len(fx) == 0 && len(fy) == 0 {
		return x, y, nil
	}

	return fx, fy, &indexMapping{
		xToOrig: xToOrig,
		yToOrig: yToOrig,
		origN:   len(x),
		origM:   len(y),
	}
}

// classify assigns a class to every token of seq, where own and other are
// the token frequencies of seq and of the sequence it is compared with.
func classify(seq []string, own, other map[string]int, threshold int) []tokenClass {
	classes := make([]tokenClass, len(seq))
	for i, tok := range seq {
		switch {
		case other[tok] == 0:
			classes[i] = discard
		case own[tok]+other[tok] > threshold:
			classes[i] = provisional
		default:
			classes[i] = keep
		}
	}
	return classes
}

func countKeep(classes []tokenClass) int {
	n := 0
	for _, c := range classes {
		if c == keep {
			n++
		}
	}
	return n
}

// filterSequence filters a sequence based on token classes.
// Provisional tokens are kept only next to a kept token.
func filterSequence(seq []string, classes []tokenClass) ([]string, []int) {
	result := make([]string, 0, len(seq))
	toOrig := make([]int, 0, len(seq))

	for i, class := range classes {
		switch class {
		case keep:
			result = append(result, seq[i])
			toOrig = append(toOrig, i)
		case provisional:
			prevKeep := i > 0 && classes[i-1] == keep
			nextKeep := i < len(classes)-1 && classes[i+1] == keep
			if prevKeep || nextKeep {
				result = append(result, seq[i])
				toOrig = append(toOrig, i)
			}
		}
	}

	return result, toOrig
}
