package esm

import "strings"

// AlignmentEdits returns one edit pattern per cept of the alignment between
// source and target, in cept order.
//
// The tokens of a cept are joined with "^" in index order. A cept whose
// joined source and target are both non-empty becomes "=_s" when they are
// equal and "~_s_t" otherwise; a source-only cept becomes "-_s" and a
// target-only cept "+_t".
func AlignmentEdits(source, target []string, alignment Alignment) ([]string, error) {
	cepts, err := BuildCepts(alignment, len(source), len(target))
	if err != nil {
		return nil, err
	}

	edits := make([]string, 0, len(cepts))
	for _, c := range cepts {
		if e, ok := ceptPattern(c, source, target); ok {
			edits = append(edits, e)
		}
	}
	return edits, nil
}

// ceptPattern encodes a single cept. It reports false when both sides join
// to the empty string.
func ceptPattern(c Cept, source, target []string) (string, bool) {
	s := joinTokens(source, c.Source)
	t := joinTokens(target, c.Target)
	switch {
	case s != "" && t != "":
		return pairPattern(s, t), true
	case s != "":
		return deletionPrefix + s, true
	case t != "":
		return insertionPrefix + t, true
	default:
		return "", false
	}
}

func joinTokens(tokens []string, idx []int) string {
	var b strings.Builder
	for i, v := range idx {
		if i > 0 {
			b.WriteString(joinSep)
		}
		b.WriteString(tokens[v])
	}
	return b.String()
}
