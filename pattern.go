package esm

import "strings"

// Pattern encoding.
const (
	equalPrefix      = "=_"
	substitutePrefix = "~_"
	deletionPrefix   = "-_"
	insertionPrefix  = "+_"

	// fieldSep separates source and target payloads of a substitution.
	fieldSep = "_"
	// joinSep joins the tokens of one cept.
	joinSep = "^"
)

// Kind identifies the kind of an encoded edit pattern.
type Kind int

const (
	// Unknown is returned for strings without a pattern prefix.
	Unknown Kind = iota
	// Equal means the token was kept.
	Equal
	// Substitution means a source token was replaced by a target token.
	Substitution
	// Deletion means a source token has no counterpart in the target.
	Deletion
	// Insertion means a target token has no counterpart in the source.
	Insertion
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Equal:
		return "Equal"
	case Substitution:
		return "Substitution"
	case Deletion:
		return "Deletion"
	case Insertion:
		return "Insertion"
	default:
		return "Unknown"
	}
}

// KindOf reports the kind of an encoded pattern by its prefix.
func KindOf(pattern string) Kind {
	switch {
	case strings.HasPrefix(pattern, equalPrefix):
		return Equal
	case strings.HasPrefix(pattern, substitutePrefix):
		return Substitution
	case strings.HasPrefix(pattern, deletionPrefix):
		return Deletion
	case strings.HasPrefix(pattern, insertionPrefix):
		return Insertion
	default:
		return Unknown
	}
}

// SerializePatterns encodes a pair of aligned token groups as patterns.
//
//   - source empty: "+_t" for every target token.
//   - target empty: "-_s" for every source token, or nothing when
//     WithDeletionPatterns(false) is set.
//   - otherwise the groups are paired by position: "=_s" or "~_s_t" while
//     both have tokens, then "-_s" or "+_t" for the longer group's tail.
func SerializePatterns(source, target []string, opts ...Option) []string {
	return serialize(nil, source, target, newOptions(opts).deletions)
}

// serialize appends the patterns for one group pair to dst.
func serialize(dst, source, target []string, deletions bool) []string {
	switch {
	case len(source) == 0:
		for _, t := range target {
			dst = append(dst, insertionPrefix+t)
		}
	case len(target) == 0:
		if !deletions {
			return dst
		}
		for _, s := range source {
			dst = append(dst, deletionPrefix+s)
		}
	default:
		for i := range max(len(source), len(target)) {
			switch {
			case i < len(source) && i < len(target):
				dst = append(dst, pairPattern(source[i], target[i]))
			case i < len(source):
				dst = append(dst, deletionPrefix+source[i])
			default:
				dst = append(dst, insertionPrefix+target[i])
			}
		}
	}
	return dst
}

// pairPattern encodes a source and target payload that sit side by side.
func pairPattern(s, t string) string {
	if s == t {
		return equalPrefix + s
	}
	return substitutePrefix + s + fieldSep + t
}
