package esm

import "fmt"

// Tag classifies one step of a sequence alignment.
type Tag int

const (
	// Match consumes one source and one target token.
	Match Tag = iota
	// Delete consumes one source token.
	Delete
	// Insert consumes one target token.
	Insert
)

// String returns a string representation of the Tag.
func (t Tag) String() string {
	switch t {
	case Match:
		return "Match"
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	default:
		return "Unknown"
	}
}

// CheckTags reports whether tags consume exactly sourceLen source tokens and
// targetLen target tokens. It returns ErrUnknownTag, ErrCursorOverrun or
// ErrIncompleteTags wrapped with the offending step.
func CheckTags(tags []Tag, sourceLen, targetLen int) error {
	i, j := 0, 0
	for step, tag := range tags {
		switch tag {
		case Match:
			i++
			j++
		case Delete:
			i++
		case Insert:
			j++
		default:
			return fmt.Errorf("%w: %d at step %d", ErrUnknownTag, int(tag), step)
		}
		if i > sourceLen || j > targetLen {
			return fmt.Errorf("%w: %s at step %d (source %d/%d, target %d/%d)",
				ErrCursorOverrun, tag, step, i, sourceLen, j, targetLen)
		}
	}
	if i != sourceLen || j != targetLen {
		return fmt.Errorf("%w: consumed source %d/%d, target %d/%d",
			ErrIncompleteTags, i, sourceLen, j, targetLen)
	}
	return nil
}

// appendRun appends n copies of tag to tags.
func appendRun(tags []Tag, tag Tag, n int) []Tag {
	for range n {
		tags = append(tags, tag)
	}
	return tags
}
