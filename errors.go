package esm

import "errors"

// Sentinel errors returned by the extractors. Call sites wrap them with
// the offending index or step; test with errors.Is.
var (
	// ErrUnknownTag is returned when a tag is not Match, Delete or Insert.
	ErrUnknownTag = errors.New("esm: unknown tag")

	// ErrCursorOverrun is returned when a tag would read past the end of
	// the source or target sequence.
	ErrCursorOverrun = errors.New("esm: tag sequence overruns input")

	// ErrIncompleteTags is returned when tags leave input tokens unconsumed.
	ErrIncompleteTags = errors.New("esm: tag sequence leaves input unconsumed")

	// ErrAlignmentOutOfRange is returned when an alignment pair references
	// an index outside its sequence.
	ErrAlignmentOutOfRange = errors.New("esm: alignment index out of range")

	// ErrNegativeLength is returned when a sequence length is negative.
	ErrNegativeLength = errors.New("esm: negative sequence length")
)
