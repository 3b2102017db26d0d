package esm

// DiffEdits diffs source against target and returns the edit patterns.
//
// Exact matches become one "=_tok" pattern each, in order. Consecutive
// deletions and insertions between two matches are collected and serialized
// together by SerializePatterns, so a replaced run pairs up position by
// position ("~_old_new") and its tail becomes "-_" or "+_" patterns.
func DiffEdits(source, target []string, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	tags := o.tagger().Tags(source, target)
	return editsFromTags(source, target, tags, o)
}

// EditsFromTags is DiffEdits with a precomputed tag sequence.
// It returns an error wrapping ErrUnknownTag, ErrCursorOverrun or
// ErrIncompleteTags when tags do not consume source and target exactly.
func EditsFromTags(source, target []string, tags []Tag, opts ...Option) ([]string, error) {
	return editsFromTags(source, target, tags, newOptions(opts))
}

func editsFromTags(source, target []string, tags []Tag, o *options) ([]string, error) {
	if err := CheckTags(tags, len(source), len(target)); err != nil {
		return nil, err
	}

	w := &editWalker{
		source:    source,
		target:    target,
		last:      Match,
		deletions: o.deletions,
	}
	for _, tag := range tags {
		w.step(tag)
	}
	if w.last != Match && (len(w.srcBuf) > 0 || len(w.tgtBuf) > 0) {
		w.flush()
	}
	return w.edits, nil
}

// editWalker holds the cursors and pending run while walking tags.
type editWalker struct {
	source, target []string
	i, j           int // cursors into source and target
	srcBuf, tgtBuf []string
	last           Tag
	deletions      bool
	edits          []string
}

// step consumes one tag. Tags must already be validated.
func (w *editWalker) step(tag Tag) {
	switch tag {
	case Match:
		if w.last != Match {
			w.flush()
		}
		// A Match always starts a fresh pending run.
		w.reset()

		s, t := w.source[w.i], w.target[w.j]
		w.srcBuf = append(w.srcBuf, s)
		w.tgtBuf = append(w.tgtBuf, t)
		if s == t {
			w.flush()
			w.reset()
		}
		w.i++
		w.j++
	case Delete:
		w.srcBuf = append(w.srcBuf, w.source[w.i])
		w.i++
	case Insert:
		w.tgtBuf = append(w.tgtBuf, w.target[w.j])
		w.j++
	}
	w.last = tag
}

// flush serializes the pending run. The buffers are left untouched.
func (w *editWalker) flush() {
	w.edits = serialize(w.edits, w.srcBuf, w.tgtBuf, w.deletions)
}

func (w *editWalker) reset() {
	w.srcBuf = w.srcBuf[:0]
	w.tgtBuf = w.tgtBuf[:0]
}
