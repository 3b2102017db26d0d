package esm

import (
	"unicode/utf8"

	"github.com/aryann/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diff"
)

// DiffMatchPatch returns a Differ backed by github.com/sergi/go-diff.
// Each distinct token is mapped to one rune so the character-level
// algorithm aligns whole tokens.
func DiffMatchPatch() Differ {
	return DifferFunc(dmpTags)
}

// Znkr returns a Differ backed by znkr.io/diff, asking for a minimal diff.
func Znkr() Differ {
	return DifferFunc(znkrTags)
}

// Difflib returns a Differ backed by github.com/aryann/difflib, a
// dynamic-programming LCS diff.
func Difflib() Differ {
	return DifferFunc(difflibTags)
}

// firstTokenRune is the first rune handed out to a token. It sits above
// the surrogate range, so every rune up to utf8.MaxRune is valid and about
// a million distinct tokens fit. The runes are opaque ids; beyond U+F8FF
// they fall in assigned blocks, which does not matter to the diff.
const firstTokenRune = 0xE000

// runeEncoder assigns one rune per distinct token.
type runeEncoder struct {
	ids map[string]rune
}

func (e *runeEncoder) encode(tokens []string) ([]rune, bool) {
	runes := make([]rune, len(tokens))
	for i, tok := range tokens {
		r, ok := e.ids[tok]
		if !ok {
			r = firstTokenRune + rune(len(e.ids))
			if r > utf8.MaxRune {
				return nil, false
			}
			e.ids[tok] = r
		}
		runes[i] = r
	}
	return runes, true
}

func dmpTags(source, target []string) []Tag {
	if len(source) == 0 && len(target) == 0 {
		return nil
	}

	enc := &runeEncoder{ids: make(map[string]rune)}
	r1, ok1 := enc.encode(source)
	r2, ok2 := enc.encode(target)
	if !ok1 || !ok2 {
		// Vocabulary does not fit the rune space
		return myersDiff(source, target, defaultOptions())
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // deterministic: never cut the bisection short
	diffs := dmp.DiffMainRunes(r1, r2, false)

	tags := make([]Tag, 0, max(len(source), len(target)))
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			tags = appendRun(tags, Match, n)
		case diffmatchpatch.DiffDelete:
			tags = appendRun(tags, Delete, n)
		case diffmatchpatch.DiffInsert:
			tags = appendRun(tags, Insert, n)
		}
	}
	return tags
}

func znkrTags(source, target []string) []Tag {
	edits := diff.Edits(source, target, diff.Minimal())
	if len(edits) == 0 {
		return nil
	}
	tags := make([]Tag, 0, len(edits))
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			tags = append(tags, Match)
		case diff.Delete:
			tags = append(tags, Delete)
		case diff.Insert:
			tags = append(tags, Insert)
		}
	}
	return tags
}

func difflibTags(source, target []string) []Tag {
	records := difflib.Diff(source, target)
	if len(records) == 0 {
		return nil
	}
	tags := make([]Tag, 0, len(records))
	for _, r := range records {
		switch r.Delta {
		case difflib.Common:
			tags = append(tags, Match)
		case difflib.LeftOnly:
			tags = append(tags, Delete)
		case difflib.RightOnly:
			tags = append(tags, Insert)
		}
	}
	return tags
}
